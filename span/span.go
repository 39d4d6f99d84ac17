// Package span provides a zero-copy, position-tracked view over a shared
// immutable carrier (text, byte buffer, or token slice). It implements the
// input contract a parsing-combinator engine needs: length, slicing,
// sequential consumption, predicate splitting, iteration, literal
// comparison, and relative offsets. Absolute carrier offsets survive any
// number of splits, so source positions for diagnostics are never lost.
//
// The package never copies or mutates the carrier payload; every operation
// returns a new Span holding the same carrier handle and updated offsets.
package span

import "fmt"

// Span is a half-open [start, end) view over a carrier.
//
// Spans are immutable values: all transformations return new spans and many
// spans may reference the same carrier concurrently. The design invariant is
// start <= end; end is not required to stay within the carrier's true
// length, accessors clamp instead (a span derived before the carrier was
// known to be shorter stays usable in streaming scenarios).
type Span[S Sequence[S, E], E any] struct {
	inner S
	start int
	end   int
}

// New returns the span [start, end) over inner. Bounds are not validated
// eagerly; accessors clamp defensively.
func New[S Sequence[S, E], E any](inner S, start int, end int) Span[S, E] {
	return Span[S, E]{
		inner: inner,
		start: start,
		end:   end,
	}
}

// From returns the span covering the whole carrier.
func From[S Sequence[S, E], E any](inner S) Span[S, E] {
	return New(inner, 0, inner.Length())
}

// EndOf returns the zero-length span positioned at the carrier's end, an
// end-of-input marker / insertion point.
func EndOf[S Sequence[S, E], E any](inner S) Span[S, E] {
	length := inner.Length()
	return New(inner, length, length)
}

// Between returns the span covering the gap from the start of first to the
// start of second. Both spans must reference the same carrier.
func Between[S Sequence[S, E], E any](first Span[S, E], second Span[S, E]) Span[S, E] {
	return New(first.inner, first.start, second.start)
}

// To returns the span covering first, second, and everything between them.
// Both spans must reference the same carrier.
func To[S Sequence[S, E], E any](first Span[S, E], second Span[S, E]) Span[S, E] {
	return New(first.inner, first.start, second.end)
}

// Start returns the absolute start offset into the carrier.
func (self Span[S, E]) Start() int { return self.start }

// End returns the absolute (unclamped) end offset into the carrier.
func (self Span[S, E]) End() int { return self.end }

// Range returns both absolute offsets of the half-open range.
func (self Span[S, E]) Range() (start int, end int) {
	return self.start, self.end
}

// Len returns the element count in [start, min(end, length)), saturating at
// zero.
func (self Span[S, E]) Len() int {
	end := min(self.end, self.inner.Length())
	if end < self.start {
		return 0
	}
	return end - self.start
}

// Content materializes the sub-sequence addressed by the span, clamped to
// the carrier's true bounds. It is computed on demand and never cached; this
// is the only point where payload content is produced.
func (self Span[S, E]) Content() S {
	length := self.inner.Length()
	start := min(self.start, length)
	end := min(self.end, length)
	if end < start {
		end = start
	}
	return self.inner.Sub(start, end)
}

// Slice returns the span of the relative half-open range [a, b).
func (self Span[S, E]) Slice(a int, b int) Span[S, E] {
	return New(self.inner, self.start+a, self.start+b)
}

// SliceFrom returns the span of the relative range [a, len).
func (self Span[S, E]) SliceFrom(a int) Span[S, E] {
	return New(self.inner, self.start+a, self.end)
}

// SliceTo returns the span of the relative range [0, b).
func (self Span[S, E]) SliceTo(b int) Span[S, E] {
	return New(self.inner, self.start, self.start+b)
}

// SliceFull returns the span unchanged.
func (self Span[S, E]) SliceFull() Span[S, E] {
	return self
}

// Take returns the first n elements as a new span. The original is
// unaffected. Callers are expected to uphold n <= Len(); a larger n
// saturates through the clamped accessors instead of panicking.
func (self Span[S, E]) Take(n int) Span[S, E] {
	return self.SliceTo(n)
}

// TakeSplit splits the span after n elements, returning the remainder and
// the consumed prefix. The fundamental consumption primitive:
// taken.Start() == Start(), rest.Start() == taken.End(), rest.End() == End().
func (self Span[S, E]) TakeSplit(n int) (rest Span[S, E], taken Span[S, E]) {
	return self.SliceFrom(n), self.SliceTo(n)
}

// Offset returns the distance in elements from this span's start to the
// start of other, saturating at zero. Both spans must reference the same
// carrier. Combinators use this to measure consumed distance and to detect
// zero-progress repetition.
func (self Span[S, E]) Offset(other Span[S, E]) int {
	if other.start < self.start {
		return 0
	}
	return other.start - self.start
}

// String renders the span as a diagnostic tuple of its materialized content
// and numeric bounds. Developer-facing output only.
func (self Span[S, E]) String() string {
	return fmt.Sprintf("Span(%v, %d..%d)", self.Content(), self.start, self.end)
}
