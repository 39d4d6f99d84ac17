package span

import "iter"

// Elements yields the elements of the materialized content in order. The
// sequence is finite and restartable.
func (self Span[S, E]) Elements() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, element := range self.Content().Iter() {
			if !yield(element) {
				return
			}
		}
	}
}

// Indices yields index / element pairs of the materialized content, in the
// carrier's native indexing relative to the span start.
func (self Span[S, E]) Indices() iter.Seq2[int, E] {
	return self.Content().Iter()
}

// Position returns the first relative index at which predicate holds over
// the materialized content, or false if no element satisfies it.
func (self Span[S, E]) Position(predicate func(E) bool) (int, bool) {
	for index, element := range self.Content().Iter() {
		if predicate(element) {
			return index, true
		}
	}
	return 0, false
}

// Compare compares the materialized content against a literal sequence.
func (self Span[S, E]) Compare(lit S) CompareResult {
	return self.Content().Compare(lit)
}

// CompareNoCase compares the materialized content against a literal
// sequence, ignoring case.
func (self Span[S, E]) CompareNoCase(lit S) CompareResult {
	return self.Content().CompareNoCase(lit)
}
