package span

import "iter"

// Sequence is the capability a carrier must provide so that spans can be
// taken over it. S is the concrete carrier type itself, E its element type.
// Implementations must be cheap to copy (a handle, never the payload) and
// must treat the underlying payload as immutable.
type Sequence[S, E any] interface {
	// Length returns the number of elements in the carrier's native indexing.
	Length() int
	// Sub returns the sub-sequence covering the half-open range [start, end).
	// Bounds are clamped by the caller before this is invoked.
	Sub(start, end int) S
	// Iter yields index / element pairs in the carrier's native order and
	// indexing. The sequence is finite and restartable.
	Iter() iter.Seq2[int, E]
	// Compare performs a case-sensitive prefix comparison against lit.
	Compare(lit S) CompareResult
	// CompareNoCase performs a case-insensitive prefix comparison against lit.
	// Carriers without a notion of case treat this as Compare.
	CompareNoCase(lit S) CompareResult
}

// CompareResult is the three-way outcome of a prefix comparison.
type CompareResult uint8

const (
	// CompareOK: the literal is a prefix of the content and fully consumed.
	CompareOK CompareResult = iota
	// CompareIncomplete: the content is a strict prefix of the literal, so
	// more input could still complete the match.
	CompareIncomplete
	// CompareError: the content diverges from the literal.
	CompareError
)

func (self CompareResult) String() string {
	var display string
	switch self {
	case CompareOK:
		display = "match"
	case CompareIncomplete:
		display = "incomplete"
	case CompareError:
		display = "mismatch"
	default:
		panic("A new compare result was introduced without updating this code")
	}
	return display
}
