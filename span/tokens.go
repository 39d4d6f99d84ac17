package span

import "iter"

// Tokens is a slice carrier over arbitrary comparable elements, typically
// lexer tokens. Sub-spans alias the same backing array.
type Tokens[E comparable] []E

func (self Tokens[E]) Length() int {
	return len(self)
}

func (self Tokens[E]) Sub(start int, end int) Tokens[E] {
	return self[start:end]
}

func (self Tokens[E]) Iter() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for index, element := range self {
			if !yield(index, element) {
				return
			}
		}
	}
}

func (self Tokens[E]) Compare(lit Tokens[E]) CompareResult {
	n := min(len(self), len(lit))
	for i := 0; i < n; i++ {
		if self[i] != lit[i] {
			return CompareError
		}
	}
	if len(self) < len(lit) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareNoCase equals Compare: case has no meaning for token elements.
func (self Tokens[E]) CompareNoCase(lit Tokens[E]) CompareResult {
	return self.Compare(lit)
}
