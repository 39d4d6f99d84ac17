package span

// SplitAtPosition searches the materialized content for the first element
// satisfying predicate and splits there via TakeSplit. Streaming mode: if no
// element matches, an *Incomplete signal is returned, since the span's end
// is not necessarily the true end of all available input.
func (self Span[S, E]) SplitAtPosition(predicate func(E) bool) (rest Span[S, E], taken Span[S, E], err error) {
	n, found := self.Position(predicate)
	if !found {
		return Span[S, E]{}, Span[S, E]{}, &Incomplete{Needed: 1}
	}
	rest, taken = self.TakeSplit(n)
	return rest, taken, nil
}

// SplitAtPositionComplete is SplitAtPosition for callers that declared no
// more input will ever arrive: a predicate that never matches consumes the
// entire remaining span instead of reporting Incomplete.
func (self Span[S, E]) SplitAtPositionComplete(predicate func(E) bool) (rest Span[S, E], taken Span[S, E]) {
	n, found := self.Position(predicate)
	if !found {
		return self.TakeSplit(self.Len())
	}
	return self.TakeSplit(n)
}

// SplitAtPosition1 is SplitAtPosition requiring at least one consumed
// element. A match at relative index 0 is a definitive *Error tagged with
// kind: the one-or-more contract would be violated by a zero-element split.
func (self Span[S, E]) SplitAtPosition1(predicate func(E) bool, kind ErrorKind) (rest Span[S, E], taken Span[S, E], err error) {
	n, found := self.Position(predicate)
	if !found {
		return Span[S, E]{}, Span[S, E]{}, &Incomplete{Needed: 1}
	}
	if n == 0 {
		return Span[S, E]{}, Span[S, E]{}, NewError(self, kind)
	}
	rest, taken = self.TakeSplit(n)
	return rest, taken, nil
}

// SplitAtPosition1Complete is the complete-mode variant of SplitAtPosition1.
// A predicate that never matches consumes the whole span when it is
// non-empty; on an empty span it is a definitive *Error, since no further
// input can ever satisfy the one-or-more requirement.
func (self Span[S, E]) SplitAtPosition1Complete(predicate func(E) bool, kind ErrorKind) (rest Span[S, E], taken Span[S, E], err error) {
	n, found := self.Position(predicate)
	if !found {
		if self.Len() == 0 {
			return Span[S, E]{}, Span[S, E]{}, NewError(self, kind)
		}
		rest, taken = self.TakeSplit(self.Len())
		return rest, taken, nil
	}
	if n == 0 {
		return Span[S, E]{}, Span[S, E]{}, NewError(self, kind)
	}
	rest, taken = self.TakeSplit(n)
	return rest, taken, nil
}
