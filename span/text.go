package span

import (
	"fmt"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Text is a string carrier. Indexing is byte-based, matching the string's
// native indexing; iteration yields each rune together with its starting
// byte offset, so predicate splits land on rune boundaries.
type Text string

func (self Text) Length() int {
	return len(self)
}

func (self Text) Sub(start int, end int) Text {
	return self[start:end]
}

func (self Text) Iter() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for offset, r := range string(self) {
			if !yield(offset, r) {
				return
			}
		}
	}
}

func (self Text) Compare(lit Text) CompareResult {
	n := min(len(self), len(lit))
	if self[:n] != lit[:n] {
		return CompareError
	}
	if len(self) < len(lit) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareNoCase lowers both sides rune by rune. Simple lowering keeps the
// element counts of both sequences stable, which full case folding does not.
func (self Text) CompareNoCase(lit Text) CompareResult {
	content := string(self)
	candidate := string(lit)
	for len(candidate) > 0 {
		if len(content) == 0 {
			return CompareIncomplete
		}
		have, haveSize := utf8.DecodeRuneInString(content)
		want, wantSize := utf8.DecodeRuneInString(candidate)
		if unicode.ToLower(have) != unicode.ToLower(want) {
			return CompareError
		}
		content = content[haveSize:]
		candidate = candidate[wantSize:]
	}
	return CompareOK
}

// Int64 converts the materialized content of a text span into a signed
// integer. It must only be called after a grammar rule has already
// guaranteed numeric content; a conversion failure here is a programming
// error upstream, not a recoverable parse condition, and aborts.
func Int64(s Span[Text, rune]) int64 {
	value, err := strconv.ParseInt(string(s.Content()), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("span: %v failed to parse to int64", s))
	}
	return value
}
