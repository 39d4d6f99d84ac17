package span

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

func TestSplitAtPosition(t *testing.T) {
	carrier := Text("hello world")
	rest, taken, err := From(carrier).SplitAtPosition(isSpace)

	assert.NoError(t, err)
	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, New(carrier, 5, 11), rest)
}

func TestSplitAtPositionNoMatchIsIncomplete(t *testing.T) {
	// Streaming mode: the span's end is not the true end of all available
	// input, so "no match yet" must stay distinguishable from "no match
	// ever".
	_, _, err := From(Text("hello")).SplitAtPosition(isSpace)

	assert.Error(t, err)
	assert.True(t, IsIncomplete(err))

	var incomplete *Incomplete
	assert.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 1, incomplete.Needed)
}

func TestSplitAtPositionMatchAtZero(t *testing.T) {
	// The zero-or-more variant accepts an empty consumption.
	carrier := Text(" hello")
	rest, taken, err := From(carrier).SplitAtPosition(isSpace)

	assert.NoError(t, err)
	assert.Equal(t, New(carrier, 0, 0), taken)
	assert.Equal(t, New(carrier, 0, 6), rest)
}

func TestSplitAtPositionComplete(t *testing.T) {
	carrier := Text("hello world")
	rest, taken := From(carrier).SplitAtPositionComplete(isSpace)

	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, New(carrier, 5, 11), rest)
}

func TestSplitAtPositionCompleteNoMatchConsumesAll(t *testing.T) {
	carrier := Text("hello")
	rest, taken := From(carrier).SplitAtPositionComplete(isSpace)

	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, New(carrier, 5, 5), rest)
	assert.Equal(t, 0, rest.Len())
}

func TestSplitAtPosition1(t *testing.T) {
	carrier := Text("hello world")
	rest, taken, err := From(carrier).SplitAtPosition1(isSpace, ErrWhitespace)

	assert.NoError(t, err)
	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, New(carrier, 5, 11), rest)
}

func TestSplitAtPosition1MatchAtZeroIsError(t *testing.T) {
	s := From(Text(" hello"))
	_, _, err := s.SplitAtPosition1(isSpace, ErrAlpha)

	assert.Error(t, err)
	assert.False(t, IsIncomplete(err))

	var splitErr *Error[Text, rune]
	assert.True(t, errors.As(err, &splitErr))
	assert.Equal(t, ErrAlpha, splitErr.Kind)
	assert.Equal(t, s, splitErr.At)
}

func TestSplitAtPosition1NoMatchIsIncomplete(t *testing.T) {
	_, _, err := From(Text("hello")).SplitAtPosition1(isSpace, ErrWhitespace)

	assert.True(t, IsIncomplete(err))
}

func TestSplitAtPosition1CompleteNoMatchConsumesAll(t *testing.T) {
	carrier := Text("hello")
	rest, taken, err := From(carrier).SplitAtPosition1Complete(notLetter, ErrAlpha)

	assert.NoError(t, err)
	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, New(carrier, 5, 5), rest)
}

func TestSplitAtPosition1CompleteEmptyInputIsError(t *testing.T) {
	// No further input can ever arrive in complete mode, so a zero-length
	// span must yield a definitive error, never Incomplete.
	_, _, err := EndOf(Text("hello")).SplitAtPosition1Complete(notLetter, ErrAlpha)

	assert.Error(t, err)
	assert.False(t, IsIncomplete(err))

	var splitErr *Error[Text, rune]
	assert.True(t, errors.As(err, &splitErr))
	assert.Equal(t, ErrAlpha, splitErr.Kind)
}

func TestSplitAtPosition1CompleteMatchAtZeroIsError(t *testing.T) {
	_, _, err := From(Text("123abc")).SplitAtPosition1Complete(notLetter, ErrAlpha)

	assert.Error(t, err)
	assert.False(t, IsIncomplete(err))
}

func TestConsumptionChain(t *testing.T) {
	// take_split(5) on "thinghello", then an alphabetic run over the
	// remainder: absolute offsets survive both splits.
	carrier := Text("thinghello")

	rest, taken := From(carrier).TakeSplit(5)
	assert.Equal(t, Text("thing"), taken.Content())
	assert.Equal(t, New(carrier, 0, 5), taken)
	assert.Equal(t, Text("hello"), rest.Content())
	assert.Equal(t, New(carrier, 5, 10), rest)

	final, word, err := rest.SplitAtPosition1Complete(notLetter, ErrAlpha)
	assert.NoError(t, err)
	assert.Equal(t, New(carrier, 5, 10), word)
	assert.Equal(t, New(carrier, 10, 10), final)
}

func TestErrorMessages(t *testing.T) {
	splitErr := NewError(New(Text(" x"), 0, 2), ErrTakeWhile1)
	assert.Equal(t, "take while 1: required at 0..2", splitErr.Error())

	incomplete := &Incomplete{Needed: 1}
	assert.Equal(t, "incomplete input: need at least 1 more element(s)", incomplete.Error())
	assert.False(t, IsIncomplete(splitErr))
}
