package span

import (
	"errors"
	"fmt"
)

// ErrorKind is the coarse tag attached to a definitive split failure.
type ErrorKind uint8

const (
	ErrUnknown ErrorKind = iota
	ErrTakeWhile1
	ErrAlpha
	ErrDigit
	ErrAlphaNumeric
	ErrWhitespace
)

func (self ErrorKind) String() string {
	var display string
	switch self {
	case ErrUnknown:
		display = "unknown"
	case ErrTakeWhile1:
		display = "take while 1"
	case ErrAlpha:
		display = "alpha"
	case ErrDigit:
		display = "digit"
	case ErrAlphaNumeric:
		display = "alphanumeric"
	case ErrWhitespace:
		display = "whitespace"
	default:
		panic("A new error kind was introduced without updating this code")
	}
	return display
}

// Error is a definitive, non-recoverable split failure. It carries the
// offending span for diagnostics.
type Error[S Sequence[S, E], E any] struct {
	Kind ErrorKind
	At   Span[S, E]
}

func NewError[S Sequence[S, E], E any](at Span[S, E], kind ErrorKind) *Error[S, E] {
	return &Error[S, E]{
		Kind: kind,
		At:   at,
	}
}

func (self *Error[S, E]) Error() string {
	return fmt.Sprintf("%v: required at %d..%d", self.Kind, self.At.start, self.At.end)
}

// Incomplete signals that the current span does not contain enough elements
// to decide a streaming-mode split. The caller either supplies more input
// and retries, or switches to the complete variants at true end-of-stream.
type Incomplete struct {
	// Needed is the minimum number of additional elements required.
	Needed int
}

func (self *Incomplete) Error() string {
	return fmt.Sprintf("incomplete input: need at least %d more element(s)", self.Needed)
}

// IsIncomplete reports whether err is an Incomplete signal.
func IsIncomplete(err error) bool {
	var incomplete *Incomplete
	return errors.As(err, &incomplete)
}
