package span

import (
	"bytes"
	"iter"
)

// Bytes is a byte-buffer carrier with byte elements. Sub-spans alias the
// same backing array; the buffer must not be mutated while spans over it
// are live.
type Bytes []byte

func (self Bytes) Length() int {
	return len(self)
}

func (self Bytes) Sub(start int, end int) Bytes {
	return self[start:end]
}

func (self Bytes) Iter() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for index, b := range self {
			if !yield(index, b) {
				return
			}
		}
	}
}

func (self Bytes) Compare(lit Bytes) CompareResult {
	n := min(len(self), len(lit))
	if !bytes.Equal(self[:n], lit[:n]) {
		return CompareError
	}
	if len(self) < len(lit) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareNoCase folds ASCII letters only, the usual byte-buffer convention.
func (self Bytes) CompareNoCase(lit Bytes) CompareResult {
	n := min(len(self), len(lit))
	for i := 0; i < n; i++ {
		if lowerASCII(self[i]) != lowerASCII(lit[i]) {
			return CompareError
		}
	}
	if len(self) < len(lit) {
		return CompareIncomplete
	}
	return CompareOK
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
