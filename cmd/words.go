package main

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/davecgh/go-spew/spew"
	"github.com/span-go/span/span"
)

// words walks the input with the complete-mode split family, printing every
// word span together with its absolute carrier offsets.
func words(input string, verbose bool) error {
	start := time.Now()

	whole := span.From(span.Text(input))
	rest := whole

	count := 0
	for rest.Len() > 0 {
		// Skip the separator run.
		rest, _ = rest.SplitAtPositionComplete(func(r rune) bool {
			return !unicode.IsSpace(r)
		})
		if rest.Len() == 0 {
			break
		}

		next, word, err := rest.SplitAtPosition1Complete(func(r rune) bool {
			return unicode.IsSpace(r)
		}, span.ErrTakeWhile1)
		if err != nil {
			var splitErr *span.Error[span.Text, rune]
			if errors.As(err, &splitErr) {
				panic(spew.Sdump(splitErr))
			}
			return err
		}

		fmt.Printf("%q @ [%d,%d)\n", string(word.Content()), word.Start(), word.End())
		if verbose {
			fmt.Print(spew.Sdump(word))
		}

		rest = next
		count++
	}

	fmt.Printf("%d word(s), %d element(s) consumed: %v\n", count, whole.Offset(rest), time.Since(start))
	return nil
}
