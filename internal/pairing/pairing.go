// Package pairing interleaves two character lists position by position.
package pairing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when the two lists differ in length.
var ErrLengthMismatch = errors.New("pairing: input lists differ in length")

// Fixed exercise inputs. Empty strings are placeholders and pair with the
// other side's character alone.
var (
	left  = []string{"m", "c", "i", "e", "p", "r", "e", "t", "o", "", "o", "o", "i", "s", "g", "o", "p"}
	right = []string{"a", "h", "n", "", "e", "c", "p", "i", "n", "r", "b", "t", "c", "-", "r", "u", "!"}
)

// Inputs returns copies of the fixed left and right character lists.
func Inputs() (a, b []string) {
	return clone(left), clone(right)
}

// Pair concatenates a[i] and b[i] for every position.
//
// Lists of different length are rejected rather than truncated to the shorter one.
func Pair(a, b []string) ([]string, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	pairs := make([]string, len(a))
	for i := range a {
		pairs[i] = a[i] + b[i]
	}
	return pairs, nil
}

// Join concatenates the pairs into a single string.
func Join(pairs []string) string {
	return strings.Join(pairs, "")
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
