package array

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
)

// Compare reports the order of a relative to b: negative when a sorts first,
// zero when they are equal, positive when b sorts first.
type Compare[T any] func(a, b T) int

// Number is the set of element types NumAsc and NumDesc accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumAsc orders numbers from smallest to largest.
func NumAsc[T Number](a, b T) int {
	return cmp.Compare(a, b)
}

// NumDesc orders numbers from largest to smallest.
func NumDesc[T Number](a, b T) int {
	return cmp.Compare(b, a)
}

// StrAsc orders strings by byte value, so upper case sorts before lower case.
func StrAsc(a, b string) int {
	return strings.Compare(a, b)
}

// StrDesc is the reverse of StrAsc.
func StrDesc(a, b string) int {
	return strings.Compare(b, a)
}

// StrAscIgnoreCase orders strings by their case-folded form. Both arguments
// are folded on every call; when sorting many strings, fold each once with
// Fold and compare the results with StrAsc.
func StrAscIgnoreCase(a, b string) int {
	return strings.Compare(fold(a), fold(b))
}

// StrDescIgnoreCase is the reverse of StrAscIgnoreCase.
func StrDescIgnoreCase(a, b string) int {
	return strings.Compare(fold(b), fold(a))
}

// Reverse flips the direction of compare.
func Reverse[T any](compare Compare[T]) Compare[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Fold returns the case-folded form of s, the key StrAscIgnoreCase orders by.
func Fold(s string) string {
	return fold(s)
}

// fold builds a new Caser per call: cases.Caser keeps state and is not safe
// for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
