package array

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNumbers(t *testing.T) {
	arr := []int{8, 3, 11, 29, 31, 55, 25, 1}

	slices.SortFunc(arr, NumAsc[int])
	assert.Equal(t, []int{1, 3, 8, 11, 25, 29, 31, 55}, arr)

	slices.SortFunc(arr, NumDesc[int])
	assert.Equal(t, []int{55, 31, 29, 25, 11, 8, 3, 1}, arr)
}

func TestCompareStrings(t *testing.T) {
	input := []string{"x", "a", "f", "e", "c", "c", "d", "B", "Z"}

	tests := []struct {
		name    string
		compare Compare[string]
		want    []string
	}{
		{"asc", StrAsc, []string{"B", "Z", "a", "c", "c", "d", "e", "f", "x"}},
		{"desc", StrDesc, []string{"x", "f", "e", "d", "c", "c", "a", "Z", "B"}},
		{"asc ignore case", StrAscIgnoreCase, []string{"a", "B", "c", "c", "d", "e", "f", "x", "Z"}},
		{"desc ignore case", StrDescIgnoreCase, []string{"Z", "x", "f", "e", "d", "c", "c", "B", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr := slices.Clone(input)
			slices.SortFunc(arr, tt.compare)
			assert.Equal(t, tt.want, arr)
		})
	}
}

func TestFoldAgreesWithIgnoreCase(t *testing.T) {
	names := []string{"Work", "straße", "STRASSE", "home", "Ärzte", "zoo"}
	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, StrAscIgnoreCase(a, b), StrAsc(Fold(a), Fold(b)), "%s vs %s", a, b)
		}
	}
	assert.Equal(t, "strasse", Fold("STRASSE"))
	assert.Equal(t, Fold("straße"), Fold("STRASSE"))
}

func TestReverse(t *testing.T) {
	desc := Reverse[float64](NumAsc[float64])
	assert.Positive(t, desc(1, 2))
	assert.Negative(t, desc(2, 1))
	assert.Zero(t, desc(2, 2))
}
