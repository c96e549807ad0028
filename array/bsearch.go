// Package array holds the ordered-slice helpers used to keep event lists
// sorted: comparators and a binary search that reports either the index of a
// match or the point where the target would be inserted.
package array

import "cmp"

// Result is the decoded form of a search code.
type Result struct {
	Index int  // index of a match, or the insertion point when Found is false
	Found bool
}

// Code encodes r the way BSearch reports it: the index itself when found,
// -(insertion point) - 1 otherwise.
func (r Result) Code() int {
	if r.Found {
		return r.Index
	}
	return -r.Index - 1
}

// Decode turns a search code into a Result.
func Decode(code int) Result {
	if code >= 0 {
		return Result{Index: code, Found: true}
	}
	return Result{Index: -code - 1}
}

// InsertionPoint returns the index at which the searched value belongs.
// For a found code it is the index of the match.
func InsertionPoint(code int) int {
	return Decode(code).Index
}

// BSearch searches s, which must be sorted under compare, for target.
// compare is called as compare(element, target) and must be non-nil.
// When several elements compare equal to target any of their indices may be
// returned.
func BSearch[S ~[]E, E any](s S, target E, compare Compare[E]) int {
	return search(len(s), func(i int) int {
		return compare(s[i], target)
	})
}

// BSearchFunc is BSearch over keys extracted from the elements of s. target
// is compared against key(element), so it may be a partial key when compare
// only looks at some of its fields.
func BSearchFunc[S ~[]E, E, K any](s S, target K, key func(E) K, compare Compare[K]) int {
	return search(len(s), func(i int) int {
		return compare(key(s[i]), target)
	})
}

// BSearchOrdered searches an ascending slice of an ordered type.
func BSearchOrdered[S ~[]E, E cmp.Ordered](s S, target E) int {
	return BSearch(s, target, cmp.Compare[E])
}

// Search is BSearch returning the decoded Result.
func Search[S ~[]E, E any](s S, target E, compare Compare[E]) Result {
	return Decode(BSearch(s, target, compare))
}

// SearchFunc is BSearchFunc returning the decoded Result.
func SearchFunc[S ~[]E, E, K any](s S, target K, key func(E) K, compare Compare[K]) Result {
	return Decode(BSearchFunc(s, target, key, compare))
}

func search(n int, compareAt func(i int) int) int {
	low, high := 0, n-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch c := compareAt(mid); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return mid
		}
	}
	return -low - 1
}

// Insert places v into s after every element that compares equal to it and
// returns the grown slice, so equal elements keep the order they arrived in.
func Insert[S ~[]E, E any](s S, v E, compare Compare[E]) S {
	return insertAt(s, v, Search(s, v, after(compare)))
}

// InsertFunc is Insert with the position located by key.
func InsertFunc[S ~[]E, E, K any](s S, v E, key func(E) K, compare Compare[K]) S {
	return insertAt(s, v, SearchFunc(s, key(v), key, after(compare)))
}

// after never reports equality: elements equal to the target sort before
// it, so the search ends past the last of them.
func after[T any](compare Compare[T]) Compare[T] {
	return func(el, target T) int {
		if compare(el, target) > 0 {
			return 1
		}
		return -1
	}
}

func insertAt[S ~[]E, E any](s S, v E, r Result) S {
	var zero E
	s = append(s, zero)
	copy(s[r.Index+1:], s[r.Index:])
	s[r.Index] = v
	return s
}
