package hashsearch

import (
	"cmp"
	"fmt"

	hserrors "github.com/tamirms/hashsearch/errors"
)

// NotFound is returned by every search when the target is absent.
const NotFound = -1

// Convention selects the interval bounds a binary search maintains.
type Convention uint8

const (
	// Closed keeps both ends inclusive: [lo, hi].
	Closed Convention = iota

	// HalfOpen keeps the lower end inclusive and the upper end exclusive: [lo, hi).
	HalfOpen
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case Closed:
		return "closed"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ParseConvention is the inverse of Convention.String.
func ParseConvention(name string) (Convention, error) {
	switch name {
	case "closed":
		return Closed, nil
	case "half-open":
		return HalfOpen, nil
	}
	return 0, fmt.Errorf("%w: %q", hserrors.ErrUnknownConvention, name)
}

// midpoint returns lo + (hi-lo)/2. Writing it as (lo+hi)/2 overflows once
// lo+hi exceeds the int range, even when both bounds are valid indices.
func midpoint(lo, hi int) int {
	return lo + (hi-lo)/2
}

// SearchClosedFunc binary searches n elements using a closed interval
// [lo, hi]. compare(i) reports how element i orders against the target:
// negative if it is smaller, positive if larger, zero on a match.
//
// The elements must be sorted ascending with respect to compare. Sortedness
// is not checked; results on unsorted input are unspecified. With duplicate
// matches any one of their indices may be returned.
func SearchClosedFunc(n int, compare func(i int) int) int {
	lo, hi := 0, n-1
	for lo <= hi {
		mid := midpoint(lo, hi)
		switch c := compare(mid); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid
		}
	}
	return NotFound
}

// SearchHalfOpenFunc is SearchClosedFunc with a half-open interval [lo, hi).
// mid < hi always holds, so every iteration shrinks the interval.
func SearchHalfOpenFunc(n int, compare func(i int) int) int {
	lo, hi := 0, n
	for lo < hi {
		mid := midpoint(lo, hi)
		switch c := compare(mid); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return NotFound
}

// SearchClosed returns the index of target in the ascending slice s, or
// NotFound. See SearchClosedFunc.
func SearchClosed[S ~[]E, E cmp.Ordered](s S, target E) int {
	return SearchClosedFunc(len(s), func(i int) int {
		return cmp.Compare(s[i], target)
	})
}

// SearchHalfOpen returns the index of target in the ascending slice s, or
// NotFound. See SearchHalfOpenFunc.
func SearchHalfOpen[S ~[]E, E cmp.Ordered](s S, target E) int {
	return SearchHalfOpenFunc(len(s), func(i int) int {
		return cmp.Compare(s[i], target)
	})
}

// Search dispatches to SearchClosed or SearchHalfOpen. An unknown
// convention finds nothing.
func Search[S ~[]E, E cmp.Ordered](c Convention, s S, target E) int {
	switch c {
	case Closed:
		return SearchClosed(s, target)
	case HalfOpen:
		return SearchHalfOpen(s, target)
	}
	return NotFound
}

// SearchFunc dispatches to SearchClosedFunc or SearchHalfOpenFunc. An
// unknown convention finds nothing.
func SearchFunc(c Convention, n int, compare func(i int) int) int {
	switch c {
	case Closed:
		return SearchClosedFunc(n, compare)
	case HalfOpen:
		return SearchHalfOpenFunc(n, compare)
	}
	return NotFound
}
