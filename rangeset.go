package main

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// ErrBadRange is returned when a range has Low > High.
var ErrBadRange = errors.New("bad range")

// Range is the closed interval [Low, High].
type Range struct {
	Low, High int
}

// Len wraps around for ranges wider than math.MaxInt.
func (r Range) Len() int {
	return r.High - r.Low + 1
}

// RangeSet is a set of integers kept as a sorted list of ranges.
// Consecutive ranges never overlap or touch: for any two neighbours a and b,
// a.High+1 < b.Low.
type RangeSet []Range

// NewRangeSet returns the set covering every given range.
// It is the same as adding each range in turn to an empty set.
func NewRangeSet(ranges ...Range) (RangeSet, error) {
	var s RangeSet
	for _, r := range ranges {
		if err := s.AddRange(r.Low, r.High); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *RangeSet) Add(single int) {
	_ = s.AddRange(single, single)
}

// AddRange adds [low, high] to s, merging it with every range it overlaps
// or touches.
func (s *RangeSet) AddRange(low, high int) error {
	if low > high {
		return fmt.Errorf("%w: [%v, %v]", ErrBadRange, low, high)
	}

	// Ranges in [i, j) overlap or touch [low, high].
	i := sort.Search(len(*s), func(i int) bool {
		return low == math.MinInt || (*s)[i].High >= low-1
	})
	j := sort.Search(len(*s), func(i int) bool {
		return high != math.MaxInt && (*s)[i].Low > high+1
	})

	if i == j {
		*s = slices.Insert(*s, i, Range{low, high})
		return nil
	}

	r := Range{min(low, (*s)[i].Low), max(high, (*s)[j-1].High)}
	(*s)[i] = r
	*s = slices.Delete(*s, i+1, j)
	return nil
}

func (s RangeSet) Contains(single int) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].High >= single })
	return i < len(s) && s[i].Low <= single
}

// Size returns the number of integers in s. Like Range.Len, it wraps around
// when that number exceeds math.MaxInt.
func (s RangeSet) Size() int {
	n := 0
	for _, r := range s {
		n += r.Len()
	}
	return n
}

func (s RangeSet) IsEmpty() bool {
	return len(s) == 0
}

func (s RangeSet) Equal(other RangeSet) bool {
	return slices.Equal(s, other)
}

// All returns every integer in s in ascending order.
// Each call to the returned sequence walks s again from the start.
func (s RangeSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range s {
			for v := r.Low; ; v++ {
				if !yield(v) {
					return
				}
				if v == r.High {
					break
				}
			}
		}
	}
}

// ComplementWithin returns the integers in bound that are not in s.
// An inverted bound yields an empty set.
func (s RangeSet) ComplementWithin(bound Range) RangeSet {
	if bound.Low > bound.High {
		return nil
	}

	var result RangeSet
	next := bound.Low // lowest integer not yet known to be covered
	for _, r := range s {
		if r.High < next {
			continue
		}
		if r.Low > bound.High {
			break
		}
		if r.Low > next {
			result = append(result, Range{next, r.Low - 1})
		}
		if r.High >= bound.High {
			return result
		}
		next = r.High + 1
	}
	return append(result, Range{next, bound.High})
}
