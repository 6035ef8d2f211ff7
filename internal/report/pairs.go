package report

import "fmt"

// Pair is two report values, in the order they were encountered, whose sum
// equals the search target.
type Pair struct {
	First  int32
	Second int32
}

// Product multiplies the pair in 64 bits so no int32 product can overflow.
func (p Pair) Product() int64 {
	return int64(p.First) * int64(p.Second)
}

// String renders the pair as "(first, second)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.First, p.Second)
}

type findOptions struct {
	selfPairs bool
}

// FindOption tunes FindPairs.
type FindOption func(*findOptions)

// WithoutSelfPairs stops a value from being paired with itself. By default a
// single entry equal to half the target is reported as a pair.
func WithoutSelfPairs() FindOption {
	return func(o *findOptions) { o.selfPairs = false }
}

// WithSelfPairs sets whether an entry may be paired with itself.
func WithSelfPairs(allow bool) FindOption {
	return func(o *findOptions) { o.selfPairs = allow }
}

// FindPairs returns every pair of positions whose values sum to target.
//
// Each unordered index pair is reported once, the first time the double scan
// meets it, so equal values at different positions give distinct pairs while
// (i, j) and (j, i) never both appear. Returns ErrNoCandidate when nothing
// matches.
func FindPairs(values []int32, target int32, opts ...FindOption) ([]Pair, error) {
	o := findOptions{selfPairs: true}
	for _, opt := range opts {
		opt(&o)
	}

	// The outer index always reaches the lower position of an index pair
	// first, so starting the inner scan at i visits each pair exactly once in
	// full-square encounter order.
	var pairs []Pair
	for i, a := range values {
		start := i
		if !o.selfPairs {
			start = i + 1
		}
		for j := start; j < len(values); j++ {
			b := values[j]
			if int64(a)+int64(b) == int64(target) {
				pairs = append(pairs, Pair{First: a, Second: b})
			}
		}
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w %d", ErrNoCandidate, target)
	}
	return pairs, nil
}
