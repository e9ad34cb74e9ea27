package ledger

import "iter"

// Number constrains the value types an Aggregate can total.
type Number interface {
	~int | ~int64 | ~float64
}

// Aggregate accumulates values per key while keeping a running grand total.
// The zero value is an empty aggregate ready for use.
type Aggregate[K comparable, V Number] struct {
	m   map[K]V
	sum V
}

// Add folds value into key's total and into the grand total.
func (a *Aggregate[K, V]) Add(key K, value V) {
	if a.m == nil {
		a.m = make(map[K]V)
	}
	a.m[key] += value
	a.sum += value
}

// Get returns key's total. A key becomes present on its first Add, even when
// the added value is zero.
func (a *Aggregate[K, V]) Get(key K) (V, bool) {
	v, ok := a.m[key]
	return v, ok
}

// Sum returns the grand total across all keys.
func (a *Aggregate[K, V]) Sum() V {
	return a.sum
}

func (a *Aggregate[K, V]) Len() int {
	return len(a.m)
}

func (a *Aggregate[K, V]) IsEmpty() bool {
	return len(a.m) == 0
}

// All returns the per-key totals in unspecified order.
func (a *Aggregate[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range a.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
