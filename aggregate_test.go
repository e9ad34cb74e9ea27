package ledger

import (
	"slices"
	"testing"
)

func TestAggregate(t *testing.T) {
	var agg Aggregate[string, int]
	if !agg.IsEmpty() {
		t.Error("zero aggregate is not empty")
	}
	if agg.Sum() != 0 {
		t.Errorf("Sum() = %d, want 0", agg.Sum())
	}

	agg.Add("a", 10)
	agg.Add("b", -100)
	if agg.IsEmpty() {
		t.Error("aggregate is empty after Add")
	}
	if v, ok := agg.Get("a"); !ok || v != 10 {
		t.Errorf(`Get("a") = %d, %t`, v, ok)
	}
	if v, ok := agg.Get("b"); !ok || v != -100 {
		t.Errorf(`Get("b") = %d, %t`, v, ok)
	}
	if _, ok := agg.Get("c"); ok {
		t.Error(`Get("c") reports presence`)
	}
	if agg.Sum() != -90 {
		t.Errorf("Sum() = %d, want -90", agg.Sum())
	}

	agg.Add("a", -3)
	agg.Add("c", 0)
	if v, _ := agg.Get("a"); v != 7 {
		t.Errorf(`Get("a") = %d, want 7`, v)
	}
	if v, ok := agg.Get("c"); !ok || v != 0 {
		t.Errorf(`Get("c") = %d, %t, want 0, true`, v, ok)
	}
	if agg.Sum() != -93 {
		t.Errorf("Sum() = %d, want -93", agg.Sum())
	}
	if agg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", agg.Len())
	}

	var keys []string
	for k, v := range agg.All() {
		keys = append(keys, k)
		if want, _ := agg.Get(k); v != want {
			t.Errorf("All yielded %q: %d, want %d", k, v, want)
		}
	}
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("keys = %v", keys)
	}
}

func TestAggregateCents(t *testing.T) {
	var agg Aggregate[Date, Cents]
	agg.Add(mustDate(2015, 3, 30), 100)
	agg.Add(mustDate(2015, 3, 30), -250)
	agg.Add(mustDate(2015, 4, 1), 50)
	if agg.Sum() != -100 {
		t.Errorf("Sum() = %d, want -100", agg.Sum())
	}
	if v, _ := agg.Get(mustDate(2015, 3, 30)); v != -150 {
		t.Errorf("Get = %d, want -150", v)
	}
}
