package ledger

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

var ErrNoSuchRecord = errors.New("no such record")

// Recordlist holds records in nondecreasing date order. Records sharing a date
// keep their insertion order and are addressed by their index in date (iid):
// the zero-based position of a record among the records of its date.
type Recordlist struct {
	records []Record
}

// NewRecordlist builds a list from records in any order. The sort is stable,
// so records sharing a date keep their relative order.
func NewRecordlist(records []Record) *Recordlist {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return a.Date().Compare(b.Date())
	})
	return &Recordlist{records: sorted}
}

func (rl *Recordlist) Len() int {
	return len(rl.records)
}

func (rl *Recordlist) IsEmpty() bool {
	return len(rl.records) == 0
}

// SpannedInterval returns the interval from the earliest record to the
// latest, or an empty interval for an empty list.
func (rl *Recordlist) SpannedInterval() Interval {
	if rl.IsEmpty() {
		return EmptyInterval
	}
	return Interval{
		Start: rl.records[0].Date(),
		End:   rl.records[len(rl.records)-1].Date(),
	}
}

// SliceSpanningInterval returns the contiguous run of records dated within
// the interval. The result aliases the list's backing array and must not be
// modified.
func (rl *Recordlist) SliceSpanningInterval(interval Interval) []Record {
	if interval.IsEmpty() {
		return nil
	}
	i := sort.Search(len(rl.records), func(k int) bool {
		return !rl.records[k].Date().Before(interval.Start)
	})
	j := i + sort.Search(len(rl.records)-i, func(k int) bool {
		return rl.records[i+k].Date().After(interval.End)
	})
	return rl.records[i:j]
}

// Insert places r after any existing records sharing its date.
func (rl *Recordlist) Insert(r Record) {
	i := sort.Search(len(rl.records), func(k int) bool {
		return rl.records[k].Date().After(r.Date())
	})
	rl.records = slices.Insert(rl.records, i, r)
}

func (rl *Recordlist) indexOf(dt Date, iid int) (int, bool) {
	if iid < 0 {
		return 0, false
	}
	i := sort.Search(len(rl.records), func(k int) bool {
		return !rl.records[k].Date().Before(dt)
	})
	j := i + sort.Search(len(rl.records)-i, func(k int) bool {
		return rl.records[i+k].Date().After(dt)
	})
	if i+iid >= j {
		return 0, false
	}
	return i + iid, true
}

// Get returns the record at the given date and index in date.
func (rl *Recordlist) Get(dt Date, iid int) (Record, error) {
	i, ok := rl.indexOf(dt, iid)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s @%d", ErrNoSuchRecord, dt, iid)
	}
	return rl.records[i], nil
}

// Remove deletes and returns the record at the given date and index in date.
// The list is unmodified on failure.
func (rl *Recordlist) Remove(dt Date, iid int) (Record, error) {
	i, ok := rl.indexOf(dt, iid)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s @%d", ErrNoSuchRecord, dt, iid)
	}
	r := rl.records[i]
	rl.records = slices.Delete(rl.records, i, i+1)
	return r, nil
}

// All returns the records in date order.
func (rl *Recordlist) All() iter.Seq[Record] {
	return slices.Values(rl.records)
}

// AllWithIID returns the records in date order, keyed by index in date. The
// key restarts at zero whenever the date changes.
func (rl *Recordlist) AllWithIID() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		iid := 0
		for i, r := range rl.records {
			if i > 0 && r.Date().After(rl.records[i-1].Date()) {
				iid = 0
			}
			if !yield(iid, r) {
				return
			}
			iid++
		}
	}
}

// String formats the list as one JSON record per line, with a terminating
// newline after each.
func (rl *Recordlist) String() string {
	var sb strings.Builder
	for _, r := range rl.records {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseRecordlist parses newline-delimited JSON records. Blank lines are
// skipped; line numbers in errors are one-based and count blank lines.
func ParseRecordlist(s string) (*Recordlist, error) {
	var records []Record
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("invalid record at line %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return NewRecordlist(records), nil
}
