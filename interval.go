package ledger

import (
	"fmt"
	"iter"
	"strings"
)

// Interval is the inclusive bound of two dates. If Start is greater than End,
// the interval is empty. All empty intervals are equivalent.
type Interval struct {
	Start Date
	End   Date
}

var (
	// MaxInterval is the largest possible interval.
	MaxInterval = Interval{Start: MinDate, End: MaxDate}

	EmptyInterval = Interval{Start: MaxDate, End: MinDate}
)

func (i Interval) IsEmpty() bool {
	return i.Start.After(i.End)
}

// Equal reports whether the intervals cover the same dates. Any two empty
// intervals are equal regardless of their bounds.
func (i Interval) Equal(other Interval) bool {
	return i.IsEmpty() && other.IsEmpty() || i.Start == other.Start && i.End == other.End
}

// Contains reports whether dt falls within the interval.
func (i Interval) Contains(dt Date) bool {
	return !i.Start.After(dt) && !dt.After(i.End)
}

func (i Interval) Intersection(other Interval) Interval {
	return Interval{
		Start: maxDate(i.Start, other.Start),
		End:   minDate(i.End, other.End),
	}
}

// Iter returns a restartable sequence of subintervals. Subintervals try to
// span the beginning to the end of calendar years/months. For example,
// iterating by year over [2000-04-15, 2003-08-10] yields [2000-04-15,
// 2000-12-31], [2001-01-01, 2001-12-31], and so on.
func (i Interval) Iter(part Datepart) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if i.IsEmpty() {
			return
		}
		cur := Interval{Start: i.Start, End: minDate(i.Start.LastOf(part), i.End)}
		for {
			if !yield(cur) {
				return
			}
			dt, err := cur.Start.Shift(part, 1)
			if err != nil {
				return
			}
			cur = Interval{Start: dt.FirstOf(part), End: minDate(dt.LastOf(part), i.End)}
			if cur.IsEmpty() {
				return
			}
		}
	}
}

func (i Interval) String() string {
	return i.Start.String() + ":" + i.End.String()
}

// ParseInterval parses an interval relative to today. A colon separates the
// two bounds; an omitted left or right bound means MinDate or MaxDate
// respectively. A lone date expands to the span it names: a year-anchored
// token ("y", "Y-1") covers its whole year, a month-anchored token its whole
// month, anything else a single day.
func ParseInterval(s string, today Date) (Interval, error) {
	left, right, found := strings.Cut(s, ":")
	if !found {
		dt, err := ParseDate(s, today)
		if err != nil {
			return Interval{}, err
		}
		part := DatepartDay
		switch s[0] {
		case 'y', 'Y':
			part = DatepartYear
		case 'm', 'M':
			part = DatepartMonth
		}
		return Interval{Start: dt.FirstOf(part), End: dt.LastOf(part)}, nil
	}

	i := MaxInterval
	if left != "" {
		dt, err := ParseDate(left, today)
		if err != nil {
			return Interval{}, fmt.Errorf("invalid left side: %w", err)
		}
		i.Start = dt
	}
	if right != "" {
		dt, err := ParseDate(right, today)
		if err != nil {
			return Interval{}, fmt.Errorf("invalid right side: %w", err)
		}
		i.End = dt
	}
	return i, nil
}
