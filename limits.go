package ledger

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Limits maps years to that year's contribution-room limit. Only years that
// have been explicitly set are present.
type Limits struct {
	m map[int]Cents
}

func NewLimits() *Limits {
	return &Limits{m: make(map[int]Cents)}
}

func (l *Limits) IsEmpty() bool {
	return len(l.m) == 0
}

func (l *Limits) Len() int {
	return len(l.m)
}

func (l *Limits) Get(year int) (Cents, bool) {
	limit, ok := l.m[year]
	return limit, ok
}

func (l *Limits) Set(year int, limit Cents) {
	if l.m == nil {
		l.m = make(map[int]Cents)
	}
	l.m[year] = limit
}

func (l *Limits) Remove(year int) (Cents, bool) {
	limit, ok := l.m[year]
	delete(l.m, year)
	return limit, ok
}

// Years returns the set years in increasing order.
func (l *Limits) Years() []int {
	years := make([]int, 0, len(l.m))
	for year := range l.m {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// InceptionToYear returns the total accumulated room up to and including year.
func (l *Limits) InceptionToYear(year int) Cents {
	var total Cents
	for y, limit := range l.m {
		if y <= year {
			total += limit
		}
	}
	return total
}

// String formats the limits as pretty-printed JSON with years in increasing
// order, terminated by a newline.
func (l *Limits) String() string {
	if len(l.m) == 0 {
		return "{}\n"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	years := l.Years()
	for i, year := range years {
		fmt.Fprintf(&sb, "  %q: %d", strconv.Itoa(year), int64(l.m[year]))
		if i < len(years)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ParseLimits parses the JSON produced by String: an object mapping year
// strings to raw cents.
func ParseLimits(s string) (*Limits, error) {
	var raw map[string]Cents
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	l := NewLimits()
	for k, limit := range raw {
		year, err := strconv.Atoi(k)
		if err != nil || year < 0 || year > 9999 {
			return nil, fmt.Errorf("invalid limits: bad year %q", k)
		}
		l.m[year] = limit
	}
	return l, nil
}
