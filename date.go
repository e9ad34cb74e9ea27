package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyDate      = errors.New("empty date string")
	ErrInvalidDate    = errors.New("invalid date")
	ErrDateOutOfRange = errors.New("date is before 0000-01-01 or after 9999-12-31")
	ErrBadDateAnchor  = errors.New("first character is not one of y, Y, m, M, d, D")
)

// Date is a calendar date without time or timezone information. Valid values
// are between 0000-01-01 and 9999-12-31 inclusive. Construct through NewDate,
// ParseDate, or DateFromTime; the zero value is not a valid date.
type Date struct {
	// Packed as year*10000 + month*100 + day, so the natural integer order
	// is chronological order.
	n int32
}

var (
	MinDate = Date{101}      // 0000-01-01
	MaxDate = Date{99991231} // 9999-12-31
)

// NewDate returns the date for the given calendar components, failing if they
// do not name a real day within [MinDate, MaxDate].
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrDateOutOfRange, year, month, day)
	}
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{int32(year*10000 + month*100 + day)}, nil
}

// DateFromTime truncates t to its calendar date in t's location.
func DateFromTime(t time.Time) Date {
	dt, err := NewDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		// Unreachable for any clock-produced time.
		panic(err)
	}
	return dt
}

func (d Date) Year() int  { return int(d.n) / 10000 }
func (d Date) Month() int { return int(d.n) / 100 % 100 }
func (d Date) Day() int   { return int(d.n) % 100 }

// Part extracts the year, month, or day component.
func (d Date) Part(part Datepart) int {
	switch part {
	case DatepartYear:
		return d.Year()
	case DatepartMonth:
		return d.Month()
	}
	return d.Day()
}

// Compare orders dates chronologically, returning -1, 0, or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.n < other.n:
		return -1
	case d.n > other.n:
		return 1
	}
	return 0
}

func (d Date) Before(other Date) bool { return d.n < other.n }
func (d Date) After(other Date) bool  { return d.n > other.n }

func minDate(a, b Date) Date {
	if a.n <= b.n {
		return a
	}
	return b
}

func maxDate(a, b Date) Date {
	if a.n >= b.n {
		return a
	}
	return b
}

// FirstOf truncates d to the first day of the given part.
func (d Date) FirstOf(part Datepart) Date {
	switch part {
	case DatepartYear:
		return Date{int32(d.Year()*10000 + 101)}
	case DatepartMonth:
		return Date{d.n - d.n%100 + 1}
	}
	return d
}

// LastOf extends d to the last day of the given part.
func (d Date) LastOf(part Datepart) Date {
	switch part {
	case DatepartYear:
		return Date{int32(d.Year()*10000 + 1231)}
	case DatepartMonth:
		return Date{d.n - d.n%100 + int32(daysInMonth(d.Year(), d.Month()))}
	}
	return d
}

// Shift offsets d by the given number of whole dateparts, failing if the
// result falls outside [MinDate, MaxDate].
//
// When shifting by years or months, the resultant date's day is clamped to
// the resultant month's final day. For example, shifting a Feb 29 by one year
// yields the next year's Feb 28.
func (d Date) Shift(part Datepart, offset int) (Date, error) {
	var y, m int
	switch part {
	case DatepartDay:
		t := time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, offset)
		if t.Year() < 0 || t.Year() > 9999 {
			return Date{}, fmt.Errorf("shift %s by %d days: %w", d, offset, ErrDateOutOfRange)
		}
		return Date{int32(t.Year()*10000 + int(t.Month())*100 + t.Day())}, nil
	case DatepartYear:
		y, m = d.Year()+offset, d.Month()
	case DatepartMonth:
		y, m = d.Year(), d.Month()+offset
		if m > 12 {
			y += (m - 1) / 12
			m = (m-1)%12 + 1
		} else if m < 1 {
			y += (m - 12) / 12
			m = (m%12+11)%12 + 1
		}
	}
	if y < 0 || y > 9999 {
		return Date{}, fmt.Errorf("shift %s by %d %ss: %w", d, offset, part, ErrDateOutOfRange)
	}
	day := d.Day()
	if last := daysInMonth(y, m); day > last {
		day = last
	}
	return Date{int32(y*10000 + m*100 + day)}, nil
}

// String formats d as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dt, err := parseISODate(s)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}

// ParseDate parses a date string relative to today. Inputs must be in one of
// the following formats:
//   - yyyy-mm-dd
//   - xn, where x is one of {y, Y, m, M, d, D} and n is an optional signed
//     integer offset (default 0): d/D shift today by n days; y and m anchor to
//     the first day of the year/month n units away, Y and M to the last day.
func ParseDate(s string, today Date) (Date, error) {
	if s == "" {
		return Date{}, ErrEmptyDate
	}
	if s[0] >= '0' && s[0] <= '9' {
		return parseISODate(s)
	}

	offset := 0
	if len(s) > 1 {
		var err error
		offset, err = strconv.Atoi(strings.TrimPrefix(s[1:], "+"))
		if err != nil {
			return Date{}, fmt.Errorf("%w: bad offset in %q", ErrInvalidDate, s)
		}
	}
	switch s[0] {
	case 'd', 'D':
		return today.Shift(DatepartDay, offset)
	case 'y':
		return today.FirstOf(DatepartYear).Shift(DatepartYear, offset)
	case 'Y':
		return today.LastOf(DatepartYear).Shift(DatepartYear, offset)
	case 'm':
		return today.FirstOf(DatepartMonth).Shift(DatepartMonth, offset)
	case 'M':
		dt, err := today.Shift(DatepartMonth, offset)
		if err != nil {
			return Date{}, err
		}
		return dt.LastOf(DatepartMonth), nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrBadDateAnchor, s)
}

func parseISODate(s string) (Date, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		if p == "" || len(p) > 4 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}[month]
}

// isLeapYear implements the Gregorian rule: divisible by 4, not by 100 unless
// by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
