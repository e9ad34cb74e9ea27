package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDatepart = errors.New("invalid datepart")

// Datepart is a calendar granularity used for truncation, shifting, and
// interval subdivision.
type Datepart int

const (
	DatepartYear Datepart = iota
	DatepartMonth
	DatepartDay
)

// DatepartNames lists the parseable names, in declaration order.
var DatepartNames = []string{"year", "month", "day"}

func (p Datepart) String() string {
	if p < DatepartYear || p > DatepartDay {
		return fmt.Sprintf("Datepart(%d)", int(p))
	}
	return DatepartNames[p]
}

// ParseDatepart parses a datepart name, case-insensitively.
func ParseDatepart(s string) (Datepart, error) {
	for i, name := range DatepartNames {
		if strings.EqualFold(s, name) {
			return Datepart(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDatepart, s)
}
