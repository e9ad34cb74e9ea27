package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLimitkind = errors.New("invalid account type")

// Limitkind selects the contribution-room formula for a registered account.
type Limitkind int

const (
	// LimitkindRrsp rooms carry forward; contributions reduce room
	// permanently.
	LimitkindRrsp Limitkind = iota

	// LimitkindTfsa is like rrsp, except withdrawals made in prior years are
	// added back to the current year's room.
	LimitkindTfsa
)

// LimitkindNames lists the parseable names, in declaration order.
var LimitkindNames = []string{"rrsp", "tfsa"}

func (k Limitkind) String() string {
	if k < LimitkindRrsp || k > LimitkindTfsa {
		return fmt.Sprintf("Limitkind(%d)", int(k))
	}
	return LimitkindNames[k]
}

// ParseLimitkind parses an account type name, case-insensitively.
func ParseLimitkind(s string) (Limitkind, error) {
	for i, name := range LimitkindNames {
		if strings.EqualFold(s, name) {
			return Limitkind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLimitkind, s)
}

// Remaining returns the contribution room left at the end of the given year:
// accumulated limits minus contributions dated in or before the year, plus,
// for tfsa, withdrawals dated strictly before the year.
func (k Limitkind) Remaining(limits *Limits, rl *Recordlist, year int) Cents {
	var contributions, withdrawalsBefore Cents
	for r := range rl.All() {
		switch {
		case r.Date().Year() <= year && r.Amount() > 0:
			contributions += r.Amount()
		case r.Date().Year() < year && r.Amount() < 0:
			withdrawalsBefore -= r.Amount()
		}
	}
	remaining := limits.InceptionToYear(year) - contributions
	if k == LimitkindTfsa {
		remaining += withdrawalsBefore
	}
	return remaining
}
