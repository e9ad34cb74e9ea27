package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Cents is an integral representation of a monetary quantity with up to two
// decimal places. All arithmetic stays in integer cents; no floating point is
// involved anywhere.
type Cents int64

// Abs returns the magnitude of c.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Charlen returns len(c.String()) without building the string.
func (c Cents) Charlen() int {
	n := uint64(c)
	if c < 0 {
		n = -n
	}
	if n < 100 {
		n = 100
	}
	l := countDigits(n)
	l += (l - 3) / 3 // commas
	l++              // decimal point
	if c < 0 {
		l += 2 // parentheses
	}
	return l
}

// CharlenForAlignment returns c.Charlen() assuming a non-negative quantity has
// a trailing space in its string representation. With the trailing space the
// string has three characters after the decimal point regardless of sign, so
// right-aligning is equivalent to aligning on the decimal point.
func (c Cents) CharlenForAlignment() int {
	if c >= 0 {
		return c.Charlen() + 1
	}
	return c.Charlen()
}

// String formats with two decimal places and thousands separators. Negative
// quantities are wrapped in parentheses.
func (c Cents) String() string {
	n := uint64(c)
	if c < 0 {
		n = -n
	}
	buf := make([]byte, 0, c.Charlen())
	popDigit := func() {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}

	popDigit()
	popDigit()
	buf = append(buf, '.')
	popDigit()
	for i := 1; n > 0; i++ {
		if i%3 == 0 {
			buf = append(buf, ',')
		}
		popDigit()
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	if c < 0 {
		return "(" + string(buf) + ")"
	}
	return string(buf)
}

// ParseCents parses a cents quantity from a human-readable string, which may
// contain comma thousands separators and any number of decimal places.
// A parenthesized quantity is negative, so Cents round-trips through String.
// Decimal places beyond the second are discarded, not rounded.
func ParseCents(s string) (Cents, error) {
	stripped := strings.ReplaceAll(s, ",", "")
	if len(stripped) >= 2 && stripped[0] == '(' && stripped[len(stripped)-1] == ')' {
		stripped = "-" + stripped[1:len(stripped)-1]
	}
	switch stripped {
	case "", "+", "-", ".", "+.", "-.":
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	b := []byte(stripped + "00")
	if i := bytes.IndexByte(b, '.'); i >= 0 {
		b[i], b[i+1] = b[i+1], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
		b = b[:i+2]
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Cents(n), nil
}

func countDigits(n uint64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
