package report

import (
	"math"
	"strings"

	"github.com/life-is-plastic/ledger"
)

// BarchartConfig builds a horizontal bar chart of totals bucketed by calendar
// unit. Each bucket gets a positive-total line, a negative-total line, or
// both, scaled against the largest bucket magnitude.
type BarchartConfig struct {
	Charset Charset

	// Bounds clips the chart; buckets come from its intersection with the
	// record list's spanned interval.
	Bounds ledger.Interval

	Unit ledger.Datepart

	// TermWidth is the available terminal width. Values below the minimum are
	// treated as the minimum.
	TermWidth int

	Rl *ledger.Recordlist
}

// Barchart is a fully laid-out chart ready for rendering.
type Barchart struct {
	charset      Charset
	bounds       ledger.Interval
	unit         ledger.Datepart
	pos          ledger.Aggregate[ledger.Date, ledger.Cents]
	neg          ledger.Aggregate[ledger.Date, ledger.Cents]
	labelCharlen int
	maxAbsVal    ledger.Cents
	maxBarlen    int
}

// Barchart lays out the chart for the config's record list.
func (c BarchartConfig) Barchart() *Barchart {
	bounds := c.Rl.SpannedInterval().Intersection(c.Bounds)
	var pos, neg ledger.Aggregate[ledger.Date, ledger.Cents]
	for interval := range bounds.Iter(c.Unit) {
		for _, r := range c.Rl.SliceSpanningInterval(interval) {
			switch {
			case r.Amount() > 0:
				pos.Add(interval.Start, r.Amount())
			case r.Amount() < 0:
				neg.Add(interval.Start, r.Amount())
			}
		}
	}

	labelCharlen := 10 // yyyy-mm-dd
	switch c.Unit {
	case ledger.DatepartYear:
		labelCharlen = 4 // yyyy
	case ledger.DatepartMonth:
		labelCharlen = 8 // yyyy mmm
	}
	var maxAbsVal ledger.Cents
	for _, v := range pos.All() {
		maxAbsVal = max(maxAbsVal, v.Abs())
	}
	for _, v := range neg.All() {
		maxAbsVal = max(maxAbsVal, v.Abs())
	}
	// Using (-maxAbsVal) here sidesteps computing the true width of every
	// entry. If maxAbsVal came from a positive entry the chart can come out
	// two columns narrower than the terminal allows.
	maxBarlen := max(c.TermWidth, minTermWidth) -
		labelCharlen -
		boundingSpaces -
		1 - // axis just before the bar
		(-maxAbsVal).Charlen()

	return &Barchart{
		charset:      c.Charset,
		bounds:       bounds,
		unit:         c.Unit,
		pos:          pos,
		neg:          neg,
		labelCharlen: labelCharlen,
		maxAbsVal:    maxAbsVal,
		maxBarlen:    maxBarlen,
	}
}

func (b *Barchart) label(dt ledger.Date) string {
	iso := dt.String()
	switch b.unit {
	case ledger.DatepartYear:
		return iso[:4]
	case ledger.DatepartMonth:
		return iso[:4] + " " + viewMonths[dt.Month()]
	}
	return iso
}

func (b *Barchart) barlen(val ledger.Cents) int {
	x := float64(val.Abs()) / float64(b.maxAbsVal) * float64(b.maxBarlen)
	return min(b.maxBarlen, int(math.Round(x)))
}

func (b *Barchart) draw(sb *strings.Builder, dt ledger.Date) {
	if b.pos.IsEmpty() && b.neg.IsEmpty() {
		return
	}
	sb.WriteString(b.label(dt))
	sb.WriteByte(' ')
	sb.WriteString(b.charset.ChartAxis)
	if !b.pos.IsEmpty() {
		val, _ := b.pos.Get(dt)
		if barlen := b.barlen(val); barlen > 0 {
			sb.WriteString(b.charset.ColorPrefixGreen)
			for range barlen {
				sb.WriteString(b.charset.ChartBarPos)
			}
			sb.WriteString(b.charset.ColorSuffix)
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
		sb.WriteByte('\n')

		if b.neg.IsEmpty() {
			return
		}
		for range b.labelCharlen {
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		sb.WriteString(b.charset.ChartAxis)
	}
	val, _ := b.neg.Get(dt)
	if barlen := b.barlen(val); barlen > 0 {
		sb.WriteString(b.charset.ColorPrefixRed)
		for range barlen {
			sb.WriteString(b.charset.ChartBarNeg)
		}
		sb.WriteString(b.charset.ColorSuffix)
		sb.WriteByte(' ')
	}
	sb.WriteString(val.String())
	sb.WriteByte('\n')
}

// String renders one bucket per line pair, terminated by a newline. A chart
// with no nonzero buckets renders as the empty string.
func (b *Barchart) String() string {
	var sb strings.Builder
	for interval := range b.bounds.Iter(b.unit) {
		b.draw(&sb, interval.Start)
	}
	return sb.String()
}
