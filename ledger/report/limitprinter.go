package report

import (
	"fmt"
	"strings"

	"github.com/life-is-plastic/ledger"
)

// LimitsConfig builds the contribution-room table: one row per limit year up
// to and including the query year, a rule, then Total and Remaining rows.
type LimitsConfig struct {
	Charset Charset
	Year    int
	Kind    ledger.Limitkind
	Limits  *ledger.Limits
	Rl      *ledger.Recordlist
}

// Limitprinter is a laid-out contribution-room table ready for rendering.
type Limitprinter struct {
	charset   Charset
	rows      []sumRow
	summary   [2]sumRow
	alignment int
}

// Limitprinter lays out the table for the config's limits and records.
func (c LimitsConfig) Limitprinter() *Limitprinter {
	var rows []sumRow
	var total ledger.Cents
	for _, year := range c.Limits.Years() {
		if year > c.Year {
			break
		}
		limit, _ := c.Limits.Get(year)
		rows = append(rows, sumRow{fmt.Sprintf("%04d", year), limit})
		total += limit
	}
	summary := [2]sumRow{
		{"Total", total},
		{"Remaining", c.Kind.Remaining(c.Limits, c.Rl, c.Year)},
	}

	alignment := 0
	for _, row := range append(rows[:len(rows):len(rows)], summary[:]...) {
		n := len(row.label) + boundingSpaces + minDashes +
			row.amount.CharlenForAlignment()
		if n > alignment {
			alignment = n
		}
	}

	return &Limitprinter{
		charset:   c.Charset,
		rows:      rows,
		summary:   summary,
		alignment: alignment,
	}
}

func (p *Limitprinter) drawRow(sb *strings.Builder, row sumRow) {
	dashes := p.alignment - len(row.label) - boundingSpaces -
		row.amount.CharlenForAlignment()
	sb.WriteString(row.label)
	sb.WriteByte(' ')
	for range dashes {
		sb.WriteString(p.charset.Dash)
	}
	sb.WriteByte(' ')
	sb.WriteString(row.amount.String())
	sb.WriteByte('\n')
}

// String renders the table, terminated by a newline. The rule between the
// yearly rows and the summary is omitted when there are no yearly rows.
func (p *Limitprinter) String() string {
	var sb strings.Builder
	for _, row := range p.rows {
		p.drawRow(&sb, row)
	}
	if len(p.rows) > 0 {
		for range p.alignment - 1 {
			sb.WriteByte('=')
		}
		sb.WriteByte('\n')
	}
	for _, row := range p.summary {
		p.drawRow(&sb, row)
	}
	return sb.String()
}
