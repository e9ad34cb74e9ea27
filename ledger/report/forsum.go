package report

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/life-is-plastic/ledger"
)

// SumConfig builds the per-category sum tree: an In section for positive
// totals, an Out section for negative totals, and a Net section with the
// grand totals. Zero-amount records contribute to nothing.
type SumConfig struct {
	Charset Charset

	// Level truncates categories before aggregating. Level 0 folds everything
	// into a single bucket.
	Level int

	Rl *ledger.Recordlist
}

type sumRow struct {
	label  string
	amount ledger.Cents
}

// Tree assembles the sum tree for the config's record list. The In and Out
// sections are omitted when empty; Net is always present.
func (c SumConfig) Tree() *Tree {
	var pos, neg ledger.Aggregate[string, ledger.Cents]
	for r := range c.Rl.All() {
		switch {
		case r.Amount() > 0:
			pos.Add(r.Category().Level(c.Level), r.Amount())
		case r.Amount() < 0:
			neg.Add(r.Category().Level(c.Level), r.Amount())
		}
	}

	posRows := sortedRows(&pos)
	negRows := sortedRows(&neg)
	netRows := []sumRow{
		{"In", pos.Sum()},
		{"Out", neg.Sum()},
		{"Total", pos.Sum() + neg.Sum()},
	}

	alignment := 0
	for _, rows := range [][]sumRow{posRows, negRows, netRows} {
		for _, row := range rows {
			n := utf8.RuneCountInString(row.label) + boundingSpaces + minDashes +
				row.amount.CharlenForAlignment()
			if n > alignment {
				alignment = n
			}
		}
	}

	t := &Tree{charset: c.Charset}
	c.addSection(&t.root, "In", posRows, alignment)
	c.addSection(&t.root, "Out", negRows, alignment)
	c.addSection(&t.root, "Net", netRows, alignment)
	return t
}

// sortedRows orders buckets by descending magnitude, breaking exact amount
// ties by label.
func sortedRows(agg *ledger.Aggregate[string, ledger.Cents]) []sumRow {
	rows := make([]sumRow, 0, agg.Len())
	for label, amount := range agg.All() {
		rows = append(rows, sumRow{label, amount})
	}
	slices.SortFunc(rows, func(a, b sumRow) int {
		if a.amount == b.amount {
			return strings.Compare(a.label, b.label)
		}
		return cmp.Compare(b.amount.Abs(), a.amount.Abs())
	})
	return rows
}

func (c SumConfig) addSection(root *node, name string, rows []sumRow, alignment int) {
	if len(rows) == 0 {
		return
	}
	section := root.push(name)
	for _, row := range rows {
		section.push(c.rowData(row, alignment))
	}
}

func (c SumConfig) rowData(row sumRow, alignment int) string {
	dashes := alignment - utf8.RuneCountInString(row.label) - boundingSpaces -
		row.amount.CharlenForAlignment()
	var sb strings.Builder
	sb.WriteString(row.label)
	sb.WriteByte(' ')
	for range dashes {
		sb.WriteString(c.Charset.Dash)
	}
	sb.WriteByte(' ')
	sb.WriteString(row.amount.String())
	return sb.String()
}
