package report

import (
	"strconv"
	"strings"

	"github.com/life-is-plastic/ledger"
)

// LeafDecorator rewrites a record's leaf line before it enters the view tree.
// The undecorated leaf is "{iid} {dashes} {amount} {category}" with ": {note}"
// appended when the record carries a note.
type LeafDecorator interface {
	DecorateLeaf(r ledger.Record, iid0 int, leaf string) string
}

// LeafDecoratorFunc adapts a function to the LeafDecorator interface.
type LeafDecoratorFunc func(r ledger.Record, iid0 int, leaf string) string

func (f LeafDecoratorFunc) DecorateLeaf(r ledger.Record, iid0 int, leaf string) string {
	return f(r, iid0, leaf)
}

// ViewConfig builds the chronological view tree: years at the top level, then
// months, then days, then one leaf per record with amounts aligned on the
// decimal point.
type ViewConfig struct {
	Charset Charset

	// FirstIID is added to each record's zero-based index in date before
	// display.
	FirstIID int

	Rl *ledger.Recordlist

	// Decorator, if non-nil, is applied to every leaf line.
	Decorator LeafDecorator
}

var viewMonths = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var viewOrdinals = [...]string{
	"",
	"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th", "10th",
	"11th", "12th", "13th", "14th", "15th", "16th", "17th", "18th", "19th", "20th",
	"21st", "22nd", "23rd", "24th", "25th", "26th", "27th", "28th", "29th", "30th",
	"31st",
}

// Tree assembles the view tree for the config's record list.
func (c ViewConfig) Tree() *Tree {
	alignment := c.alignmentCharlen()
	t := &Tree{charset: c.Charset}
	for iid0, r := range c.Rl.AllWithIID() {
		c.addRecord(&t.root, r, iid0, alignment)
	}
	return t
}

func (c ViewConfig) alignmentCharlen() int {
	max := 0
	for iid0, r := range c.Rl.AllWithIID() {
		n := countDigits(iid0+c.FirstIID) + boundingSpaces + minDashes +
			r.Amount().CharlenForAlignment()
		if n > max {
			max = n
		}
	}
	return max
}

func (c ViewConfig) addRecord(root *node, r ledger.Record, iid0, alignment int) {
	year := r.Date().String()[:4]
	if len(root.children) == 0 || root.lastChild().data != year {
		root.push(year)
	}
	yearNode := root.lastChild()

	month := viewMonths[r.Date().Month()]
	if len(yearNode.children) == 0 || yearNode.lastChild().data != month {
		yearNode.push(month)
	}
	monthNode := yearNode.lastChild()

	day := viewOrdinals[r.Date().Day()]
	if len(monthNode.children) == 0 || monthNode.lastChild().data != day {
		monthNode.push(day)
	}
	monthNode.lastChild().push(c.leafData(r, iid0, alignment))
}

func (c ViewConfig) leafData(r ledger.Record, iid0, alignment int) string {
	iid := iid0 + c.FirstIID
	dashes := alignment - countDigits(iid) - boundingSpaces -
		r.Amount().CharlenForAlignment()
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(iid))
	sb.WriteByte(' ')
	for range dashes {
		sb.WriteString(c.Charset.Dash)
	}
	sb.WriteByte(' ')
	sb.WriteString(r.Amount().String())
	// Give non-negative amounts a trailing space so category always starts at
	// the same column.
	if r.Amount() >= 0 {
		sb.WriteByte(' ')
	}
	sb.WriteByte(' ')
	sb.WriteString(r.Category().String())
	if r.Note() != "" {
		sb.WriteString(": ")
		sb.WriteString(r.Note())
	}
	leaf := sb.String()
	if c.Decorator != nil {
		leaf = c.Decorator.DecorateLeaf(r, iid0, leaf)
	}
	return leaf
}
