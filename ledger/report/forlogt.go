package report

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/life-is-plastic/ledger"
)

// TemplatesConfig builds the template listing tree: one top-level node per
// template name, with the template's entries as aligned leaves.
type TemplatesConfig struct {
	Charset   Charset
	Templates map[string][]ledger.TemplateEntry
}

// Tree assembles the listing with template names in lexicographic order.
func (c TemplatesConfig) Tree() *Tree {
	alignment := 0
	for _, entries := range c.Templates {
		for _, entry := range entries {
			n := utf8.RuneCountInString(entry.Category) + boundingSpaces + minDashes +
				entry.Amount.CharlenForAlignment()
			if n > alignment {
				alignment = n
			}
		}
	}

	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	slices.Sort(names)

	t := &Tree{charset: c.Charset}
	for _, name := range names {
		nameNode := t.root.push(name)
		for _, entry := range c.Templates[name] {
			nameNode.push(c.entryData(entry, alignment))
		}
	}
	return t
}

func (c TemplatesConfig) entryData(entry ledger.TemplateEntry, alignment int) string {
	dashes := alignment - utf8.RuneCountInString(entry.Category) - boundingSpaces -
		entry.Amount.CharlenForAlignment()
	var sb strings.Builder
	sb.WriteString(entry.Category)
	sb.WriteByte(' ')
	for range dashes {
		sb.WriteString(c.Charset.Dash)
	}
	sb.WriteByte(' ')
	sb.WriteString(entry.Amount.String())
	return sb.String()
}
