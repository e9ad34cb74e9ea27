// Package report renders record lists into the text reports shown by the CLI:
// the chronological view tree, the per-category sum tree, the time-bucketed
// bar chart, and the contribution-room table.
package report

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Charset is the glyph and color palette reports draw with. The zero value is
// not usable; start from DefaultCharset.
type Charset struct {
	Dash          string
	TreeSidewaysT string
	TreeCorner    string
	TreePipeGap   string
	TreeSpace     string
	ChartAxis     string
	ChartBarPos   string
	ChartBarNeg   string

	ColorPrefixGreen  string
	ColorPrefixYellow string
	ColorPrefixRed    string
	ColorSuffix       string
}

// DefaultCharset returns an ASCII-only palette with color disabled.
func DefaultCharset() Charset {
	return Charset{
		Dash:          "-",
		TreeSidewaysT: "|-- ",
		TreeCorner:    "`-- ",
		TreePipeGap:   "|   ",
		TreeSpace:     "    ",
		ChartAxis:     "|",
		ChartBarPos:   "+",
		ChartBarNeg:   "-",
	}
}

// WithUnicode swaps in box-drawing glyphs.
func (c Charset) WithUnicode() Charset {
	c.Dash = "─"
	c.TreeSidewaysT = "├── "
	c.TreeCorner = "└── "
	c.TreePipeGap = "│   "
	c.TreeSpace = "    "
	c.ChartAxis = "│"
	c.ChartBarPos = "█"
	c.ChartBarNeg = "█"
	return c
}

// Muted palette. Full saturation is hard on the eyes against both light and
// dark backgrounds.
var (
	chartGreen  = colorful.Color{R: 90.0 / 255, G: 165.0 / 255, B: 90.0 / 255}
	chartYellow = colorful.Color{R: 165.0 / 255, G: 165.0 / 255, B: 90.0 / 255}
	chartRed    = colorful.Color{R: 165.0 / 255, G: 90.0 / 255, B: 90.0 / 255}
)

// WithColor enables truecolor escape sequences.
func (c Charset) WithColor() Charset {
	c.ColorPrefixGreen = truecolorPrefix(chartGreen)
	c.ColorPrefixYellow = truecolorPrefix(chartYellow)
	c.ColorPrefixRed = truecolorPrefix(chartRed)
	c.ColorSuffix = "\x1b[0m"
	return c
}

func truecolorPrefix(color colorful.Color) string {
	r, g, b := color.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
