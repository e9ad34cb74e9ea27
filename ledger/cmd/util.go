package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
)

var categoriesFlag string
var notCategoriesFlag string
var fullmatchFlag bool

func addCategoryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&categoriesFlag, "categories", "c", "*",
		"Comma-separated wildcard patterns to match categories of interest.")
	cmd.Flags().StringVarP(&notCategoriesFlag, "not-categories", "x", "",
		"Comma-separated wildcard patterns to match categories to exclude.\nTakes precedence over --categories.")
	addFullmatchFlag(cmd)
}

func addFullmatchFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&fullmatchFlag, "fullmatch", false,
		"Match patterns against whole categories instead of any substring.")
}

// includeExcludePatterns converts the shared category flags into pattern
// lists ready for filterRecords.
func includeExcludePatterns() (include, exclude []string) {
	include = preprocessCategories(strings.Split(categoriesFlag, ","), fullmatchFlag)
	exclude = preprocessCategories(strings.Split(notCategoriesFlag, ","), fullmatchFlag)
	return include, exclude
}

// preprocessCategories rewrites each pattern to match anywhere within a
// category unless fullmatch is set. Empty patterns stay empty and match
// nothing.
func preprocessCategories(patterns []string, fullmatch bool) []string {
	if fullmatch {
		return patterns
	}
	out := make([]string, len(patterns))
	for i, p := range patterns {
		if p != "" {
			if !strings.HasPrefix(p, "*") {
				p = "*" + p
			}
			if !strings.HasSuffix(p, "*") {
				p += "*"
			}
		}
		out[i] = p
	}
	return out
}

// matchWildcard reports whether s matches pattern, where '*' matches any run
// of characters and '?' matches exactly one. Unlike path.Match, '/' is not
// special, which matters because categories contain it.
func matchWildcard(pattern, s string) bool {
	p, i := 0, 0
	starP, starS := -1, 0
	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == s[i]):
			p++
			i++
		case p < len(pattern) && pattern[p] == '*':
			starP, starS = p, i
			p++
		case starP >= 0:
			// Backtrack: let the last '*' swallow one more character.
			starS++
			p, i = starP+1, starS
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

func matchesAny(patterns []string, s string) bool {
	for _, p := range patterns {
		if matchWildcard(p, s) {
			return true
		}
	}
	return false
}

// filterRecords returns the records in interval whose category matches any
// include pattern and no exclude pattern.
func filterRecords(rl *ledger.Recordlist, interval ledger.Interval, include, exclude []string) *ledger.Recordlist {
	var out []ledger.Record
	for _, r := range rl.SliceSpanningInterval(interval) {
		cat := r.Category().String()
		if matchesAny(include, cat) && !matchesAny(exclude, cat) {
			out = append(out, r)
		}
	}
	return ledger.NewRecordlist(out)
}

// recordsOn returns the records logged on a single date.
func recordsOn(rl *ledger.Recordlist, dt ledger.Date) *ledger.Recordlist {
	return ledger.NewRecordlist(rl.SliceSpanningInterval(ledger.Interval{Start: dt, End: dt}))
}
