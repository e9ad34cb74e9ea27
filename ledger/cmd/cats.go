package cmd

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
)

// catsCmd represents the cats command
var catsCmd = &cobra.Command{
	Use:   "cats [pattern]...",
	Short: "View unique categories",
	Long: `View unique categories.

If multiple wildcard patterns are provided, includes categories that match
any pattern.`,
	Run: func(_ *cobra.Command, args []string) {
		_, _, rl := loadEnv()

		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"*"}
		}
		include := preprocessCategories(patterns, fullmatchFlag)
		filtered := filterRecords(rl, ledger.MaxInterval, include, nil)

		var cats []string
		for r := range filtered.All() {
			cats = append(cats, r.Category().String())
		}
		slices.Sort(cats)
		cats = slices.Compact(cats)
		if len(cats) == 0 {
			printOutput("No categories.")
			return
		}
		printOutput(strings.Join(cats, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(catsCmd)

	addFullmatchFlag(catsCmd)
}
