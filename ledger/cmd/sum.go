package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

var sumLevel int

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum [interval]",
	Short: "View transaction totals",
	Long: `View transaction totals.

The level flag controls how deep categories are aggregated:
  level 2: commute/car/gas -> commute/car
  level 2: commute         -> commute
  level 0: anything        -> All`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		_, cfg, rl := loadEnv()

		intervalArg := "m"
		if len(args) == 1 {
			intervalArg = args[0]
		}
		interval, err := ledger.ParseInterval(intervalArg, today())
		if err != nil {
			log.Fatalln(err)
		}
		include, exclude := includeExcludePatterns()
		tr := report.SumConfig{
			Charset: charsetFromConfig(cfg),
			Level:   sumLevel,
			Rl:      filterRecords(rl, interval, include, exclude),
		}
		os.Stdout.WriteString(tr.Tree().String())
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().IntVarP(&sumLevel, "level", "l", 1, "Category level to aggregate on.")
	addCategoryFlags(sumCmd)
}
