package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view [interval]",
	Short: "View transactions",
	Long: `View transactions.

The interval must be in the format 'A:B'. Each of 'A' or 'B' is either an
ISO 8601 date (yyyy-mm-dd) or a relative date. 'A' and 'B' are both
optional, defaulting to 0000-01-01 and 9999-12-31 respectively.

A relative date is one of the following ('n' is optional and defaults to 0):
  dn: n days from today
  mn: first day of the nth month from today
  Mn: last day of the nth month from today
  yn: first day of the nth year from today
  Yn: last day of the nth year from today

The shorthands dn = dn:dn, mn = mn:Mn, and yn = yn:Yn are also available.`,
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
		printViewTree(report.ViewConfig{
			Charset:  charsetFromConfig(cfg),
			FirstIID: cfg.FirstIndexInDate,
			Rl:       filterRecords(rl, interval, include, exclude),
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	addCategoryFlags(viewCmd)
}
