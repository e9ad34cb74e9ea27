package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

var plotByDay, plotByMonth, plotByYear bool

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [interval]",
	Short: "Plot transaction totals",
	Long: `Plot transaction totals as a horizontal bar chart.

When no interval is given, the default depends on the aggregation unit: the
past 2 weeks by day, the past 12 months by month, or the past 10 years by
year.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		_, cfg, rl := loadEnv()

		unit := ledger.DatepartMonth
		switch {
		case plotByYear:
			unit = ledger.DatepartYear
		case plotByDay:
			unit = ledger.DatepartDay
		}
		intervalArg := map[ledger.Datepart]string{
			ledger.DatepartYear:  "y-10:Y",
			ledger.DatepartMonth: "m-12:M",
			ledger.DatepartDay:   "d-14:D",
		}[unit]
		if len(args) == 1 {
			intervalArg = args[0]
		}
		interval, err := ledger.ParseInterval(intervalArg, today())
		if err != nil {
			log.Fatalln(err)
		}
		include, exclude := includeExcludePatterns()
		filtered := filterRecords(rl, interval, include, exclude)
		if filtered.IsEmpty() {
			printOutput("No transactions.")
			return
		}
		chart := report.BarchartConfig{
			Charset:   charsetFromConfig(cfg),
			Bounds:    interval,
			Unit:      unit,
			TermWidth: termWidth(),
			Rl:        filtered,
		}
		os.Stdout.WriteString(chart.Barchart().String())
	},
}

func termWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			return w
		}
	}
	return 0
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().BoolVarP(&plotByDay, "day", "d", false, "Aggregate data by day.")
	plotCmd.Flags().BoolVarP(&plotByMonth, "month", "m", false, "Aggregate data by month (default).")
	plotCmd.Flags().BoolVarP(&plotByYear, "year", "y", false, "Aggregate data by year.")
	plotCmd.MarkFlagsMutuallyExclusive("day", "month", "year")
	addCategoryFlags(plotCmd)
}
