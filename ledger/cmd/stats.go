package cmd

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View repository statistics",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		_, _, rl := loadEnv()

		if rl.IsEmpty() {
			printOutput("No transactions.")
			return
		}

		cats := make(map[ledger.Category]bool)
		for r := range rl.All() {
			cats[r.Category()] = true
		}
		span := rl.SpannedInterval()
		// Inclusive span: a single-day ledger covers one day, not zero.
		dur := dateToTime(span.End).Sub(dateToTime(span.Start)) + 24*time.Hour

		printOutput(fmt.Sprintf("Transactions: %d", rl.Len()))
		printOutput(fmt.Sprintf("Categories:   %d", len(cats)))
		printOutput(fmt.Sprintf("First:        %s", span.Start))
		printOutput(fmt.Sprintf("Last:         %s", span.End))
		printOutput(fmt.Sprintf("Span:         %s", durafmt.Parse(dur).LimitFirstN(2)))
	},
}

func dateToTime(d ledger.Date) time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
