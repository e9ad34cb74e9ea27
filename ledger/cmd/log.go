package cmd

import (
	"log"

	"github.com/alfredxing/calc/compute"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

var logNote string
var logCreate bool

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log <category> <amount> [date]",
	Short: "Log a transaction",
	Long: `Log a transaction.

The category is case-sensitive. Use '/' to indicate hierarchy: in
'commute/car/gas', 'commute' is the top level and 'commute/car/gas' is the
leaf. The amount may be an arithmetic expression such as '12.50*3'. Amounts
without a leading '+' or '-' take their sign from the repository's
unsignedIsNegative setting.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(_ *cobra.Command, args []string) {
		fs, cfg, rl := loadEnv()

		category, err := ledger.ParseCategory(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		amount, err := parseAmountArg(args[1], cfg.UnsignedIsNegative)
		if err != nil {
			log.Fatalln(err)
		}
		dateArg := "d"
		if len(args) == 3 {
			dateArg = args[2]
		}
		dt, err := ledger.ParseDate(dateArg, today())
		if err != nil {
			log.Fatalln(err)
		}

		if !logCreate && !categoryExists(rl, category) {
			log.Fatalln("nonexistent category")
		}

		rl.Insert(ledger.NewRecord(dt, category, amount, logNote))
		if err := fs.WriteRecords(rl); err != nil {
			log.Fatalln(err)
		}
		printViewTree(report.ViewConfig{
			Charset:  charsetFromConfig(cfg),
			FirstIID: cfg.FirstIndexInDate,
			Rl:       recordsOn(rl, dt),
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "Optional comments about the transaction.")
	logCmd.Flags().BoolVarP(&logCreate, "create", "c", false, "Allow logging the entry if its category does not already exist.")
}

func categoryExists(rl *ledger.Recordlist, c ledger.Category) bool {
	for r := range rl.All() {
		if r.Category() == c {
			return true
		}
	}
	return false
}

// parseAmountArg converts an amount argument to cents. Plain amounts go
// through ParseCents; anything else is evaluated as an arithmetic
// expression. Amounts without an explicit leading sign take their sign from
// unsignedIsNegative.
func parseAmountArg(s string, unsignedIsNegative bool) (ledger.Cents, error) {
	c, err := ledger.ParseCents(s)
	if err != nil {
		val, cerr := compute.Evaluate(s)
		if cerr != nil {
			return 0, err
		}
		c = ledger.Cents(decimal.NewFromFloat(val).Shift(2).Round(0).IntPart())
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return c, nil
	}
	if unsignedIsNegative {
		return -c.Abs(), nil
	}
	return c.Abs(), nil
}
