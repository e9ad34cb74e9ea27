package cmd

import (
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

var rmYes bool

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <date> <index>",
	Short: "Remove a transaction",
	Long: `Remove a transaction.

By default shows what would be removed without changing anything. Pass --yes
to execute the removal.`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		fs, cfg, rl := loadEnv()

		dt, err := ledger.ParseDate(args[0], today())
		if err != nil {
			log.Fatalln(err)
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalln(err)
		}
		iid0 := index - cfg.FirstIndexInDate
		if _, err := rl.Get(dt, iid0); err != nil {
			log.Fatalln("nonexistent transaction")
		}

		cs := charsetFromConfig(cfg)
		day := recordsOn(rl, dt)
		decorator := report.LeafDecoratorFunc(func(_ ledger.Record, i int, leaf string) string {
			if i != iid0 {
				return leaf
			}
			msg, prefix := " <- [WOULD BE REMOVED]", cs.ColorPrefixYellow
			if rmYes {
				msg, prefix = " <- [REMOVED]", cs.ColorPrefixRed
			}
			if prefix == "" {
				return leaf + msg
			}
			return leaf + prefix + msg + cs.ColorSuffix
		})

		if rmYes {
			if _, err := rl.Remove(dt, iid0); err != nil {
				log.Fatalln(err)
			}
			if err := fs.WriteRecords(rl); err != nil {
				log.Fatalln(err)
			}
		}
		printViewTree(report.ViewConfig{
			Charset:   cs,
			FirstIID:  cfg.FirstIndexInDate,
			Rl:        day,
			Decorator: decorator,
		})
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Execute the removal instead of displaying dry run changes.")
}
