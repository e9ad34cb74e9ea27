package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/report"
)

// logtCmd represents the logt command
var logtCmd = &cobra.Command{
	Use:   "logt [template] [date]",
	Short: "Log transactions in a predefined template",
	Long: `Log transactions in a predefined template.

Templates are defined in the repository config. If no template is given,
displays the available templates.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		fs, cfg, rl := loadEnv()

		if len(args) == 0 {
			tr := report.TemplatesConfig{
				Charset:   charsetFromConfig(cfg),
				Templates: cfg.Templates,
			}
			os.Stdout.WriteString(tr.Tree().String())
			return
		}

		tmpl, ok := cfg.Templates[args[0]]
		if !ok {
			log.Fatalln("unknown template")
		}
		dateArg := "d"
		if len(args) == 2 {
			dateArg = args[1]
		}
		dt, err := ledger.ParseDate(dateArg, today())
		if err != nil {
			log.Fatalln(err)
		}

		for _, entry := range tmpl {
			category, err := ledger.ParseCategory(entry.Category)
			if err != nil {
				log.Fatalln(fmt.Errorf("template %q: %w", args[0], err))
			}
			rl.Insert(ledger.NewRecord(dt, category, entry.Amount, ""))
		}
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
	rootCmd.AddCommand(logtCmd)
}
