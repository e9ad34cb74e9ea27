package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/repofs"
	"github.com/life-is-plastic/ledger/ledger/report"
)

var limSet string
var limView string

// limCmd represents the lim command
var limCmd = &cobra.Command{
	Use:   "lim [year]",
	Short: "View and manage contribution limits",
	Long: `View and manage contribution limits.

The year may be given in the form 'yn' to indicate an offset of 'n' years
from this year.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		fs, cfg, rl := loadEnv()

		yearArg := "y"
		if len(args) == 1 {
			yearArg = args[0]
		}
		year, err := parseYearArg(yearArg, today())
		if err != nil {
			log.Fatalln(err)
		}
		limits, err := fs.ReadLimits()
		if err != nil {
			log.Fatalln(err)
		}

		if limSet != "" {
			amount, err := ledger.ParseCents(limSet)
			if err != nil {
				log.Fatalln(err)
			}
			if err := updateLimits(os.Stdout, fs, limits, year, amount); err != nil {
				log.Fatalln(err)
			}
			return
		}

		kind, err := limitkindFor(limView, cfg.LimAccountType)
		if err != nil {
			log.Fatalln(err)
		}
		p := report.LimitsConfig{
			Charset: charsetFromConfig(cfg),
			Year:    year,
			Kind:    kind,
			Limits:  limits,
			Rl:      rl,
		}
		os.Stdout.WriteString(p.Limitprinter().String())
	},
}

func init() {
	rootCmd.AddCommand(limCmd)

	limCmd.Flags().StringVarP(&limSet, "set", "s", "", "Set the contribution limit for YEAR. An amount of 0 removes the limit.")
	limCmd.Flags().StringVarP(&limView, "view", "v", "",
		"View total and remaining limits for YEAR as this account type ("+strings.Join(ledger.LimitkindNames, " or ")+").")
	limCmd.MarkFlagsMutuallyExclusive("set", "view")
}

// updateLimits sets or removes a single year's limit and persists the result
// when anything changed.
func updateLimits(w io.Writer, fs *repofs.Fs, limits *ledger.Limits, year int, amount ledger.Cents) error {
	var msg string
	updated := true
	if amount != 0 {
		limits.Set(year, amount)
		msg = fmt.Sprintf("%d limit set to %s", year, amount)
	} else if _, ok := limits.Remove(year); ok {
		msg = fmt.Sprintf("%d limit removed.", year)
	} else {
		updated = false
		msg = fmt.Sprintf("%d has no limit.", year)
	}
	if updated {
		if err := fs.WriteLimits(limits); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, msg)
	return nil
}

// limitkindFor resolves the account type to report on, preferring the flag
// over the configured default.
func limitkindFor(arg, configured string) (ledger.Limitkind, error) {
	if arg != "" {
		return ledger.ParseLimitkind(arg)
	}
	if configured == "" {
		return 0, errors.New("no default account type configured")
	}
	k, err := ledger.ParseLimitkind(configured)
	if err != nil {
		return 0, fmt.Errorf("invalid default account type '%s'", configured)
	}
	return k, nil
}

// parseYearArg parses a year argument: a plain year, 'y' or 'Y' for this
// year, or 'yn'/'Yn' for an offset of n years from this year.
func parseYearArg(s string, today ledger.Date) (int, error) {
	if s == "y" || s == "Y" {
		return today.Year(), nil
	}
	var year int
	if s != "" && (s[0] == 'y' || s[0] == 'Y') {
		offset, err := strconv.Atoi(s[1:])
		if err != nil {
			return 0, err
		}
		year = today.Year() + offset
	} else {
		y, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		year = y
	}
	if year < 0 || year > 9999 {
		return 0, errors.New("year is out of range")
	}
	return year, nil
}
