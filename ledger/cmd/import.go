package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jbrukh/bayesian"
	date "github.com/joyt/godate"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/qif"
)

var importDateFormat string
var importDelimiter string
var importNegate bool
var importScale float64

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Convert a bank export into ledger records",
	Long: `Convert a bank export into ledger records.

Reads a QIF or CSV file and prints one record per line in the repository's
JSONL format. Nothing is written to the repository; review the output and
append what you want to keep.

Categories are predicted with a classifier trained on the notes of existing
records. Rows whose prediction is uncertain fall back to 'uncategorized'.`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		_, _, rl := loadEnv()

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()

		imp := newImporter(rl)
		var recs []ledger.Record
		if strings.HasSuffix(strings.ToLower(args[0]), ".qif") {
			recs, err = imp.fromQIF(f)
		} else {
			recs, err = imp.fromCSV(f)
		}
		if err != nil {
			log.Fatalln(err)
		}
		for _, r := range recs {
			printOutput(r.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDateFormat, "date-format", "01/02/2006", "Date format for CSV date columns.")
	importCmd.Flags().StringVar(&importDelimiter, "delimiter", ",", "CSV field delimiter.")
	importCmd.Flags().BoolVar(&importNegate, "neg", false, "Negate every imported amount.")
	importCmd.Flags().Float64Var(&importScale, "scale", 1.0, "Scale factor to multiply against every imported amount.")
}

type importer struct {
	classifier *bayesian.Classifier
	fallback   ledger.Category
}

func newImporter(rl *ledger.Recordlist) *importer {
	fallback, err := ledger.ParseCategory("uncategorized")
	if err != nil {
		panic(err)
	}
	imp := &importer{fallback: fallback}

	seen := make(map[string]bool)
	var classes []bayesian.Class
	for r := range rl.All() {
		name := r.Category().String()
		if !seen[name] {
			seen[name] = true
			classes = append(classes, bayesian.Class(name))
		}
	}
	// The classifier needs at least two classes to discriminate between.
	if len(classes) < 2 {
		return imp
	}
	imp.classifier = bayesian.NewClassifier(classes...)
	for r := range rl.All() {
		if words := strings.Fields(strings.ToLower(r.Note())); len(words) > 0 {
			imp.classifier.Learn(words, bayesian.Class(r.Category().String()))
		}
	}
	return imp
}

func (imp *importer) predictCategory(note string) ledger.Category {
	if imp.classifier == nil {
		return imp.fallback
	}
	words := strings.Fields(strings.ToLower(note))
	if len(words) == 0 {
		return imp.fallback
	}

	high1, high2 := math.Inf(-1), math.Inf(-1)
	matchIdx := 0
	scores, _, _ := imp.classifier.LogScores(words)
	for i, score := range scores {
		if score > high1 {
			high2 = high1
			high1 = score
			matchIdx = i
		} else if score > high2 {
			high2 = score
		}
	}
	// Only trust a prediction well separated from the runner-up.
	if high1-high2 > 10 {
		if c, err := ledger.ParseCategory(string(imp.classifier.Classes[matchIdx])); err == nil {
			return c
		}
	}
	return imp.fallback
}

func (imp *importer) fromQIF(r io.Reader) ([]ledger.Record, error) {
	txs, err := qif.NewDecoder(r).All()
	if err != nil {
		return nil, err
	}
	var recs []ledger.Record
	for _, tx := range txs {
		dt, err := parseImportDate(tx.Date, "01/02/2006")
		if err != nil {
			return nil, err
		}
		amount, err := parseImportAmount(tx.Amount)
		if err != nil {
			return nil, err
		}
		note := tx.Payee
		if note == "" {
			note = strings.ReplaceAll(tx.Memo, "\n", " ")
		}
		recs = append(recs, ledger.NewRecord(dt, imp.predictCategory(note), amount, note))
	}
	return recs, nil
}

func (imp *importer) fromCSV(r io.Reader) ([]ledger.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma, _ = utf8.DecodeRuneInString(importDelimiter)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv file")
	}

	// Locate columns by header name.
	dateCol, noteCol, amountCol := -1, -1, -1
	for i, name := range rows[0] {
		name = strings.ToLower(name)
		switch {
		case strings.Contains(name, "date"):
			dateCol = i
		case strings.Contains(name, "description"),
			strings.Contains(name, "payee"),
			strings.Contains(name, "note"):
			noteCol = i
		case strings.Contains(name, "amount"),
			strings.Contains(name, "expense"):
			amountCol = i
		}
	}
	if dateCol < 0 || noteCol < 0 || amountCol < 0 {
		return nil, errors.New("unable to find required columns in csv header")
	}

	var recs []ledger.Record
	for _, row := range rows[1:] {
		dt, err := parseImportDate(row[dateCol], importDateFormat)
		if err != nil {
			return nil, err
		}
		amount, err := parseImportAmount(row[amountCol])
		if err != nil {
			return nil, err
		}
		note := row[noteCol]
		recs = append(recs, ledger.NewRecord(dt, imp.predictCategory(note), amount, note))
	}
	return recs, nil
}

// parseImportDate tries the explicit layout first, then a permissive parse
// for exports that do not match it.
func parseImportDate(s, layout string) (ledger.Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		t, err = date.Parse(s)
		if err != nil {
			return ledger.Date{}, fmt.Errorf("unable to parse date (%s): %w", s, err)
		}
	}
	return ledger.DateFromTime(t), nil
}

func parseImportAmount(s string) (ledger.Cents, error) {
	dec, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, err
	}
	if importNegate {
		dec = dec.Neg()
	}
	dec = dec.Mul(decimal.NewFromFloat(importScale))
	return ledger.Cents(dec.Shift(2).Round(0).IntPart()), nil
}
