package cmd

import (
	"strings"
	"testing"

	"github.com/life-is-plastic/ledger"
)

func TestParseImportAmount(t *testing.T) {
	tests := []struct {
		s    string
		want ledger.Cents
	}{
		{"15.00", 1500},
		{"-15.37", -1537},
		{"1,234.56", 123456},
		{"80", 8000},
	}
	for _, tc := range tests {
		got, err := parseImportAmount(tc.s)
		if err != nil {
			t.Errorf("parseImportAmount(%q) error: %v", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseImportAmount(%q) = %d, want %d", tc.s, got, tc.want)
		}
	}
	if _, err := parseImportAmount("not a number"); err == nil {
		t.Error("parseImportAmount accepted garbage")
	}
}

func TestImporterFromCSV(t *testing.T) {
	imp := newImporter(ledger.NewRecordlist(nil))
	recs, err := imp.fromCSV(strings.NewReader(
		"Date,Description,Amount\n" +
			"03/30/2015,Grocery run,-12.50\n" +
			"03/31/2015,Paycheque,1000.00\n",
	))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`{"d":"2015-03-30","c":"uncategorized","a":-1250,"n":"Grocery run"}`,
		`{"d":"2015-03-31","c":"uncategorized","a":100000,"n":"Paycheque"}`,
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i].String() != want[i] {
			t.Errorf("record %d = %s, want %s", i, recs[i], want[i])
		}
	}
}

func TestImporterFromCSVRejectsUnknownHeader(t *testing.T) {
	imp := newImporter(ledger.NewRecordlist(nil))
	if _, err := imp.fromCSV(strings.NewReader("When,What,HowMuch\n01/02/2015,x,1\n")); err == nil {
		t.Error("fromCSV accepted a header without the required columns")
	}
}

func TestImporterFromQIF(t *testing.T) {
	imp := newImporter(ledger.NewRecordlist(nil))
	recs, err := imp.fromQIF(strings.NewReader(
		"!Type:Bank\n" +
			"D08/14/2024\n" +
			"T-15.00\n" +
			"P9171-5573 Quebec Inc\n" +
			"MVOIPMS15\n" +
			"^\n",
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	got := recs[0].String()
	want := `{"d":"2024-08-14","c":"uncategorized","a":-1500,"n":"9171-5573 Quebec Inc"}`
	if got != want {
		t.Errorf("record = %s, want %s", got, want)
	}
}
