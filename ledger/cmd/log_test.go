package cmd

import (
	"testing"

	"github.com/life-is-plastic/ledger"
)

func TestParseAmountArg(t *testing.T) {
	tests := []struct {
		s                  string
		unsignedIsNegative bool
		want               ledger.Cents
	}{
		{"12.50", false, 1250},
		{"12.50", true, -1250},
		{"+12.50", true, 1250},
		{"-12.50", false, -1250},
		{"(1.23)", false, 123},
		{"(1.23)", true, -123},
		{"12.50*3", false, 3750},
		{"12.50*3", true, -3750},
		{"2+3.5", false, 550},
		{"-2*3", false, -600},
	}
	for _, tc := range tests {
		got, err := parseAmountArg(tc.s, tc.unsignedIsNegative)
		if err != nil {
			t.Errorf("parseAmountArg(%q, %v) error: %v", tc.s, tc.unsignedIsNegative, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseAmountArg(%q, %v) = %d, want %d", tc.s, tc.unsignedIsNegative, got, tc.want)
		}
	}
}

func TestParseAmountArgRejectsGarbage(t *testing.T) {
	for _, s := range []string{"abc", "1.2.3"} {
		if _, err := parseAmountArg(s, false); err == nil {
			t.Errorf("parseAmountArg(%q) succeeded", s)
		}
	}
}

func TestCategoryExists(t *testing.T) {
	rl, err := ledger.ParseRecordlist(`
		{"d":"2015-03-30","c":"food","a":-1250}
		{"d":"2015-03-31","c":"food/fancy","a":-10000}
	`)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		category string
		want     bool
	}{
		{"food", true},
		{"food/fancy", true},
		{"food/fan", false},
		{"income", false},
	} {
		c, err := ledger.ParseCategory(tc.category)
		if err != nil {
			t.Fatal(err)
		}
		if got := categoryExists(rl, c); got != tc.want {
			t.Errorf("categoryExists(rl, %q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}
