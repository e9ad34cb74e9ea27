package cmd

import (
	"strings"
	"testing"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/repofs"
)

func TestParseYearArg(t *testing.T) {
	base, err := ledger.NewDate(2015, 6, 15)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		s    string
		want int
	}{
		{"0", 0},
		{"123", 123},
		{"9999", 9999},
		{"y", 2015},
		{"Y", 2015},
		{"Y1", 2016},
		{"y+10", 2025},
		{"Y-10", 2005},
	}
	for _, tc := range tests {
		got, err := parseYearArg(tc.s, base)
		if err != nil {
			t.Errorf("parseYearArg(%q) error: %v", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseYearArg(%q) = %d, want %d", tc.s, got, tc.want)
		}
	}

	for _, s := range []string{"-1", "10000", "y-9999", "Y+9999", "yy", "a", ""} {
		if _, err := parseYearArg(s, base); err == nil {
			t.Errorf("parseYearArg(%q) succeeded", s)
		}
	}
}

func TestLimitkindFor(t *testing.T) {
	tests := []struct {
		arg        string
		configured string
		want       ledger.Limitkind
		wantErr    bool
	}{
		{"rrsp", "", ledger.LimitkindRrsp, false},
		{"tfsa", "", ledger.LimitkindTfsa, false},
		{"tfsa", "asdf", ledger.LimitkindTfsa, false},
		{"", "rrsp", ledger.LimitkindRrsp, false},
		{"", "tfsa", ledger.LimitkindTfsa, false},
		{"", "", 0, true},
		{"", "asdf", 0, true},
		{"asdf", "", 0, true},
	}
	for _, tc := range tests {
		got, err := limitkindFor(tc.arg, tc.configured)
		if (err != nil) != tc.wantErr {
			t.Errorf("limitkindFor(%q, %q) error = %v, wantErr %v", tc.arg, tc.configured, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("limitkindFor(%q, %q) = %v, want %v", tc.arg, tc.configured, got, tc.want)
		}
	}
}

func TestUpdateLimits(t *testing.T) {
	tests := []struct {
		name       string
		initial    map[int]ledger.Cents
		year       int
		amount     ledger.Cents
		wantYears  []int
		wantOutput string
	}{
		{
			"no limit to remove",
			nil,
			2015, 0,
			nil,
			"2015 has no limit.\n",
		},
		{
			"remove existing limit",
			map[int]ledger.Cents{2015: 1},
			2015, 0,
			nil,
			"2015 limit removed.\n",
		},
		{
			"set new limit",
			map[int]ledger.Cents{2015: 1},
			2016, -123,
			[]int{2015, 2016},
			"2016 limit set to (1.23)\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := repofs.New(t.TempDir())
			limits := ledger.NewLimits()
			for y, c := range tc.initial {
				limits.Set(y, c)
			}
			var out strings.Builder
			if err := updateLimits(&out, fs, limits, tc.year, tc.amount); err != nil {
				t.Fatal(err)
			}
			if out.String() != tc.wantOutput {
				t.Errorf("output = %q, want %q", out.String(), tc.wantOutput)
			}
			stored, err := fs.ReadLimits()
			if err != nil {
				t.Fatal(err)
			}
			got := stored.Years()
			if len(got) != len(tc.wantYears) {
				t.Fatalf("stored years = %v, want %v", got, tc.wantYears)
			}
			for i := range got {
				if got[i] != tc.wantYears[i] {
					t.Fatalf("stored years = %v, want %v", got, tc.wantYears)
				}
			}
		})
	}
}
