package ledger

import (
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := ParseConfig("")
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if c.FirstIndexInDate != want.FirstIndexInDate ||
		c.LimAccountType != want.LimAccountType ||
		c.UnsignedIsNegative != want.UnsignedIsNegative ||
		c.UseColoredOutput != want.UseColoredOutput ||
		c.UseUnicodeSymbols != want.UseUnicodeSymbols ||
		len(c.Templates) != 0 {
		t.Errorf("ParseConfig(\"\") = %+v", c)
	}
	if _, ok := c.DefaultLimitkind(); ok {
		t.Error("DefaultLimitkind() reports a default for an empty limAccountType")
	}
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig(`
firstIndexInDate = 0
limAccountType = "tfsa"
unsignedIsNegative = true
useColoredOutput = false

[[templates.paycheck]]
category = "income/salary"
amount = 250000

[[templates.paycheck]]
category = "savings/rrsp"
amount = -50000
`)
	if err != nil {
		t.Fatal(err)
	}
	if c.FirstIndexInDate != 0 {
		t.Errorf("FirstIndexInDate = %d", c.FirstIndexInDate)
	}
	if k, ok := c.DefaultLimitkind(); !ok || k != LimitkindTfsa {
		t.Errorf("DefaultLimitkind() = %s, %t", k, ok)
	}
	if !c.UnsignedIsNegative || c.UseColoredOutput || !c.UseUnicodeSymbols {
		t.Errorf("flags = %+v", c)
	}
	entries := c.Templates["paycheck"]
	if len(entries) != 2 {
		t.Fatalf("templates = %+v", c.Templates)
	}
	if entries[0] != (TemplateEntry{Category: "income/salary", Amount: 250000}) {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1] != (TemplateEntry{Category: "savings/rrsp", Amount: -50000}) {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParseConfigFailing(t *testing.T) {
	for _, s := range []string{
		"firstIndexInDate = -1",
		`limAccountType = "401k"`,
		"unknownKey = true",
		"useColoredOutput = 3",
	} {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseConfig(s); err == nil {
				t.Errorf("ParseConfig(%q) succeeded, want error", s)
			}
		})
	}
}

func TestConfigStringRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.LimAccountType = "rrsp"
	c.Templates = map[string][]TemplateEntry{
		"rent": {{Category: "housing/rent", Amount: -180000}},
	}
	s := c.String()
	if !strings.HasSuffix(s, "\n") {
		t.Errorf("String() does not end with a newline: %q", s)
	}
	got, err := ParseConfig(s)
	if err != nil {
		t.Fatalf("ParseConfig(%q) error: %v", s, err)
	}
	if got.LimAccountType != "rrsp" || len(got.Templates["rent"]) != 1 {
		t.Errorf("round trip = %+v", got)
	}
}
