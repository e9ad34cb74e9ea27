package ledger

import (
	"slices"
	"testing"
)

func mustInterval(s string) Interval {
	i, err := ParseInterval(s, testToday)
	if err != nil {
		panic(err)
	}
	return i
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in    string
		start Date
		end   Date
	}{
		{"2015-03-30:2015-03-30", mustDate(2015, 3, 30), mustDate(2015, 3, 30)},
		{"2015-03-30:2020-03-30", mustDate(2015, 3, 30), mustDate(2020, 3, 30)},
		{"2015-03-30", mustDate(2015, 3, 30), mustDate(2015, 3, 30)},
		{"Y:m-1", mustDate(2015, 12, 31), mustDate(2015, 2, 1)},
		{"y-4:3000-01-01", mustDate(2011, 1, 1), mustDate(3000, 1, 1)},
		{"3000-01-01:y-4", mustDate(3000, 1, 1), mustDate(2011, 1, 1)},
		{":d4", MinDate, mustDate(2015, 4, 3)},
		{":", MinDate, MaxDate},
		{"D-10:", mustDate(2015, 3, 20), MaxDate},
		{"y", mustDate(2015, 1, 1), mustDate(2015, 12, 31)},
		{"Y-1", mustDate(2014, 1, 1), mustDate(2014, 12, 31)},
		{"m", mustDate(2015, 3, 1), mustDate(2015, 3, 31)},
		{"d", testToday, testToday},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseInterval(tc.in, testToday)
			if err != nil {
				t.Fatalf("ParseInterval(%q) error: %v", tc.in, err)
			}
			want := Interval{Start: tc.start, End: tc.end}
			if got != want {
				t.Errorf("ParseInterval(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestParseIntervalFailing(t *testing.T) {
	for _, in := range []string{
		"", ":a", "a", "a:d",
		"d10000000000000000000000000000000000000000000000000000000000000",
		"12345-01-01", "12345-01-01:",
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseInterval(in, testToday); err == nil {
				t.Errorf("ParseInterval(%q) succeeded, want error", in)
			}
		})
	}
}

func TestIntervalEqual(t *testing.T) {
	if !EmptyInterval.Equal(mustInterval("d1:d-1")) {
		t.Error("empty intervals are not equal")
	}
	if mustInterval("d:d").Equal(mustInterval("d1:d1")) {
		t.Error("distinct single-day intervals are equal")
	}
}

func TestIntervalIntersection(t *testing.T) {
	tests := []struct {
		x    Interval
		y    Interval
		want Interval
	}{
		{mustInterval(":"), mustInterval("M:m"), EmptyInterval},
		{mustInterval("m6:M7"), mustInterval("m-4:M-3"), EmptyInterval},
		{mustInterval("m-1:M+10"), mustInterval("m-4:M+7"), mustInterval("m-1:M+7")},
		{mustInterval("d-1:d"), mustInterval("d:d1"), mustInterval("d")},
	}
	for _, tc := range tests {
		if got := tc.x.Intersection(tc.y); !got.Equal(tc.want) {
			t.Errorf("%s.Intersection(%s) = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIntervalIter(t *testing.T) {
	tests := []struct {
		bounds Interval
		part   Datepart
		want   []Interval
	}{
		{mustInterval("d1:d-1"), DatepartDay, nil},
		{mustInterval("2015-03-30"), DatepartYear, []Interval{
			mustInterval("2015-03-30:2015-03-30"),
		}},
		{mustInterval("2015-03-30:2017-06-29"), DatepartYear, []Interval{
			mustInterval("2015-03-30:2015-12-31"),
			mustInterval("2016-01-01:2016-12-31"),
			mustInterval("2017-01-01:2017-06-29"),
		}},
		{mustInterval("2015-03-30"), DatepartMonth, []Interval{
			mustInterval("2015-03-30:2015-03-30"),
		}},
		{mustInterval("2015-03-30:2015-05-29"), DatepartMonth, []Interval{
			mustInterval("2015-03-30:2015-03-31"),
			mustInterval("2015-04-01:2015-04-30"),
			mustInterval("2015-05-01:2015-05-29"),
		}},
		{mustInterval("2015-03-30"), DatepartDay, []Interval{
			mustInterval("2015-03-30:2015-03-30"),
		}},
		{mustInterval("2015-03-30:2015-04-01"), DatepartDay, []Interval{
			mustInterval("2015-03-30:2015-03-30"),
			mustInterval("2015-03-31:2015-03-31"),
			mustInterval("2015-04-01:2015-04-01"),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.bounds.String()+" by "+tc.part.String(), func(t *testing.T) {
			got := slices.Collect(tc.bounds.Iter(tc.part))
			if !slices.Equal(got, tc.want) {
				t.Errorf("Iter() = %v, want %v", got, tc.want)
			}
			// The sequence must be restartable.
			if again := slices.Collect(tc.bounds.Iter(tc.part)); !slices.Equal(again, got) {
				t.Errorf("second iteration = %v, want %v", again, got)
			}
		})
	}
}

func TestIntervalIterEndOfRange(t *testing.T) {
	bounds := Interval{Start: mustDate(9999, 11, 15), End: MaxDate}
	want := []Interval{
		{Start: mustDate(9999, 11, 15), End: mustDate(9999, 11, 30)},
		{Start: mustDate(9999, 12, 1), End: MaxDate},
	}
	got := slices.Collect(bounds.Iter(DatepartMonth))
	if !slices.Equal(got, want) {
		t.Errorf("Iter() = %v, want %v", got, want)
	}
}
