package ledger

import "testing"

func mustCategory(s string) Category {
	c, err := ParseCategory(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"", false},
		{"/", false},
		{"//", false},
		{"/asdf", false},
		{"asdf/", false},
		{"as//df", false},
		{"asdf", true},
		{"as/df", true},
		{"a/sd/f", true},
		{"a", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseCategory(tc.in)
			if (err == nil) != tc.wantOK {
				t.Fatalf("ParseCategory(%q) error = %v, want ok %t", tc.in, err, tc.wantOK)
			}
			if err == nil && c.String() != tc.in {
				t.Errorf("String() = %q, want %q", c.String(), tc.in)
			}
		})
	}
}

func TestCategoryLevel(t *testing.T) {
	tests := []struct {
		cat   string
		level int
		want  string
	}{
		{"a", 0, "All"},
		{"a", 1, "a"},
		{"a", 2, "a"},
		{"a/b/c/d", 0, "All"},
		{"a/b/c/d", 1, "a"},
		{"a/b/c/d", 2, "a/b"},
		{"a/b/c/d", 3, "a/b/c"},
		{"a/b/c/d", 4, "a/b/c/d"},
		{"a/b/c/d", 5, "a/b/c/d"},
		{"a/b/c/d", 100, "a/b/c/d"},
	}
	for _, tc := range tests {
		if got := mustCategory(tc.cat).Level(tc.level); got != tc.want {
			t.Errorf("%q.Level(%d) = %q, want %q", tc.cat, tc.level, got, tc.want)
		}
	}
}

func TestCategoryDepth(t *testing.T) {
	tests := []struct {
		cat  string
		want int
	}{
		{"a", 1},
		{"a/b", 2},
		{"a/b/c/d", 4},
	}
	for _, tc := range tests {
		if got := mustCategory(tc.cat).Depth(); got != tc.want {
			t.Errorf("%q.Depth() = %d, want %d", tc.cat, got, tc.want)
		}
	}
}
