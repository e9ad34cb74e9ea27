package ledger

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// CategorySep separates the levels of a category path.
	CategorySep = "/"

	// CategoryLevel0 is the implicit root shared by every category.
	CategoryLevel0 = "All"
)

var (
	ErrEmptyCategory         = errors.New("category is empty")
	ErrTerminalSeparator     = errors.New("category starts or ends with " + CategorySep)
	ErrConsecutiveSeparators = errors.New("category contains consecutive occurrences of " + CategorySep)
)

// Category is a hierarchical label such as "food/restaurants/sushi". Construct
// through ParseCategory; the zero value is not a valid category.
type Category struct {
	s string
}

// ParseCategory validates s as a category path. The path must be nonempty,
// must not start or end with the separator, and must not contain empty levels.
func ParseCategory(s string) (Category, error) {
	switch {
	case s == "":
		return Category{}, ErrEmptyCategory
	case strings.HasPrefix(s, CategorySep) || strings.HasSuffix(s, CategorySep):
		return Category{}, fmt.Errorf("%w: %q", ErrTerminalSeparator, s)
	case strings.Contains(s, CategorySep+CategorySep):
		return Category{}, fmt.Errorf("%w: %q", ErrConsecutiveSeparators, s)
	}
	return Category{s}, nil
}

func (c Category) String() string {
	return c.s
}

// Level returns the category truncated to the given number of levels. Level 0
// is CategoryLevel0; a level beyond the path's depth returns the whole path.
func (c Category) Level(level int) string {
	if level <= 0 {
		return CategoryLevel0
	}
	rest := c.s
	for i := 0; ; i++ {
		j := strings.Index(rest, CategorySep)
		if j < 0 {
			return c.s
		}
		if i == level-1 {
			return c.s[:len(c.s)-len(rest)+j]
		}
		rest = rest[j+len(CategorySep):]
	}
}

// Depth returns the number of levels in the path.
func (c Category) Depth() int {
	return strings.Count(c.s, CategorySep) + 1
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.s), nil
}

func (c *Category) UnmarshalText(data []byte) error {
	cat, err := ParseCategory(string(data))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}
