package ledger

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml"
)

// Config holds the per-repository settings stored in the repo's TOML config
// file.
type Config struct {
	// FirstIndexInDate is the index shown for the first record of each date.
	// Typically 0 or 1.
	FirstIndexInDate int `toml:"firstIndexInDate"`

	// LimAccountType names the Limitkind assumed by the lim command when no
	// explicit account type is given. Empty means no default.
	LimAccountType string `toml:"limAccountType"`

	// UnsignedIsNegative controls how amounts without an explicit sign are
	// logged. Recording expenses as negative keeps sums meaningful when both
	// spending and income live in one repo.
	UnsignedIsNegative bool `toml:"unsignedIsNegative"`

	UseColoredOutput  bool `toml:"useColoredOutput"`
	UseUnicodeSymbols bool `toml:"useUnicodeSymbols"`

	// Templates maps a template name to the entries the logt command fans out
	// into individual records.
	Templates map[string][]TemplateEntry `toml:"templates,omitempty"`
}

// TemplateEntry is one record blueprint within a template. The category is
// kept as a plain string and validated when the template is applied.
type TemplateEntry struct {
	Category string `toml:"category"`
	Amount   Cents  `toml:"amount"`
}

func DefaultConfig() Config {
	return Config{
		FirstIndexInDate:  1,
		UseColoredOutput:  true,
		UseUnicodeSymbols: true,
	}
}

// DefaultLimitkind returns the configured default account type for the lim
// command. ok is false when none is configured.
func (c Config) DefaultLimitkind() (Limitkind, bool) {
	if c.LimAccountType == "" {
		return 0, false
	}
	k, err := ParseLimitkind(c.LimAccountType)
	if err != nil {
		return 0, false
	}
	return k, true
}

// String formats the config as TOML, terminated by a newline.
func (c Config) String() string {
	b, err := toml.Marshal(c)
	if err != nil {
		// Marshaling cannot fail for this struct shape.
		panic(err)
	}
	return string(b)
}

// ParseConfig parses TOML on top of the default config, so omitted keys keep
// their default values. Unknown keys are rejected.
func ParseConfig(s string) (Config, error) {
	c := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader([]byte(s))).Strict(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if c.FirstIndexInDate < 0 {
		return Config{}, fmt.Errorf("invalid config: firstIndexInDate is negative")
	}
	if c.LimAccountType != "" {
		if _, err := ParseLimitkind(c.LimAccountType); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
	}
	return c, nil
}
