// Package repofs reads and writes the files making up a ledger repository: a
// TOML config, a JSONL record list, and a JSON limits object, all living
// directly inside the repository directory.
package repofs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/life-is-plastic/ledger"
)

const (
	ConfigFilename  = ".ledger.toml"
	RecordsFilename = "records.jsonl"
	LimitsFilename  = "limits.json"
)

// Fs is a handle on a repository directory. The directory is a repository iff
// its config file exists.
type Fs struct {
	dir string
}

func New(dir string) *Fs {
	return &Fs{dir: dir}
}

func (f *Fs) Dir() string {
	return f.dir
}

func (f *Fs) IsRepo() bool {
	info, err := os.Stat(f.ConfigPath())
	return err == nil && info.Mode().IsRegular()
}

func (f *Fs) ConfigPath() string  { return filepath.Join(f.dir, ConfigFilename) }
func (f *Fs) RecordsPath() string { return filepath.Join(f.dir, RecordsFilename) }
func (f *Fs) LimitsPath() string  { return filepath.Join(f.dir, LimitsFilename) }

// readFile returns ok=false when the file does not exist, which readers treat
// as an empty default.
func readFile(path string) (string, bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// ReadConfig loads the repo config, or the default config when the file does
// not exist.
func (f *Fs) ReadConfig() (ledger.Config, error) {
	s, ok, err := readFile(f.ConfigPath())
	if err != nil {
		return ledger.Config{}, err
	}
	if !ok {
		return ledger.DefaultConfig(), nil
	}
	c, err := ledger.ParseConfig(s)
	if err != nil {
		return ledger.Config{}, fmt.Errorf("%s: %w", f.ConfigPath(), err)
	}
	return c, nil
}

func (f *Fs) WriteConfig(c ledger.Config) error {
	return os.WriteFile(f.ConfigPath(), []byte(c.String()), 0o644)
}

// ReadRecords loads the record list, or an empty list when the file does not
// exist.
func (f *Fs) ReadRecords() (*ledger.Recordlist, error) {
	s, ok, err := readFile(f.RecordsPath())
	if err != nil {
		return nil, err
	}
	if !ok {
		return ledger.NewRecordlist(nil), nil
	}
	rl, err := ledger.ParseRecordlist(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.RecordsPath(), err)
	}
	return rl, nil
}

func (f *Fs) WriteRecords(rl *ledger.Recordlist) error {
	return os.WriteFile(f.RecordsPath(), []byte(rl.String()), 0o644)
}

// ReadLimits loads the limits, or an empty set when the file does not exist.
func (f *Fs) ReadLimits() (*ledger.Limits, error) {
	s, ok, err := readFile(f.LimitsPath())
	if err != nil {
		return nil, err
	}
	if !ok {
		return ledger.NewLimits(), nil
	}
	l, err := ledger.ParseLimits(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.LimitsPath(), err)
	}
	return l, nil
}

func (f *Fs) WriteLimits(l *ledger.Limits) error {
	return os.WriteFile(f.LimitsPath(), []byte(l.String()), 0o644)
}
