// Package cmd holds the ledger CLI commands.
package cmd

import (
	"log"
	"os"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/repofs"
	"github.com/life-is-plastic/ledger/ledger/report"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Cash flow tracker",
}

func Execute() {
	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openRepo locates the repository in the working directory. Every command
// except init requires one.
func openRepo() *repofs.Fs {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalln(err)
	}
	fs := repofs.New(wd)
	if !fs.IsRepo() {
		log.Fatalln("not a repository")
	}
	return fs
}

func loadEnv() (*repofs.Fs, ledger.Config, *ledger.Recordlist) {
	fs := openRepo()
	cfg, err := fs.ReadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	rl, err := fs.ReadRecords()
	if err != nil {
		log.Fatalln(err)
	}
	return fs, cfg, rl
}

func today() ledger.Date {
	return ledger.DateFromTime(time.Now())
}

// charsetFromConfig builds the glyph palette the config asks for. Color is
// only honored when stdout is a terminal.
func charsetFromConfig(cfg ledger.Config) report.Charset {
	cs := report.DefaultCharset()
	if cfg.UseUnicodeSymbols {
		cs = cs.WithUnicode()
	}
	if cfg.UseColoredOutput && isatty.IsTerminal(os.Stdout.Fd()) {
		cs = cs.WithColor()
	}
	return cs
}

// printOutput writes s to stdout, ensuring a trailing newline.
func printOutput(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	os.Stdout.WriteString(s)
}

// printViewTree renders a view tree, or a placeholder when there is nothing
// to show.
func printViewTree(cfg report.ViewConfig) {
	if cfg.Rl.IsEmpty() {
		printOutput("No transactions.")
		return
	}
	os.Stdout.WriteString(cfg.Tree().String())
}
