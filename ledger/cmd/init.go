package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/life-is-plastic/ledger"
	"github.com/life-is-plastic/ledger/ledger/repofs"
)

var resetConfig bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize repository in the current directory",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalln(err)
		}
		fs := repofs.New(wd)
		alreadyRepo := fs.IsRepo()

		cfg := ledger.DefaultConfig()
		if alreadyRepo && !resetConfig {
			// Reinitializing must not clobber existing settings.
			cfg, err = fs.ReadConfig()
			if err != nil {
				log.Fatalln(err)
			}
		}
		if err := fs.WriteConfig(cfg); err != nil {
			log.Fatalln(err)
		}

		switch {
		case !alreadyRepo:
			printOutput(fmt.Sprintf("Repository initialized in '%s'", fs.Dir()))
		case resetConfig:
			printOutput("Repository configuration reset to defaults.")
		default:
			printOutput(fmt.Sprintf("Repository reinitialized in '%s'", fs.Dir()))
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&resetConfig, "reset-config", false, "Restore an existing repository's config to defaults.")
}
