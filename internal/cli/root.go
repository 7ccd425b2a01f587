package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ripplequill/xrplcodec/internal/config"
)

var (
	// Global flags
	configFile string
	verbose    bool
	quiet      bool

	// cfg holds the resolved CLI defaults, populated by initConfig.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrplcodec",
	Short: "xrplcodec - XRP Ledger canonical binary codec",
	Long: `xrplcodec translates XRP Ledger transactions and ledger objects between
their JSON representation and rippled's canonical binary wire format: the
deterministic byte layout used for hashing, signing and peer transport.
This is NOT a node and does not connect to a network; it is a standalone
codec following the same field-ordering and type rules rippled itself
applies to every transaction it serializes.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if quiet {
		log.SetOutput(io.Discard)
	}
	if verbose {
		log.Printf("loaded config: output-format=%s uppercase=%v", cfg.OutputFormat, cfg.Uppercase)
	}
}

// logVerbose writes a diagnostic line to stderr via the standard log
// package when --verbose is set, and is a no-op otherwise.
func logVerbose(format string, args ...any) {
	if !verbose {
		return
	}
	log.Printf(format, args...)
}