// Package cmd provides the CLI commands for voicedash.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voicedash/internal/config"
	"voicedash/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "voicedash",
	Short: "Voice-agent dashboard calculators",
	Long: `voicedash computes the derived metrics behind the voice-agent
analytics dashboard: operational cost and ROI projections from a pricing
configuration, and call volumes from a scheduled calling window.

Examples:
  voicedash calc pricing.json
  voicedash volume --frequency 15 --start 09:00 --end 18:00 --days 1,2,3,4,5
  voicedash volume --per-month 1000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.voicedash.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("voicedash version 0.1.0")
	},
}
