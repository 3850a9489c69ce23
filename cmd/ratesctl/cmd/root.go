// Package cmd provides the CLI commands for ratesctl.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ratesservice/internal/config"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ratesctl",
	Short: "Query unit rates from the command line",
	Long: `ratesctl runs the rate query pipeline locally, without the HTTP server.

It uses the same configuration as the service (config.yaml, .env and
RATESVC_* environment variables).

Examples:
  ratesctl quote --unit "Deluxe Suite" --arrival 15/12/2024 --departure 20/12/2024 --ages 25,30,8
  ratesctl units`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger() (*zap.SugaredLogger, error) {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}
	return zap.NewNop().Sugar(), nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ratesctl version 1.0.0")
	},
}
