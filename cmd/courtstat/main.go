package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/cli"
	"github.com/example/courtstat/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "courtstat",
		Short:   "courtstat - monthly case statistics for FTSC and SPC courts",
		Version: version.String(),
		Long: `courtstat records monthly case statistics for fast track special courts
and special POCSO courts through a validated three-step entry workflow,
and reports district and court level aggregates.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DistrictCmd())
	rootCmd.AddCommand(cli.CourtCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ViewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
