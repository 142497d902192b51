package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/wire"
)

// ViewCmd returns the view command
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Query aggregate views over committed reports",
	}

	cmd.AddCommand(viewFTSCCmd())
	cmd.AddCommand(viewSPCCmd())

	return cmd
}

func viewFTSCCmd() *cobra.Command {
	var filters primary.FTSCSummaryFilters

	cmd := &cobra.Command{
		Use:   "ftsc",
		Short: "District-level FTSC summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(color.New(color.Bold).Sprint("FTSC District Summary"))
			return wire.ViewAdapter().FTSCSummary(cmd.Context(), filters)
		},
	}

	cmd.Flags().StringVar(&filters.DistrictName, "district", "", "filter by district name")
	cmd.Flags().IntVar(&filters.Month, "month", 0, "filter by month (1-12)")
	cmd.Flags().IntVar(&filters.Year, "year", 0, "filter by year")

	return cmd
}

func viewSPCCmd() *cobra.Command {
	var filters primary.SPCDataFilters

	cmd := &cobra.Command{
		Use:   "spc",
		Short: "Per-court SPC data",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(color.New(color.Bold).Sprint("SPC Court Data"))
			return wire.ViewAdapter().SPCData(cmd.Context(), filters)
		},
	}

	cmd.Flags().StringVar(&filters.CourtName, "court", "", "filter by court name")
	cmd.Flags().StringVar(&filters.DistrictName, "district", "", "filter by district name")
	cmd.Flags().IntVar(&filters.Month, "month", 0, "filter by month (1-12)")
	cmd.Flags().IntVar(&filters.Year, "year", 0, "filter by year")

	return cmd
}
