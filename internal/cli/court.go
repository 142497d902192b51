package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/wire"
)

// CourtCmd returns the court command
func CourtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court",
		Short: "Browse the court directory",
	}

	cmd.AddCommand(courtListCmd())
	cmd.AddCommand(courtInfoCmd())

	return cmd
}

func courtListCmd() *cobra.Command {
	var courtType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courts of one type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if courtType != "FTSC" && courtType != "SPC" {
				return fmt.Errorf("invalid court type %q (want FTSC or SPC)", courtType)
			}
			return wire.DirectoryAdapter().Courts(cmd.Context(), courtType)
		},
	}

	cmd.Flags().StringVar(&courtType, "type", "FTSC", "court type (FTSC or SPC)")

	return cmd
}

func courtInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [name]",
		Short: "Show a single court",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DirectoryAdapter().Info(cmd.Context(), args[0])
		},
	}
}
