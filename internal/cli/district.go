// Package cli defines the cobra command tree. Commands parse flags and
// delegate to adapters obtained from the wire package.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/wire"
)

// DistrictCmd returns the district command
func DistrictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "district",
		Short: "Browse the district directory",
	}

	cmd.AddCommand(districtListCmd())

	return cmd
}

func districtListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List districts in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DirectoryAdapter().Districts(cmd.Context())
		},
	}
}
