package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var fixtures bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the local database",
		Long:  "Create the local SQLite database and schema, optionally seeding the Kerala court directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			path, _ := db.GetDBPath()
			fmt.Printf("%s Database ready at %s\n", color.New(color.FgGreen).Sprint("✓"), path)

			if fixtures {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Printf("%s Seeded district and court directory\n", color.New(color.FgGreen).Sprint("✓"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "seed the district and court directory")

	return cmd
}
