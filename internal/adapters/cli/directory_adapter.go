package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/courtstat/internal/ports/primary"
)

// DirectoryAdapter renders the court directory.
type DirectoryAdapter struct {
	service primary.DirectoryService
	out     io.Writer
}

// NewDirectoryAdapter creates a new DirectoryAdapter with the given service.
func NewDirectoryAdapter(service primary.DirectoryService, out io.Writer) *DirectoryAdapter {
	return &DirectoryAdapter{
		service: service,
		out:     out,
	}
}

// Districts lists all districts in display order.
func (a *DirectoryAdapter) Districts(ctx context.Context) error {
	districts, err := a.service.ListDistricts(ctx)
	if err != nil {
		return err
	}

	if len(districts) == 0 {
		fmt.Fprintln(a.out, "No districts found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-4s %s\n", "#", "DISTRICT")
	fmt.Fprintln(a.out, "──────────────────────────────")
	for _, d := range districts {
		fmt.Fprintf(a.out, "%-4d %s\n", d.DisplayOrder, d.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Courts lists courts of one type.
func (a *DirectoryAdapter) Courts(ctx context.Context, courtType string) error {
	courts, err := a.service.ListCourts(ctx, courtType)
	if err != nil {
		return err
	}

	if len(courts) == 0 {
		fmt.Fprintf(a.out, "No %s courts found\n", courtType)
		return nil
	}

	fmt.Fprintf(a.out, "\n%-30s %-6s %s\n", "COURT", "TYPE", "DISTRICT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, c := range courts {
		fmt.Fprintf(a.out, "%-30s %-6s %s\n", c.Name, c.Type, c.DistrictName)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Info displays a single court.
func (a *DirectoryAdapter) Info(ctx context.Context, name string) error {
	court, err := a.service.GetCourtInfo(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCourt:    %s\n", court.Name)
	fmt.Fprintf(a.out, "Type:     %s\n", court.Type)
	fmt.Fprintf(a.out, "District: %s\n", court.DistrictName)
	fmt.Fprintln(a.out)

	return nil
}
