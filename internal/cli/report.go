package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Enter and manage monthly reports",
		Long: `Enter monthly case statistics through the three-step workflow.

Steps must run in order for each (court, month, year):
  report step1   basic metrics (balance, new, disposed)
  report step2   age breakdown of pending and disposed cases
  report step3   additional metrics; commits the report`,
	}

	cmd.AddCommand(reportStep1Cmd())
	cmd.AddCommand(reportStep2Cmd())
	cmd.AddCommand(reportStep3Cmd())
	cmd.AddCommand(reportExistsCmd())
	cmd.AddCommand(reportDeleteCmd())
	cmd.AddCommand(reportStatusCmd())

	return cmd
}

// periodFlags registers the identifying flags shared by all report commands.
func periodFlags(cmd *cobra.Command, court *string, month, year *int) {
	cmd.Flags().StringVar(court, "court", "", "court name (exact)")
	cmd.Flags().IntVar(month, "month", 0, "report month (1-12)")
	cmd.Flags().IntVar(year, "year", 0, "report year")
	cmd.MarkFlagRequired("court")
	cmd.MarkFlagRequired("month")
	cmd.MarkFlagRequired("year")
}

func reportStep1Cmd() *cobra.Command {
	var req primary.BasicMetricsRequest

	cmd := &cobra.Command{
		Use:   "step1",
		Short: "Step 1: submit basic metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EntryAdapter().SubmitBasic(cmd.Context(), req)
		},
	}

	periodFlags(cmd, &req.CourtName, &req.Month, &req.Year)
	cmd.Flags().Float64Var(&req.BalanceA, "balance-a", 0, "opening balance, category A")
	cmd.Flags().Float64Var(&req.BalanceB, "balance-b", 0, "opening balance, category B")
	cmd.Flags().Float64Var(&req.NewA, "new-a", 0, "newly instituted cases, category A")
	cmd.Flags().Float64Var(&req.NewB, "new-b", 0, "newly instituted cases, category B")
	cmd.Flags().Float64Var(&req.DisposedA, "disposed-a", 0, "disposed cases, category A")
	cmd.Flags().Float64Var(&req.DisposedB, "disposed-b", 0, "disposed cases, category B")

	return cmd
}

func reportStep2Cmd() *cobra.Command {
	var req primary.AgeBreakdownRequest

	cmd := &cobra.Command{
		Use:   "step2",
		Short: "Step 2: submit the age breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EntryAdapter().SubmitAges(cmd.Context(), req)
		},
	}

	periodFlags(cmd, &req.CourtName, &req.Month, &req.Year)
	cmd.Flags().Float64Var(&req.PendingLess2MA, "pending-less-2m-a", 0, "pending under 2 months, category A")
	cmd.Flags().Float64Var(&req.PendingLess2MB, "pending-less-2m-b", 0, "pending under 2 months, category B")
	cmd.Flags().Float64Var(&req.Pending2To12MA, "pending-2-12m-a", 0, "pending 2-12 months, category A")
	cmd.Flags().Float64Var(&req.Pending2To12MB, "pending-2-12m-b", 0, "pending 2-12 months, category B")
	cmd.Flags().Float64Var(&req.Pending1To5YA, "pending-1-5y-a", 0, "pending 1-5 years, category A")
	cmd.Flags().Float64Var(&req.Pending1To5YB, "pending-1-5y-b", 0, "pending 1-5 years, category B")
	cmd.Flags().Float64Var(&req.PendingBeyond5YA, "pending-beyond-5y-a", 0, "pending beyond 5 years, category A")
	cmd.Flags().Float64Var(&req.PendingBeyond5YB, "pending-beyond-5y-b", 0, "pending beyond 5 years, category B")
	cmd.Flags().Float64Var(&req.DisposalWithin2MA, "disposal-within-2m-a", 0, "disposed within 2 months, category A")
	cmd.Flags().Float64Var(&req.DisposalWithin2MB, "disposal-within-2m-b", 0, "disposed within 2 months, category B")
	cmd.Flags().Float64Var(&req.Disposal2To12MA, "disposal-2-12m-a", 0, "disposed in 2-12 months, category A")
	cmd.Flags().Float64Var(&req.Disposal2To12MB, "disposal-2-12m-b", 0, "disposed in 2-12 months, category B")
	cmd.Flags().Float64Var(&req.DisposalBeyond12MA, "disposal-beyond-12m-a", 0, "disposed beyond 12 months, category A")
	cmd.Flags().Float64Var(&req.DisposalBeyond12MB, "disposal-beyond-12m-b", 0, "disposed beyond 12 months, category B")

	return cmd
}

func reportStep3Cmd() *cobra.Command {
	var req primary.AdditionalMetricsRequest

	cmd := &cobra.Command{
		Use:   "step3",
		Short: "Step 3: submit additional metrics and commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EntryAdapter().SubmitExtra(cmd.Context(), req)
		},
	}

	periodFlags(cmd, &req.CourtName, &req.Month, &req.Year)
	cmd.Flags().Float64Var(&req.ContestedA, "contested-a", 0, "contested cases, category A")
	cmd.Flags().Float64Var(&req.ContestedB, "contested-b", 0, "contested cases, category B")
	cmd.Flags().Float64Var(&req.Disposal5YA, "disposal-5y-a", 0, "cases disposed within 5 years, category A")
	cmd.Flags().Float64Var(&req.Disposal5YB, "disposal-5y-b", 0, "cases disposed within 5 years, category B")
	cmd.Flags().Float64Var(&req.PendingOver5YA, "pending-over-5y-a", 0, "cases pending over 5 years, category A")
	cmd.Flags().Float64Var(&req.PendingOver5YB, "pending-over-5y-b", 0, "cases pending over 5 years, category B")
	cmd.Flags().Float64Var(&req.ConvictionsA, "convictions-a", 0, "convictions, category A")
	cmd.Flags().Float64Var(&req.ConvictionsB, "convictions-b", 0, "convictions, category B")

	return cmd
}

func reportExistsCmd() *cobra.Command {
	var court string
	var month, year int

	cmd := &cobra.Command{
		Use:   "exists",
		Short: "Check whether a committed report exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EntryAdapter().Exists(cmd.Context(), court, month, year)
		},
	}

	periodFlags(cmd, &court, &month, &year)

	return cmd
}

func reportDeleteCmd() *cobra.Command {
	var court string
	var month, year int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a committed report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EntryAdapter().Delete(cmd.Context(), court, month, year)
		},
	}

	periodFlags(cmd, &court, &month, &year)

	return cmd
}

func reportStatusCmd() *cobra.Command {
	var prune time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List in-flight partial entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prune > 0 {
				return wire.EntryAdapter().Prune(cmd.Context(), prune)
			}
			return wire.EntryAdapter().Pending(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&prune, "prune", 0, "discard partial entries older than this (e.g. 24h)")

	return cmd
}
