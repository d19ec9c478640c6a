package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		file   string
		member string
	)

	cmd := &cobra.Command{
		Use:   "plan -f <snapshot.yaml>",
		Short: "Suggest payments that settle the group",
		Long: `Suggest a short list of payments that brings every member's balance to zero.
Use --member to show only the payments a member makes or receives.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := LoadSnapshotFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runPlan(rootOpts, ledger, member, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (- for stdin)")
	cmd.Flags().StringVarP(&member, "member", "m", "", "only show payments involving this member")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPlan(opts *RootOptions, l *Ledger, member string, w io.Writer) error {
	balances, invalid := calculator.Aggregate(l.Expenses, l.Settlements, l.Members)
	warnSkipped(invalid)

	plan, err := calculator.Minimize(balances)
	if err != nil {
		return fmt.Errorf("compute plan: %w", err)
	}
	slog.Debug("Plan computed", "transactions", len(plan), "skipped", len(invalid))

	entries := make([]*planRow, 0, len(plan))
	for _, t := range plan {
		if member != "" && !t.Involves(member) {
			continue
		}
		entries = append(entries, &planRow{
			FromID:      t.From,
			ToID:        t.To,
			Amount:      t.Amount.Format(l.Exp),
			AmountMinor: int64(t.Amount),
		})
	}

	if opts.Format == "json" {
		return writeJSON(w, &planOutput{
			Currency:     l.Currency,
			Transactions: entries,
		})
	}

	if len(entries) == 0 {
		if member != "" {
			fmt.Fprintf(w, "%s is settled up.\n", member)
		} else {
			fmt.Fprintln(w, "Everyone is settled up.")
		}
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s pays %s %s %s\n", e.FromID, e.ToID, e.Amount, l.Currency)
	}
	return nil
}
