package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
)

// NewBalancesCommand creates the balances command.
func NewBalancesCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "balances -f <snapshot.yaml>",
		Short: "Show each member's net balance",
		Long: `Show what each member paid, their share of expenses, what they settled
and their resulting net balance. Positive means the group owes the member.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := LoadSnapshotFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runBalances(rootOpts, ledger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (- for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBalances(opts *RootOptions, l *Ledger, w io.Writer) error {
	summaries, invalid := calculator.Summarize(l.Expenses, l.Settlements, l.Members)
	warnSkipped(invalid)
	slog.Debug("Balances computed", "members", len(summaries), "skipped", len(invalid))

	balances := make([]*balanceRow, len(summaries))
	for i, s := range summaries {
		balances[i] = &balanceRow{
			MemberID:   s.MemberID,
			TotalPaid:  s.TotalPaid.Format(l.Exp),
			TotalShare: s.TotalShare.Format(l.Exp),
			SettledOut: s.SettledOut.Format(l.Exp),
			SettledIn:  s.SettledIn.Format(l.Exp),
			Net:        s.NetBalance.Format(l.Exp),
			NetMinor:   int64(s.NetBalance),
		}
	}

	if opts.Format == "json" {
		return writeJSON(w, &balancesOutput{
			Currency: l.Currency,
			Balances: balances,
			Skipped:  len(invalid),
		})
	}

	fmt.Fprintf(w, "%-12s %12s %12s %12s %12s %12s\n", "MEMBER", "PAID", "SHARE", "SETTLED OUT", "SETTLED IN", "NET")
	for _, b := range balances {
		fmt.Fprintf(w, "%-12s %12s %12s %12s %12s %12s\n", b.MemberID, b.TotalPaid, b.TotalShare, b.SettledOut, b.SettledIn, b.Net)
	}
	fmt.Fprintf(w, "\nAmounts in %s.", l.Currency)
	if len(invalid) > 0 {
		fmt.Fprintf(w, " %d record(s) skipped.", len(invalid))
	}
	fmt.Fprintln(w)
	return nil
}
