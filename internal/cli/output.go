package cli

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/mmynk/settleup/internal/calculator"
)

// CLIResponse is the JSON envelope for --format json.
type CLIResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// balanceRow is one member's line in balances output.
type balanceRow struct {
	MemberID   string `json:"member_id"`
	TotalPaid  string `json:"total_paid"`
	TotalShare string `json:"total_share"`
	SettledOut string `json:"settled_out"`
	SettledIn  string `json:"settled_in"`
	Net        string `json:"net"`
	NetMinor   int64  `json:"net_minor"`
}

type balancesOutput struct {
	Currency string        `json:"currency"`
	Balances []*balanceRow `json:"balances"`
	Skipped  int           `json:"skipped"`
}

// planRow is one suggested payment. Pending is always false offline and kept so
// the shape matches the server's plan.
type planRow struct {
	FromID      string `json:"from_id"`
	ToID        string `json:"to_id"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
	Pending     bool   `json:"pending"`
}

type planOutput struct {
	Currency     string     `json:"currency"`
	Transactions []*planRow `json:"transactions"`
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(CLIResponse{Status: "ok", Data: data})
}

// warnSkipped reports records the aggregator left out. They go to the log so
// stdout stays parseable.
func warnSkipped(invalid []calculator.InvalidRecord) {
	for _, rec := range invalid {
		slog.Warn("Skipping invalid record", "kind", rec.Kind, "id", rec.ID, "error", rec.Err)
	}
}
