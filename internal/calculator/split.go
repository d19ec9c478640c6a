package calculator

import (
	"sort"

	"github.com/mmynk/settleup/pkg/money"
)

// Share is one participant's part of an expense.
type Share struct {
	Member string
	Amount money.Amount
}

// SplitShares divides amount equally among the distinct participants in minor units.
//
// Each participant owes floor(amount/n). The leftover amount%n units are handed
// out one at a time, starting with the payer and continuing through the
// participants that follow in ascending ID order, wrapping around. When the payer
// is not a participant the first unit goes to the smallest ID. Shares are
// returned sorted by member ID and always sum to amount.
//
// Returns nil if there are no participants.
func SplitShares(amount money.Amount, payer string, participants []string) []Share {
	members := distinctSorted(participants)
	if len(members) == 0 {
		return nil
	}

	n := money.Amount(len(members))
	base := amount / n
	remainder := int(amount % n)

	start := 0
	shares := make([]Share, len(members))
	for i, m := range members {
		shares[i] = Share{Member: m, Amount: base}
		if m == payer {
			start = i
		}
	}
	for k := 0; k < remainder; k++ {
		shares[(start+k)%len(shares)].Amount++
	}

	return shares
}

// distinctSorted returns the unique non-empty IDs in ascending order.
func distinctSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
