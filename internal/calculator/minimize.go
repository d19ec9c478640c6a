package calculator

import (
	"sort"

	"github.com/mmynk/settleup/pkg/money"
)

// Transaction is one suggested payment in a settlement plan.
type Transaction struct {
	From   string // Member who pays
	To     string // Member who is paid
	Amount money.Amount
}

// Involves reports whether member is the payer or payee of t.
func (t Transaction) Involves(member string) bool {
	return t.From == member || t.To == member
}

// position is a member's outstanding magnitude during matching.
type position struct {
	member    string
	remaining money.Amount
}

// Minimize matches debtors to creditors greedily, largest against largest, and
// returns a short list of payments that brings every balance to exactly zero.
//
// Only a zero balance counts as settled, so replaying the plan leaves every
// member at exactly zero. Debtors and creditors are sorted by magnitude
// descending with ties broken by member ID, so a given input always yields the
// same plan. Each step pays min(debtor, creditor) and advances whichever side
// reaches zero.
//
// The result is a heuristic: finding the true minimum number of payments is
// NP-hard in general. Largest-versus-largest matching is optimal on small and
// symmetric inputs and reasonable elsewhere.
//
// Balances that do not sum to zero are rejected with ErrUnbalanced before any
// matching happens.
func Minimize(b Balances) ([]Transaction, error) {
	if err := b.CheckConservation(); err != nil {
		return nil, err
	}

	var debtors, creditors []*position
	for member, bal := range b {
		switch {
		case bal < 0:
			debtors = append(debtors, &position{member: member, remaining: -bal})
		case bal > 0:
			creditors = append(creditors, &position{member: member, remaining: bal})
		}
	}
	sortPositions(debtors)
	sortPositions(creditors)

	transactions := []Transaction{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := debtors[i], creditors[j]

		amount := min(d.remaining, c.remaining)
		transactions = append(transactions, Transaction{From: d.member, To: c.member, Amount: amount})

		d.remaining -= amount
		c.remaining -= amount

		if d.remaining == 0 {
			i++
		}
		if c.remaining == 0 {
			j++
		}
	}

	return transactions, nil
}

func sortPositions(ps []*position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].remaining != ps[j].remaining {
			return ps[i].remaining > ps[j].remaining
		}
		return ps[i].member < ps[j].member
	})
}

// FilterFrom returns the plan entries member should pay.
func FilterFrom(plan []Transaction, member string) []Transaction {
	var out []Transaction
	for _, t := range plan {
		if t.From == member {
			out = append(out, t)
		}
	}
	return out
}

// FilterTo returns the plan entries that pay member.
func FilterTo(plan []Transaction, member string) []Transaction {
	var out []Transaction
	for _, t := range plan {
		if t.To == member {
			out = append(out, t)
		}
	}
	return out
}
