package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/money"
)

var (
	ErrNoParticipants    = errors.New("expense has no participants")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrMissingMember     = errors.New("member id is empty")
	ErrSelfTransfer      = errors.New("settlement sender and recipient are the same member")
	ErrUnknownMember     = errors.New("member is not part of the group")
	ErrUnbalanced        = errors.New("balances do not sum to zero")
)

// Balances maps member ID to net balance in minor units.
// Positive means the group owes the member; negative means the member owes the group.
type Balances map[string]money.Amount

// Sum returns the total of all balances. It is zero for any consistent ledger.
func (b Balances) Sum() money.Amount {
	var total money.Amount
	for _, v := range b {
		total += v
	}
	return total
}

// CheckConservation returns ErrUnbalanced if the balances do not sum to exactly zero.
func (b Balances) CheckConservation() error {
	if sum := b.Sum(); sum != 0 {
		return fmt.Errorf("%w: off by %d minor units", ErrUnbalanced, sum)
	}
	return nil
}

// Members returns the member IDs in ascending order.
func (b Balances) Members() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RecordKind names the kind of record an InvalidRecord refers to.
type RecordKind string

const (
	KindExpense    RecordKind = "expense"
	KindSettlement RecordKind = "settlement"
)

// InvalidRecord describes an input record that was skipped during aggregation.
type InvalidRecord struct {
	Kind RecordKind
	ID   string
	Err  error
}

func (r InvalidRecord) Error() string {
	return fmt.Sprintf("%s %s skipped: %v", r.Kind, r.ID, r.Err)
}

func (r InvalidRecord) Unwrap() error { return r.Err }

// MemberSummary breaks one member's net balance into its components.
type MemberSummary struct {
	MemberID   string
	TotalPaid  money.Amount // paid for expenses
	TotalShare money.Amount // share of expenses, including any assigned remainder
	SettledOut money.Amount // paid to other members through settlements
	SettledIn  money.Amount // received from other members through settlements
	NetBalance money.Amount // TotalPaid - TotalShare + SettledOut - SettledIn
}

// ValidateExpense checks an expense the way Aggregate does. When members is
// non-empty, the payer and all participants must be in it.
func ValidateExpense(e models.Expense, members []string) error {
	return validateExpense(e, memberSet(members))
}

// ValidateSettlement checks a settlement the way Aggregate does.
func ValidateSettlement(s models.Settlement, members []string) error {
	return validateSettlement(s, memberSet(members))
}

func validateExpense(e models.Expense, known map[string]bool) error {
	if e.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if e.PayerID == "" {
		return fmt.Errorf("%w: payer", ErrMissingMember)
	}
	if len(e.Participants) == 0 {
		return ErrNoParticipants
	}
	for _, p := range e.Participants {
		if p == "" {
			return fmt.Errorf("%w: participant", ErrMissingMember)
		}
	}
	if known != nil {
		if !known[e.PayerID] {
			return fmt.Errorf("%w: %s", ErrUnknownMember, e.PayerID)
		}
		for _, p := range e.Participants {
			if !known[p] {
				return fmt.Errorf("%w: %s", ErrUnknownMember, p)
			}
		}
	}
	return nil
}

func validateSettlement(s models.Settlement, known map[string]bool) error {
	if s.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if s.FromMemberID == "" || s.ToMemberID == "" {
		return ErrMissingMember
	}
	if s.FromMemberID == s.ToMemberID {
		return ErrSelfTransfer
	}
	if known != nil {
		if !known[s.FromMemberID] {
			return fmt.Errorf("%w: %s", ErrUnknownMember, s.FromMemberID)
		}
		if !known[s.ToMemberID] {
			return fmt.Errorf("%w: %s", ErrUnknownMember, s.ToMemberID)
		}
	}
	return nil
}

// Aggregate folds expense and settlement history into one net balance per member.
//
// Every ID in members appears in the result, with 0 if it has no activity.
// For each expense the payer gains the full amount and each participant loses
// their share (see SplitShares). For each settlement the sender gains and the
// recipient loses the amount. Malformed records are skipped and returned as
// InvalidRecords; they never abort the computation.
//
// When members is empty, membership is taken from the records themselves.
func Aggregate(expenses []models.Expense, settlements []models.Settlement, members []string) (Balances, []InvalidRecord) {
	summaries, invalid := fold(expenses, settlements, members)
	balances := make(Balances, len(summaries))
	for id, s := range summaries {
		balances[id] = s.NetBalance
	}
	return balances, invalid
}

// Summarize is Aggregate with the per-member breakdown of paid, owed and settled
// amounts. The result is sorted by member ID.
func Summarize(expenses []models.Expense, settlements []models.Settlement, members []string) ([]MemberSummary, []InvalidRecord) {
	summaries, invalid := fold(expenses, settlements, members)
	out := make([]MemberSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out, invalid
}

func fold(expenses []models.Expense, settlements []models.Settlement, members []string) (map[string]*MemberSummary, []InvalidRecord) {
	summaries := make(map[string]*MemberSummary, len(members))
	get := func(id string) *MemberSummary {
		s, ok := summaries[id]
		if !ok {
			s = &MemberSummary{MemberID: id}
			summaries[id] = s
		}
		return s
	}
	for _, m := range members {
		get(m)
	}

	known := memberSet(members)
	var invalid []InvalidRecord

	for _, e := range expenses {
		if err := validateExpense(e, known); err != nil {
			invalid = append(invalid, InvalidRecord{Kind: KindExpense, ID: e.ID, Err: err})
			continue
		}
		get(e.PayerID).TotalPaid += e.Amount
		for _, share := range SplitShares(e.Amount, e.PayerID, e.Participants) {
			get(share.Member).TotalShare += share.Amount
		}
	}

	for _, s := range settlements {
		if err := validateSettlement(s, known); err != nil {
			invalid = append(invalid, InvalidRecord{Kind: KindSettlement, ID: s.ID, Err: err})
			continue
		}
		get(s.FromMemberID).SettledOut += s.Amount
		get(s.ToMemberID).SettledIn += s.Amount
	}

	for _, s := range summaries {
		s.NetBalance = s.TotalPaid - s.TotalShare + s.SettledOut - s.SettledIn
	}

	sort.SliceStable(invalid, func(i, j int) bool {
		if invalid[i].Kind != invalid[j].Kind {
			return invalid[i].Kind < invalid[j].Kind
		}
		return invalid[i].ID < invalid[j].ID
	})

	return summaries, invalid
}

// memberSet returns nil for an empty list, meaning membership is not checked.
func memberSet(members []string) map[string]bool {
	if len(members) == 0 {
		return nil
	}
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	return set
}
