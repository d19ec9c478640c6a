package calculator

import (
	"errors"
	"testing"

	"github.com/mmynk/settleup/internal/models"
)

// tripExpenses is the Alice/Bob/Charlie trip: 100, 200 and 300 split three ways.
func tripExpenses() []models.Expense {
	everyone := []string{"alice", "bob", "charlie"}
	return []models.Expense{
		{ID: "e1", PayerID: "alice", Amount: 10000, Participants: everyone, Description: "Hotel"},
		{ID: "e2", PayerID: "bob", Amount: 20000, Participants: everyone, Description: "Food"},
		{ID: "e3", PayerID: "charlie", Amount: 30000, Participants: everyone, Description: "Transport"},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("trip scenario", func(t *testing.T) {
		balances, invalid := Aggregate(tripExpenses(), nil, []string{"alice", "bob", "charlie"})
		if len(invalid) != 0 {
			t.Fatalf("unexpected invalid records: %v", invalid)
		}

		want := Balances{"alice": -10000, "bob": 0, "charlie": 10000}
		for member, w := range want {
			if balances[member] != w {
				t.Errorf("%s balance = %d, want %d", member, balances[member], w)
			}
		}

		if sum := balances.Sum(); sum != 0 {
			t.Errorf("balances sum to %d, want 0", sum)
		}
	})

	t.Run("idle members appear with zero", func(t *testing.T) {
		balances, _ := Aggregate(nil, nil, []string{"a", "b"})
		if len(balances) != 2 {
			t.Fatalf("expected 2 members, got %d", len(balances))
		}
		for _, m := range []string{"a", "b"} {
			bal, ok := balances[m]
			if !ok || bal != 0 {
				t.Errorf("%s balance = %d (present=%v), want 0", m, bal, ok)
			}
		}
	})

	t.Run("payer outside participants", func(t *testing.T) {
		expenses := []models.Expense{
			{ID: "e1", PayerID: "a", Amount: 1000, Participants: []string{"b", "c"}},
		}
		balances, _ := Aggregate(expenses, nil, nil)
		want := Balances{"a": 1000, "b": -500, "c": -500}
		for m, w := range want {
			if balances[m] != w {
				t.Errorf("%s balance = %d, want %d", m, balances[m], w)
			}
		}
	})

	t.Run("settlements move balance from recipient to sender", func(t *testing.T) {
		settlements := []models.Settlement{
			{ID: "s1", FromMemberID: "alice", ToMemberID: "charlie", Amount: 10000},
		}
		balances, _ := Aggregate(tripExpenses(), settlements, []string{"alice", "bob", "charlie"})
		if balances["alice"] != 0 {
			t.Errorf("alice balance = %d, want 0", balances["alice"])
		}
		if balances["charlie"] != 0 {
			t.Errorf("charlie balance = %d, want 0", balances["charlie"])
		}
	})

	t.Run("bad records are skipped not fatal", func(t *testing.T) {
		expenses := append(tripExpenses(),
			models.Expense{ID: "bad-empty", PayerID: "alice", Amount: 500},
			models.Expense{ID: "bad-zero", PayerID: "alice", Amount: 0, Participants: []string{"bob"}},
			models.Expense{ID: "bad-payer", Amount: 500, Participants: []string{"bob"}},
			models.Expense{ID: "bad-stranger", PayerID: "mallory", Amount: 500, Participants: []string{"bob"}},
		)
		settlements := []models.Settlement{
			{ID: "bad-self", FromMemberID: "bob", ToMemberID: "bob", Amount: 100},
			{ID: "bad-negative", FromMemberID: "bob", ToMemberID: "alice", Amount: -100},
			{ID: "bad-missing", FromMemberID: "bob", Amount: 100},
		}

		balances, invalid := Aggregate(expenses, settlements, []string{"alice", "bob", "charlie"})
		if len(invalid) != 7 {
			t.Fatalf("expected 7 invalid records, got %d: %v", len(invalid), invalid)
		}

		wantErrs := map[string]error{
			"bad-empty":    ErrNoParticipants,
			"bad-zero":     ErrNonPositiveAmount,
			"bad-payer":    ErrMissingMember,
			"bad-stranger": ErrUnknownMember,
			"bad-self":     ErrSelfTransfer,
			"bad-negative": ErrNonPositiveAmount,
			"bad-missing":  ErrMissingMember,
		}
		for _, rec := range invalid {
			if !errors.Is(rec, wantErrs[rec.ID]) {
				t.Errorf("record %s error = %v, want %v", rec.ID, rec.Err, wantErrs[rec.ID])
			}
		}

		if _, ok := balances["mallory"]; ok {
			t.Error("unknown member should not appear in balances")
		}
		if balances["alice"] != -10000 {
			t.Errorf("alice balance = %d, want -10000", balances["alice"])
		}
	})
}

func TestDoubledTripSettlesExactly(t *testing.T) {
	expenses := tripExpenses()
	everyone := []string{"dave", "erin", "charlie"}
	expenses = append(expenses,
		models.Expense{ID: "e4", PayerID: "dave", Amount: 10000, Participants: everyone},
		models.Expense{ID: "e5", PayerID: "erin", Amount: 20000, Participants: everyone},
		models.Expense{ID: "e6", PayerID: "charlie", Amount: 30000, Participants: everyone},
	)
	members := []string{"alice", "bob", "charlie", "dave", "erin"}

	balances, invalid := Aggregate(expenses, nil, members)
	if len(invalid) != 0 {
		t.Fatalf("unexpected invalid records: %v", invalid)
	}
	want := Balances{"alice": -10000, "bob": 0, "charlie": 20000, "dave": -10000, "erin": 0}
	for m, w := range want {
		if balances[m] != w {
			t.Errorf("%s balance = %d, want %d", m, balances[m], w)
		}
	}

	plan, err := Minimize(balances)
	if err != nil {
		t.Fatalf("Minimize() unexpected error: %v", err)
	}
	settled, _ := Aggregate(expenses, replay(plan), members)
	for m, b := range settled {
		if b != 0 {
			t.Errorf("%s balance after replay = %d, want 0", m, b)
		}
	}
}

func TestSummarize(t *testing.T) {
	settlements := []models.Settlement{
		{ID: "s1", FromMemberID: "alice", ToMemberID: "charlie", Amount: 4000},
	}
	summaries, invalid := Summarize(tripExpenses(), settlements, []string{"charlie", "bob", "alice"})
	if len(invalid) != 0 {
		t.Fatalf("unexpected invalid records: %v", invalid)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	want := []MemberSummary{
		{MemberID: "alice", TotalPaid: 10000, TotalShare: 20000, SettledOut: 4000, NetBalance: -6000},
		{MemberID: "bob", TotalPaid: 20000, TotalShare: 20000},
		{MemberID: "charlie", TotalPaid: 30000, TotalShare: 20000, SettledIn: 4000, NetBalance: 6000},
	}
	for i := range want {
		if summaries[i] != want[i] {
			t.Errorf("summary %d = %+v, want %+v", i, summaries[i], want[i])
		}
	}
}

func TestCheckConservation(t *testing.T) {
	if err := (Balances{"a": 5, "b": -5}).CheckConservation(); err != nil {
		t.Errorf("balanced ledger returned error: %v", err)
	}
	err := (Balances{"a": 5, "b": -4}).CheckConservation()
	if !errors.Is(err, ErrUnbalanced) {
		t.Errorf("unbalanced ledger error = %v, want ErrUnbalanced", err)
	}
}
