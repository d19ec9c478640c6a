package calculator

import (
	"errors"
	"reflect"
	"testing"
)

func TestMinimize(t *testing.T) {
	tests := []struct {
		name     string
		balances Balances
		want     []Transaction
		wantErr  error
	}{
		{
			name:     "trip scenario",
			balances: Balances{"alice": -10000, "bob": 0, "charlie": 10000},
			want:     []Transaction{{From: "alice", To: "charlie", Amount: 10000}},
		},
		{
			name:     "already settled",
			balances: Balances{"a": 0, "b": 0},
			want:     []Transaction{},
		},
		{
			name:     "empty group",
			balances: Balances{},
			want:     []Transaction{},
		},
		{
			name:     "single minor unit is still paid",
			balances: Balances{"a": 1, "b": -1},
			want:     []Transaction{{From: "b", To: "a", Amount: 1}},
		},
		{
			name:     "two one-unit debtors cover one creditor",
			balances: Balances{"a": -1, "b": -1, "d": 2},
			want: []Transaction{
				{From: "a", To: "d", Amount: 1},
				{From: "b", To: "d", Amount: 1},
			},
		},
		{
			name: "one-unit debts after large ones",
			balances: Balances{
				"alice": -10000, "bob": -1, "charlie": 20002, "dave": -10000, "erin": -1,
			},
			want: []Transaction{
				{From: "alice", To: "charlie", Amount: 10000},
				{From: "dave", To: "charlie", Amount: 10000},
				{From: "bob", To: "charlie", Amount: 1},
				{From: "erin", To: "charlie", Amount: 1},
			},
		},
		{
			name:     "two debtors one creditor",
			balances: Balances{"a": -3000, "b": -2000, "c": 5000},
			want: []Transaction{
				{From: "a", To: "c", Amount: 3000},
				{From: "b", To: "c", Amount: 2000},
			},
		},
		{
			name:     "largest debtor pays largest creditor first",
			balances: Balances{"a": 5000, "b": 3000, "c": -4000, "d": -4000},
			want: []Transaction{
				{From: "c", To: "a", Amount: 4000},
				{From: "d", To: "a", Amount: 1000},
				{From: "d", To: "b", Amount: 3000},
			},
		},
		{
			name:     "symmetric pairs match directly",
			balances: Balances{"a": -700, "b": 700, "c": -300, "d": 300},
			want: []Transaction{
				{From: "a", To: "b", Amount: 700},
				{From: "c", To: "d", Amount: 300},
			},
		},
		{
			name:     "unbalanced input is rejected",
			balances: Balances{"a": 100, "b": -50},
			wantErr:  ErrUnbalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Minimize(tt.balances)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Minimize() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Minimize() returned plan %v alongside error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Minimize() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Minimize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinimizeTieBreakIsDeterministic(t *testing.T) {
	balances := Balances{"d": -1000, "b": -1000, "c": 1000, "a": 1000}
	want := []Transaction{
		{From: "b", To: "a", Amount: 1000},
		{From: "d", To: "c", Amount: 1000},
	}
	for i := 0; i < 20; i++ {
		got, err := Minimize(balances)
		if err != nil {
			t.Fatalf("Minimize() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: Minimize() = %v, want %v", i, got, want)
		}
	}
}

func TestPlanFilters(t *testing.T) {
	plan := []Transaction{
		{From: "a", To: "c", Amount: 100},
		{From: "b", To: "c", Amount: 200},
		{From: "a", To: "d", Amount: 300},
	}

	if got := FilterFrom(plan, "a"); len(got) != 2 {
		t.Errorf("FilterFrom(a) = %v, want 2 entries", got)
	}
	if got := FilterTo(plan, "c"); len(got) != 2 {
		t.Errorf("FilterTo(c) = %v, want 2 entries", got)
	}
	if got := FilterTo(plan, "a"); len(got) != 0 {
		t.Errorf("FilterTo(a) = %v, want none", got)
	}
	if !plan[1].Involves("b") || plan[1].Involves("a") {
		t.Error("Involves() mismatch for b->c entry")
	}
}
