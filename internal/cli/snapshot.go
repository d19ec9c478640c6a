package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/money"
)

// Snapshot is a group's ledger as written in a YAML file. Amounts are decimals
// in major units of Currency and may be written bare or quoted.
type Snapshot struct {
	Currency    string               `yaml:"currency"`
	Members     []string             `yaml:"members"`
	Expenses    []SnapshotExpense    `yaml:"expenses"`
	Settlements []SnapshotSettlement `yaml:"settlements"`
}

type SnapshotExpense struct {
	ID           string   `yaml:"id"`
	Payer        string   `yaml:"payer"`
	Amount       Decimal  `yaml:"amount"`
	Participants []string `yaml:"participants"`
	Description  string   `yaml:"description,omitempty"`
}

type SnapshotSettlement struct {
	ID     string  `yaml:"id"`
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Amount Decimal `yaml:"amount"`
}

// Decimal keeps a scalar's source text so amounts never pass through float64.
type Decimal string

func (d *Decimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a number", node.Line)
	}
	*d = Decimal(node.Value)
	return nil
}

// Ledger is a Snapshot converted to minor units.
type Ledger struct {
	Currency    string
	Exp         int
	Members     []string
	Expenses    []models.Expense
	Settlements []models.Settlement
}

// LoadSnapshotFile reads a snapshot from path, or from stdin when path is "-".
func LoadSnapshotFile(path string, stdin io.Reader) (*Ledger, error) {
	if path == "-" {
		return LoadSnapshot(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return LoadSnapshot(f)
}

// LoadSnapshot decodes a snapshot and converts its amounts to minor units.
// Unknown keys and amounts finer than the currency allows are errors; records
// that are well formed but inconsistent are left for aggregation to skip.
func LoadSnapshot(r io.Reader) (*Ledger, error) {
	var snap Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode snapshot: empty document")
		}
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	currency := strings.ToUpper(strings.TrimSpace(snap.Currency))
	exp, err := money.Exponent(currency)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		Currency:    currency,
		Exp:         exp,
		Members:     snap.Members,
		Expenses:    make([]models.Expense, 0, len(snap.Expenses)),
		Settlements: make([]models.Settlement, 0, len(snap.Settlements)),
	}

	for i, e := range snap.Expenses {
		amount, err := money.Parse(string(e.Amount), exp)
		if err != nil {
			return nil, fmt.Errorf("expenses[%d].amount: %w", i, err)
		}
		l.Expenses = append(l.Expenses, models.Expense{
			ID:           recordID(e.ID, "e", i),
			PayerID:      e.Payer,
			Amount:       amount,
			Participants: e.Participants,
			Description:  e.Description,
		})
	}

	for i, s := range snap.Settlements {
		amount, err := money.Parse(string(s.Amount), exp)
		if err != nil {
			return nil, fmt.Errorf("settlements[%d].amount: %w", i, err)
		}
		l.Settlements = append(l.Settlements, models.Settlement{
			ID:           recordID(s.ID, "s", i),
			FromMemberID: s.From,
			ToMemberID:   s.To,
			Amount:       amount,
		})
	}

	return l, nil
}

// recordID names unnamed records by position so skip warnings can point at them.
func recordID(id, prefix string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s%d", prefix, i+1)
}
