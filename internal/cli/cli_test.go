package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/pkg/money"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "settleup", cmd.Use)

	for _, name := range []string{"balances", "plan"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
			require.NotNil(t, sub.Flags().Lookup("file"))
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"balances_text", []string{"balances", "-f", "testdata/trip.yaml"}},
		{"balances_json", []string{"balances", "-f", "testdata/trip.yaml", "--format", "json"}},
		{"plan_text", []string{"plan", "-f", "testdata/trip.yaml"}},
		{"plan_json", []string{"plan", "-f", "testdata/trip.yaml", "--format", "json"}},
		{"plan_member_bob", []string{"plan", "-f", "testdata/trip.yaml", "--member", "bob"}},
		{"plan_settled", []string{"plan", "-f", "testdata/settled.yaml"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestSkippedRecordsAreLogged(t *testing.T) {
	_, stderr, err := execute(t, "", "plan", "-f", "testdata/trip.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Skipping invalid record")
	assert.Contains(t, stderr, "taxi")
}

func TestSnapshotFromStdin(t *testing.T) {
	snapshot := `
currency: EUR
members: [a, b]
expenses:
  - payer: a
    amount: 10
    participants: [b]
`
	stdout, _, err := execute(t, snapshot, "plan", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "b pays a 10.00 EUR\n", stdout)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{"missing file flag", "", []string{"plan"}, `required flag(s) "file" not set`},
		{"bad format", "", []string{"plan", "-f", "testdata/trip.yaml", "--format", "xml"}, `invalid format "xml"`},
		{"missing file", "", []string{"balances", "-f", "testdata/nope.yaml"}, "open snapshot"},
		{"empty snapshot", "", []string{"balances", "-f", "-"}, "empty document"},
		{"unknown key", "currency: USD\nmembrs: [a]\n", []string{"balances", "-f", "-"}, "field membrs not found"},
		{"unknown currency", "currency: ZZZ1\n", []string{"balances", "-f", "-"}, "unknown currency"},
		{"too precise", "currency: USD\nexpenses:\n  - payer: a\n    amount: 1.005\n    participants: [a]\n", []string{"balances", "-f", "-"}, "expenses[0].amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSnapshot(t *testing.T) {
	ledger, err := LoadSnapshotFile("testdata/trip.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, "USD", ledger.Currency)
	assert.Equal(t, 2, ledger.Exp)
	assert.Equal(t, []string{"alice", "bob", "charlie"}, ledger.Members)
	require.Len(t, ledger.Expenses, 4)
	assert.Equal(t, money.Amount(30000), ledger.Expenses[2].Amount)
	assert.Equal(t, "Hotel", ledger.Expenses[0].Description)
	require.Len(t, ledger.Settlements, 1)
	assert.Equal(t, money.Amount(4000), ledger.Settlements[0].Amount)

	// The unknown payer survives loading and is skipped during aggregation.
	_, invalid := calculator.Aggregate(ledger.Expenses, ledger.Settlements, ledger.Members)
	require.Len(t, invalid, 1)
	assert.Equal(t, "taxi", invalid[0].ID)
	assert.ErrorIs(t, invalid[0], calculator.ErrUnknownMember)
}

func TestLoadSnapshotNamesUnnamedRecords(t *testing.T) {
	ledger, err := LoadSnapshotFile("testdata/settled.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, "e1", ledger.Expenses[0].ID)
	assert.Equal(t, "s1", ledger.Settlements[0].ID)
	assert.Equal(t, 0, ledger.Exp)
}
