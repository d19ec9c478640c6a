package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/internal/storage/storetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestNewCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "settleup.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()
}

func TestDataSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settleup.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	group := &models.Group{Name: "Roommates", Currency: "EUR", Members: []string{"alice", "bob"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	req := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 1200}
	if err := store.CreateSettlementRequest(ctx, req); err != nil {
		t.Fatalf("CreateSettlementRequest failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent on an existing file.
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got.Currency != "EUR" {
		t.Errorf("Currency mismatch: got %s, want EUR", got.Currency)
	}

	// The pending index is persisted with the table.
	dup := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 1}
	if err := reopened.CreateSettlementRequest(ctx, dup); !errors.Is(err, storage.ErrDuplicatePending) {
		t.Errorf("expected ErrDuplicatePending after reopen, got %v", err)
	}
}

func TestSchemaRejectsNonPositiveAmounts(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	group := &models.Group{Name: "g", Currency: "USD", Members: []string{"alice"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	expense := &models.Expense{GroupID: group.ID, PayerID: "alice", Amount: 0, Participants: []string{"alice"}}
	if err := store.CreateExpense(ctx, expense); err == nil {
		t.Error("Expected CHECK constraint to reject a zero amount")
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	expense := &models.Expense{GroupID: "no-such-group", PayerID: "alice", Amount: 100, Participants: []string{"alice"}}
	if err := store.CreateExpense(context.Background(), expense); err == nil {
		t.Error("Expected foreign key violation for unknown group")
	}
}
