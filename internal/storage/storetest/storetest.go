// Package storetest holds the behavioral tests every storage.Store
// implementation must pass.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Factory returns a fresh, empty store. The store is closed by the suite.
type Factory func(t *testing.T) storage.Store

// Run exercises store semantics against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("Groups", func(t *testing.T) { testGroups(t, newStore(t)) })
	t.Run("Expenses", func(t *testing.T) { testExpenses(t, newStore(t)) })
	t.Run("Requests", func(t *testing.T) { testRequests(t, newStore(t)) })
	t.Run("ConcurrentConfirm", func(t *testing.T) { testConcurrentConfirm(t, newStore(t)) })
	t.Run("ConcurrentCreate", func(t *testing.T) { testConcurrentCreate(t, newStore(t)) })
}

func newGroup(t *testing.T, ctx context.Context, store storage.Store, members ...string) *models.Group {
	t.Helper()
	group := &models.Group{Name: "Trip", Currency: "USD", Members: members}
	require.NoError(t, store.CreateGroup(ctx, group))
	return group
}

func testGroups(t *testing.T, store storage.Store) {
	defer store.Close()
	ctx := context.Background()

	group := newGroup(t, ctx, store, "bob", "alice")
	assert.NotEmpty(t, group.ID)
	assert.NotZero(t, group.CreatedAt)

	got, err := store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Name)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, []string{"alice", "bob"}, got.Members)

	require.NoError(t, store.AddGroupMembers(ctx, group.ID, []string{"charlie", "alice"}))
	got, err = store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "charlie"}, got.Members)

	_, err = store.GetGroup(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.AddGroupMembers(ctx, "missing", []string{"x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	t.Run("list by member", func(t *testing.T) {
		later := &models.Group{Name: "Flat", Currency: "EUR", Members: []string{"dave", "alice"},
			CreatedAt: group.CreatedAt + 10}
		require.NoError(t, store.CreateGroup(ctx, later))

		groups, err := store.ListGroupsByMember(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, group.ID, groups[0].ID, "oldest first")
		assert.Equal(t, later.ID, groups[1].ID)
		assert.Equal(t, []string{"alice", "dave"}, groups[1].Members)
		assert.Equal(t, "EUR", groups[1].Currency)

		groups, err = store.ListGroupsByMember(ctx, "charlie")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, group.ID, groups[0].ID)

		groups, err = store.ListGroupsByMember(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func testExpenses(t *testing.T, store storage.Store) {
	defer store.Close()
	ctx := context.Background()

	group := newGroup(t, ctx, store, "alice", "bob", "charlie")
	other := newGroup(t, ctx, store, "alice")

	first := &models.Expense{GroupID: group.ID, PayerID: "alice", Amount: 30000,
		Participants: []string{"charlie", "alice", "bob"}, Description: "Hotel", CreatedAt: 100}
	second := &models.Expense{GroupID: group.ID, PayerID: "bob", Amount: 1000,
		Participants: []string{"alice"}, CreatedAt: 200}
	elsewhere := &models.Expense{GroupID: other.ID, PayerID: "alice", Amount: 5,
		Participants: []string{"alice"}, CreatedAt: 300}

	for _, e := range []*models.Expense{first, second, elsewhere} {
		require.NoError(t, store.CreateExpense(ctx, e))
		assert.NotEmpty(t, e.ID)
	}

	expenses, err := store.ListExpensesByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	assert.Equal(t, second.ID, expenses[0].ID, "newest first")
	assert.Equal(t, first.ID, expenses[1].ID)
	assert.Equal(t, []string{"alice", "bob", "charlie"}, expenses[1].Participants)
	assert.EqualValues(t, 30000, expenses[1].Amount)
	assert.Equal(t, "Hotel", expenses[1].Description)

	expenses, err = store.ListExpensesByGroup(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func testRequests(t *testing.T, store storage.Store) {
	defer store.Close()
	ctx := context.Background()

	group := newGroup(t, ctx, store, "alice", "bob", "charlie")

	req := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob",
		Amount: 5000, ProofRef: "https://example.test/receipt.png", CreatedAt: 100}
	require.NoError(t, store.CreateSettlementRequest(ctx, req))
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.RequestPending, req.Status)

	t.Run("duplicate pending pair is refused", func(t *testing.T) {
		dup := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 3000}
		err := store.CreateSettlementRequest(ctx, dup)
		assert.ErrorIs(t, err, storage.ErrDuplicatePending)
	})

	t.Run("reverse direction is a different pair", func(t *testing.T) {
		rev := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "bob", ToMemberID: "alice", Amount: 100, CreatedAt: 110}
		require.NoError(t, store.CreateSettlementRequest(ctx, rev))
	})

	t.Run("get returns stored fields", func(t *testing.T) {
		got, err := store.GetSettlementRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.ProofRef, got.ProofRef)
		assert.EqualValues(t, 5000, got.Amount)
		assert.Equal(t, models.RequestPending, got.Status)
		assert.Zero(t, got.ResolvedAt)

		_, err = store.GetSettlementRequest(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("confirm writes settlement atomically", func(t *testing.T) {
		settlement := &models.Settlement{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob",
			Amount: 5000, ConfirmedBy: "bob", RequestID: req.ID, CreatedAt: 150}
		require.NoError(t, store.ResolveSettlementRequest(ctx, req.ID, models.RequestConfirmed, 150, settlement))
		assert.NotEmpty(t, settlement.ID)

		got, err := store.GetSettlementRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RequestConfirmed, got.Status)
		assert.EqualValues(t, 150, got.ResolvedAt)

		stored, err := store.GetSettlement(ctx, settlement.ID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, stored.RequestID)
		assert.Equal(t, "bob", stored.ConfirmedBy)
		assert.EqualValues(t, 5000, stored.Amount)
	})

	t.Run("second resolution is stale and writes nothing", func(t *testing.T) {
		settlement := &models.Settlement{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob",
			Amount: 5000, ConfirmedBy: "bob", RequestID: req.ID}
		err := store.ResolveSettlementRequest(ctx, req.ID, models.RequestConfirmed, 160, settlement)
		assert.ErrorIs(t, err, storage.ErrStaleRequest)

		err = store.ResolveSettlementRequest(ctx, req.ID, models.RequestRejected, 160, nil)
		assert.ErrorIs(t, err, storage.ErrStaleRequest)

		settlements, err := store.ListSettlementsByGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, settlements, 1)
	})

	t.Run("resolving an unknown request is not found", func(t *testing.T) {
		err := store.ResolveSettlementRequest(ctx, "missing", models.RequestRejected, 1, nil)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = store.GetSettlement(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("pair is free again after resolution", func(t *testing.T) {
		again := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 700, CreatedAt: 200}
		require.NoError(t, store.CreateSettlementRequest(ctx, again))
		require.NoError(t, store.ResolveSettlementRequest(ctx, again.ID, models.RequestRejected, 210, nil))

		got, err := store.GetSettlementRequest(ctx, again.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RequestRejected, got.Status)
	})

	t.Run("list filters", func(t *testing.T) {
		all, err := store.ListSettlementRequests(ctx, group.ID, storage.RequestFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
		assert.EqualValues(t, 700, all[0].Amount, "newest first")

		pending, err := store.ListSettlementRequests(ctx, group.ID, storage.RequestFilter{Status: models.RequestPending})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "bob", pending[0].FromMemberID)

		charlie, err := store.ListSettlementRequests(ctx, group.ID, storage.RequestFilter{MemberID: "charlie"})
		require.NoError(t, err)
		assert.Empty(t, charlie)

		aliceConfirmed, err := store.ListSettlementRequests(ctx, group.ID,
			storage.RequestFilter{Status: models.RequestConfirmed, MemberID: "alice"})
		require.NoError(t, err)
		require.Len(t, aliceConfirmed, 1)
		assert.Equal(t, req.ID, aliceConfirmed[0].ID)

		toBob, err := store.ListSettlementRequests(ctx, group.ID, storage.RequestFilter{ToID: "bob"})
		require.NoError(t, err)
		require.Len(t, toBob, 2)
		for _, r := range toBob {
			assert.Equal(t, "bob", r.ToMemberID)
		}

		toAlicePending, err := store.ListSettlementRequests(ctx, group.ID,
			storage.RequestFilter{Status: models.RequestPending, ToID: "alice"})
		require.NoError(t, err)
		require.Len(t, toAlicePending, 1)
		assert.Equal(t, "bob", toAlicePending[0].FromMemberID)
	})
}

func testConcurrentConfirm(t *testing.T, store storage.Store) {
	defer store.Close()
	ctx := context.Background()

	group := newGroup(t, ctx, store, "alice", "bob")
	req := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 5000}
	require.NoError(t, store.CreateSettlementRequest(ctx, req))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			settlement := &models.Settlement{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob",
				Amount: 5000, ConfirmedBy: "bob", RequestID: req.ID}
			errs[i] = store.ResolveSettlementRequest(ctx, req.ID, models.RequestConfirmed, 10, settlement)
		}()
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, storage.ErrStaleRequest):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)

	settlements, err := store.ListSettlementsByGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, settlements, 1)
}

func testConcurrentCreate(t *testing.T, store storage.Store) {
	defer store.Close()
	ctx := context.Background()

	group := newGroup(t, ctx, store, "alice", "bob")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := &models.SettlementRequest{GroupID: group.ID, FromMemberID: "alice", ToMemberID: "bob", Amount: 100}
			errs[i] = store.CreateSettlementRequest(ctx, req)
		}()
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, storage.ErrDuplicatePending):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)

	pending, err := store.ListSettlementRequests(ctx, group.ID, storage.RequestFilter{Status: models.RequestPending})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
