// Package memory provides an in-process implementation of storage.Store.
// It backs tests and the CLI; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type pairKey struct {
	group, from, to string
}

// Store keeps every record in maps guarded by a single mutex.
// Records are copied on the way in and out so callers never share memory with the store.
type Store struct {
	mu sync.Mutex

	groups      map[string]*models.Group
	expenses    []*models.Expense
	settlements []*models.Settlement
	requests    []*models.SettlementRequest
	requestByID map[string]*models.SettlementRequest
	pending     map[pairKey]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		groups:      make(map[string]*models.Group),
		requestByID: make(map[string]*models.SettlementRequest),
		pending:     make(map[pairKey]string),
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) CreateGroup(_ context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.ID]; ok {
		return fmt.Errorf("group %s already exists", group.ID)
	}
	stored := *group
	stored.Members = sortedUnique(group.Members)
	s.groups[group.ID] = &stored
	return nil
}

func (s *Store) GetGroup(_ context.Context, groupID string) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: group %s", storage.ErrNotFound, groupID)
	}
	out := *group
	out.Members = slices.Clone(group.Members)
	return &out, nil
}

func (s *Store) AddGroupMembers(_ context.Context, groupID string, members []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return fmt.Errorf("%w: group %s", storage.ErrNotFound, groupID)
	}
	group.Members = sortedUnique(append(slices.Clone(group.Members), members...))
	return nil
}

func (s *Store) ListGroupsByMember(_ context.Context, memberID string) ([]*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Group
	for _, group := range s.groups {
		if !group.HasMember(memberID) {
			continue
		}
		cp := *group
		cp.Members = slices.Clone(group.Members)
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.Group) int {
		return cmp.Or(cmp.Compare(a.CreatedAt, b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[expense.GroupID]; !ok {
		return fmt.Errorf("%w: group %s", storage.ErrNotFound, expense.GroupID)
	}
	stored := *expense
	stored.Participants = sortedUnique(expense.Participants)
	s.expenses = append(s.expenses, &stored)
	return nil
}

func (s *Store) ListExpensesByGroup(_ context.Context, groupID string) ([]*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Expense
	for _, e := range s.expenses {
		if e.GroupID != groupID {
			continue
		}
		c := *e
		c.Participants = slices.Clone(e.Participants)
		out = append(out, &c)
	}
	newestFirst(out, func(e *models.Expense) int64 { return e.CreatedAt })
	return out, nil
}

func (s *Store) GetSettlement(_ context.Context, settlementID string) (*models.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.settlements {
		if st.ID == settlementID {
			c := *st
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: settlement %s", storage.ErrNotFound, settlementID)
}

func (s *Store) ListSettlementsByGroup(_ context.Context, groupID string) ([]*models.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Settlement
	for _, st := range s.settlements {
		if st.GroupID == groupID {
			c := *st
			out = append(out, &c)
		}
	}
	newestFirst(out, func(st *models.Settlement) int64 { return st.CreatedAt })
	return out, nil
}

func (s *Store) CreateSettlementRequest(_ context.Context, req *models.SettlementRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().Unix()
	}
	req.Status = models.RequestPending
	req.ResolvedAt = 0

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[req.GroupID]; !ok {
		return fmt.Errorf("%w: group %s", storage.ErrNotFound, req.GroupID)
	}
	key := pairKey{req.GroupID, req.FromMemberID, req.ToMemberID}
	if _, ok := s.pending[key]; ok {
		return storage.ErrDuplicatePending
	}

	stored := *req
	s.requests = append(s.requests, &stored)
	s.requestByID[stored.ID] = &stored
	s.pending[key] = stored.ID
	return nil
}

func (s *Store) GetSettlementRequest(_ context.Context, requestID string) (*models.SettlementRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requestByID[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
	}
	c := *req
	return &c, nil
}

func (s *Store) ListSettlementRequests(_ context.Context, groupID string, filter storage.RequestFilter) ([]*models.SettlementRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.SettlementRequest
	for _, req := range s.requests {
		if req.GroupID == groupID && filter.Matches(req) {
			c := *req
			out = append(out, &c)
		}
	}
	newestFirst(out, func(r *models.SettlementRequest) int64 { return r.CreatedAt })
	return out, nil
}

func (s *Store) ResolveSettlementRequest(_ context.Context, requestID string, status models.RequestStatus, resolvedAt int64, settlement *models.Settlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requestByID[requestID]
	if !ok {
		return fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
	}
	if req.Status != models.RequestPending {
		return storage.ErrStaleRequest
	}

	if settlement != nil {
		if settlement.ID == "" {
			settlement.ID = uuid.New().String()
		}
		if settlement.CreatedAt == 0 {
			settlement.CreatedAt = time.Now().Unix()
		}
		stored := *settlement
		s.settlements = append(s.settlements, &stored)
	}

	req.Status = status
	req.ResolvedAt = resolvedAt
	delete(s.pending, pairKey{req.GroupID, req.FromMemberID, req.ToMemberID})
	return nil
}

// newestFirst orders records by timestamp descending. Records are appended in
// insertion order, so reversing first and sorting stably breaks timestamp ties
// by most recent insert.
func newestFirst[T any](records []T, createdAt func(T) int64) {
	slices.Reverse(records)
	slices.SortStableFunc(records, func(a, b T) int {
		return cmp.Compare(createdAt(b), createdAt(a))
	})
}

func sortedUnique(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
