// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settleup/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicatePending is returned when a pending settlement request already
	// exists for the same (group, from, to) pair.
	ErrDuplicatePending = errors.New("pending settlement request already exists for this pair")

	// ErrStaleRequest is returned when a settlement request is no longer pending
	// at the moment a resolution is written.
	ErrStaleRequest = errors.New("settlement request is no longer pending")
)

// GroupStore persists groups and their member lists.
type GroupStore interface {
	// CreateGroup persists a new group. ID and CreatedAt are assigned when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members.
	// Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// AddGroupMembers adds members to a group, ignoring ones already present.
	AddGroupMembers(ctx context.Context, groupID string, members []string) error

	// ListGroupsByMember returns the groups memberID belongs to, oldest first.
	ListGroupsByMember(ctx context.Context, memberID string) ([]*models.Group, error)
}

// ExpenseStore persists the append-only expense log.
type ExpenseStore interface {
	// CreateExpense persists a new expense. ID and CreatedAt are assigned when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByGroup returns a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)
}

// SettlementStore reads the append-only settlement log.
// Settlements are only ever written by RequestStore.ResolveSettlementRequest.
type SettlementStore interface {
	// GetSettlement retrieves a settlement by ID.
	// Returns ErrNotFound if the settlement does not exist.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByGroup returns a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)
}

// RequestFilter narrows ListSettlementRequests. Zero values match everything.
type RequestFilter struct {
	// Status keeps only requests in this status.
	Status models.RequestStatus

	// MemberID keeps only requests sent or received by this member.
	MemberID string

	// ToID keeps only requests addressed to this member.
	ToID string
}

// Matches reports whether r passes the filter.
func (f RequestFilter) Matches(r *models.SettlementRequest) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.MemberID != "" && r.FromMemberID != f.MemberID && r.ToMemberID != f.MemberID {
		return false
	}
	if f.ToID != "" && r.ToMemberID != f.ToID {
		return false
	}
	return true
}

// RequestStore persists settlement requests and their resolution.
type RequestStore interface {
	// CreateSettlementRequest persists a new pending request. ID and CreatedAt are
	// assigned when empty. Implementations must refuse a second pending request for
	// the same (group, from, to) with ErrDuplicatePending, atomically with the insert.
	CreateSettlementRequest(ctx context.Context, req *models.SettlementRequest) error

	// GetSettlementRequest retrieves a request by ID.
	// Returns ErrNotFound if the request does not exist.
	GetSettlementRequest(ctx context.Context, requestID string) (*models.SettlementRequest, error)

	// ListSettlementRequests returns a group's requests matching filter, newest first.
	ListSettlementRequests(ctx context.Context, groupID string, filter RequestFilter) ([]*models.SettlementRequest, error)

	// ResolveSettlementRequest moves a request from pending to status, stamping
	// resolvedAt. When settlement is non-nil it is inserted in the same atomic step.
	// Returns ErrStaleRequest if the request was not pending, in which case nothing
	// is written.
	ResolveSettlementRequest(ctx context.Context, requestID string, status models.RequestStatus, resolvedAt int64, settlement *models.Settlement) error
}

// Store is the full storage surface used by the service layer.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, memory)
// without changing the service layer.
type Store interface {
	GroupStore
	ExpenseStore
	SettlementStore
	RequestStore

	// Close releases any resources held by the store.
	Close() error
}
