package requests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// DefaultStoreTimeout bounds every storage call made by a Manager.
const DefaultStoreTimeout = 5 * time.Second

// Transition names reported to an Observer.
const (
	TransitionCreate  = "create"
	TransitionConfirm = "confirm"
	TransitionReject  = "reject"
)

// Observer is notified after every attempted transition with its outcome:
// "ok" or a short error class.
type Observer interface {
	ObserveTransition(transition, outcome string)
}

// Manager applies request transitions durably. Concurrent Confirm/Reject calls
// on the same request are serialized by the store's compare-and-swap on status.
type Manager struct {
	store    storage.RequestStore
	now      func() time.Time
	timeout  time.Duration
	observer Observer
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStoreTimeout sets the per-call storage deadline. Zero disables it.
func WithStoreTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithObserver registers o to receive transition outcomes.
func WithObserver(o Observer) Option {
	return func(m *Manager) { m.observer = o }
}

// NewManager returns a Manager over store.
func NewManager(store storage.RequestStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		now:     time.Now,
		timeout: DefaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create opens a new pending request. It fails with ErrDuplicateRequest when the
// pair already has a pending request; the store enforces this atomically, the
// lookup here only produces the error earlier.
func (m *Manager) Create(ctx context.Context, p CreateParams) (req *models.SettlementRequest, err error) {
	defer func() { m.observe(TransitionCreate, err) }()

	opened, err := Open(p, m.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := m.storeContext(ctx)
	defer cancel()

	pending, err := m.store.ListSettlementRequests(ctx, p.GroupID,
		storage.RequestFilter{Status: models.RequestPending, MemberID: p.From})
	if err != nil {
		return nil, m.storeError("list pending requests", err)
	}
	if HasPending(pending, p.GroupID, p.From, p.To) {
		return nil, ErrDuplicateRequest
	}

	if err := m.store.CreateSettlementRequest(ctx, &opened); err != nil {
		if errors.Is(err, storage.ErrDuplicatePending) {
			return nil, ErrDuplicateRequest
		}
		return nil, m.storeError("create request", err)
	}
	return &opened, nil
}

// Confirm resolves request id as confirmed by actor and records the resulting
// Settlement in the same storage step. A second Confirm, or a Confirm that loses
// a race with Reject, fails with ErrInvalidTransition and writes nothing.
func (m *Manager) Confirm(ctx context.Context, id, actor string) (req *models.SettlementRequest, settlement *models.Settlement, err error) {
	defer func() { m.observe(TransitionConfirm, err) }()

	ctx, cancel := m.storeContext(ctx)
	defer cancel()

	current, err := m.store.GetSettlementRequest(ctx, id)
	if err != nil {
		return nil, nil, m.storeError("get request", err)
	}

	updated, st, err := Confirm(*current, actor, m.now())
	if err != nil {
		return nil, nil, err
	}

	if err := m.store.ResolveSettlementRequest(ctx, id, updated.Status, updated.ResolvedAt, &st); err != nil {
		return nil, nil, m.storeError("confirm request", err)
	}
	return &updated, &st, nil
}

// Reject resolves request id as rejected by actor.
func (m *Manager) Reject(ctx context.Context, id, actor string) (req *models.SettlementRequest, err error) {
	defer func() { m.observe(TransitionReject, err) }()

	ctx, cancel := m.storeContext(ctx)
	defer cancel()

	current, err := m.store.GetSettlementRequest(ctx, id)
	if err != nil {
		return nil, m.storeError("get request", err)
	}

	updated, err := Reject(*current, actor, m.now())
	if err != nil {
		return nil, err
	}

	if err := m.store.ResolveSettlementRequest(ctx, id, updated.Status, updated.ResolvedAt, nil); err != nil {
		return nil, m.storeError("reject request", err)
	}
	return &updated, nil
}

func (m *Manager) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

// storeError translates storage failures into this package's errors.
// storage.ErrNotFound passes through wrapped.
func (m *Manager) storeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrStaleRequest):
		return fmt.Errorf("%w: request is no longer pending", ErrInvalidTransition)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (m *Manager) observe(transition string, err error) {
	if m.observer == nil {
		return
	}
	m.observer.ObserveTransition(transition, Outcome(err))
}

// Outcome classifies err for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDuplicateRequest):
		return "duplicate"
	case errors.Is(err, ErrNotRecipient):
		return "not_recipient"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, storage.ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
