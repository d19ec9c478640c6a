// Package service implements the settleup.v1.LedgerService Connect handlers.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/requests"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
	"github.com/mmynk/settleup/pkg/money"
)

var _ protoconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	store    storage.Store
	requests *requests.Manager
	metrics  *metrics.Metrics
	timeout  time.Duration
	now      func() time.Time
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithMetrics records plan sizes, skipped records and request transitions in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithStoreTimeout bounds each storage call. Zero disables the bound.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *LedgerService) { s.timeout = d }
}

// WithClock overrides time.Now for request resolution timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:   store,
		timeout: requests.DefaultStoreTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	managerOpts := []requests.Option{
		requests.WithClock(s.now),
		requests.WithStoreTimeout(s.timeout),
	}
	if s.metrics != nil {
		managerOpts = append(managerOpts, requests.WithObserver(s.metrics))
	}
	s.requests = requests.NewManager(store, managerOpts...)
	return s
}

func (s *LedgerService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// CreateGroup creates a new group.
func (s *LedgerService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"currency", req.Msg.Currency,
		"members_count", len(req.Msg.Members),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if _, err := money.Exponent(currency); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	group := &models.Group{
		Name:     name,
		Currency: currency,
		Members:  cleanIDs(req.Msg.Members),
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{Group: groupToProto(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *LedgerService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&pb.GetGroupResponse{Group: groupToProto(group)}), nil
}

// ListGroups returns the groups a member belongs to, oldest first.
func (s *LedgerService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	memberID := strings.TrimSpace(req.Msg.MemberId)
	slog.Info("ListGroups request received", "member_id", memberID)

	if memberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	groups, err := s.store.ListGroupsByMember(ctx, memberID)
	if err != nil {
		slog.Error("ListGroups failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = groupToProto(g)
	}

	slog.Info("ListGroups successful", "member_id", memberID, "count", len(out))

	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// AddMembers adds members to a group. Existing members are left as they are.
func (s *LedgerService) AddMembers(ctx context.Context, req *connect.Request[pb.AddMembersRequest]) (*connect.Response[pb.AddMembersResponse], error) {
	slog.Info("AddMembers request received", "group_id", req.Msg.GroupId, "members_count", len(req.Msg.Members))

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}
	members := cleanIDs(req.Msg.Members)
	if len(members) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("at least one member required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.store.AddGroupMembers(ctx, req.Msg.GroupId, members); err != nil {
		slog.Error("AddMembers failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("Failed to fetch updated group", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Members added", "group_id", group.ID, "members_count", len(group.Members))

	return connect.NewResponse(&pb.AddMembersResponse{Group: groupToProto(group)}), nil
}

// AddExpense records an expense paid by one member and shared equally by the participants.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[pb.AddExpenseRequest]) (*connect.Response[pb.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"group_id", req.Msg.GroupId,
		"payer_id", req.Msg.PayerId,
		"amount", req.Msg.Amount,
		"participants_count", len(req.Msg.ParticipantIds),
	)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("AddExpense failed - group not found", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	exp, err := money.Exponent(group.Currency)
	if err != nil {
		return nil, toConnectError(err)
	}
	amount, err := money.Parse(req.Msg.Amount, exp)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		GroupID:      group.ID,
		PayerID:      strings.TrimSpace(req.Msg.PayerId),
		Amount:       amount,
		Participants: cleanIDs(req.Msg.ParticipantIds),
		Description:  strings.TrimSpace(req.Msg.Description),
	}

	// Reject here anything the aggregator would later skip. ValidateExpense skips
	// the membership check for an empty member list, so check that first.
	if err := requireMembers(group, append([]string{expense.PayerID}, expense.Participants...)...); err != nil {
		slog.Warn("AddExpense rejected", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := calculator.ValidateExpense(*expense, group.Members); err != nil {
		slog.Warn("AddExpense rejected", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense added", "group_id", group.ID, "expense_id", expense.ID, "amount_minor", int64(expense.Amount))

	return connect.NewResponse(&pb.AddExpenseResponse{Expense: expenseToProto(expense, exp)}), nil
}

// ListExpenses returns a group's expenses, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "group_id", req.Msg.GroupId)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	exp, err := money.Exponent(group.Currency)
	if err != nil {
		return nil, toConnectError(err)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToProto(e, exp)
	}

	slog.Info("ListExpenses successful", "group_id", group.ID, "count", len(out))

	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// requireMembers returns calculator.ErrUnknownMember for the first non-empty id
// that is not in group. Empty ids are left for the calculator to report.
func requireMembers(group *models.Group, ids ...string) error {
	for _, id := range ids {
		if id != "" && !group.HasMember(id) {
			return fmt.Errorf("%w: %q", calculator.ErrUnknownMember, id)
		}
	}
	return nil
}

// cleanIDs trims member IDs and drops empties and duplicates, keeping first-seen order.
func cleanIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ActingProcedures are the procedures that require the Settleup-Member header.
var ActingProcedures = []string{
	protoconnect.LedgerServiceCreateSettlementRequestProcedure,
	protoconnect.LedgerServiceConfirmSettlementRequestProcedure,
	protoconnect.LedgerServiceRejectSettlementRequestProcedure,
}
