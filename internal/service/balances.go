package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/requests"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/money"
)

// ledger is a read snapshot of one group.
type ledger struct {
	group       *models.Group
	exp         int
	expenses    []models.Expense
	settlements []models.Settlement
}

func (s *LedgerService) loadLedger(ctx context.Context, groupID string) (*ledger, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	exp, err := money.Exponent(group.Currency)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return &ledger{
		group:       group,
		exp:         exp,
		expenses:    derefAll(expenses),
		settlements: derefAll(settlements),
	}, nil
}

// reportSkipped logs and counts records the aggregator left out.
func (s *LedgerService) reportSkipped(groupID string, invalid []calculator.InvalidRecord) {
	counts := make(map[calculator.RecordKind]int)
	for _, rec := range invalid {
		slog.Warn("Skipping invalid record", "group_id", groupID, "kind", rec.Kind, "id", rec.ID, "error", rec.Err)
		counts[rec.Kind]++
	}
	for kind, n := range counts {
		s.metrics.ObserveSkipped(string(kind), n)
	}
}

// GetBalances returns every member's net balance and how it was derived.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("GetBalances request received", "group_id", groupID)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	l, err := s.loadLedger(ctx, groupID)
	if err != nil {
		slog.Error("GetBalances failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	summaries, invalid := calculator.Summarize(l.expenses, l.settlements, l.group.Members)
	s.reportSkipped(groupID, invalid)

	balances := make([]*pb.MemberBalance, len(summaries))
	for i, sum := range summaries {
		balances[i] = summaryToProto(sum, l.exp)
	}

	slog.Info("GetBalances successful", "group_id", groupID, "members", len(balances), "skipped", len(invalid))

	return connect.NewResponse(&pb.GetBalancesResponse{
		Currency: l.group.Currency,
		Balances: balances,
		Skipped:  int32(len(invalid)),
	}), nil
}

// GetSettlementPlan returns the suggested payments that would settle the group.
// Entries whose pair already has a pending request are flagged.
func (s *LedgerService) GetSettlementPlan(ctx context.Context, req *connect.Request[pb.GetSettlementPlanRequest]) (*connect.Response[pb.GetSettlementPlanResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("GetSettlementPlan request received", "group_id", groupID, "member_id", req.Msg.MemberId)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	l, err := s.loadLedger(ctx, groupID)
	if err != nil {
		slog.Error("GetSettlementPlan failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	balances, invalid := calculator.Aggregate(l.expenses, l.settlements, l.group.Members)
	s.reportSkipped(groupID, invalid)

	plan, err := calculator.Minimize(balances)
	if err != nil {
		// Aggregate conserves by construction, so this means a bug or corrupt data.
		slog.Error("GetSettlementPlan failed - ledger unbalanced", "group_id", groupID, "sum", int64(balances.Sum()), "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ObservePlan(len(plan))

	pending, err := s.store.ListSettlementRequests(ctx, groupID, storage.RequestFilter{Status: models.RequestPending})
	if err != nil {
		slog.Error("GetSettlementPlan failed - could not list pending requests", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	entries := make([]*pb.PlanEntry, 0, len(plan))
	for _, t := range plan {
		if req.Msg.MemberId != "" && !t.Involves(req.Msg.MemberId) {
			continue
		}
		entries = append(entries, &pb.PlanEntry{
			FromId:      t.From,
			ToId:        t.To,
			Amount:      t.Amount.Format(l.exp),
			AmountMinor: int64(t.Amount),
			Pending:     requests.HasPending(pending, groupID, t.From, t.To),
		})
	}

	slog.Info("GetSettlementPlan successful", "group_id", groupID, "transactions", len(plan), "returned", len(entries))

	return connect.NewResponse(&pb.GetSettlementPlanResponse{
		Currency:     l.group.Currency,
		Transactions: entries,
	}), nil
}

func derefAll[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}
