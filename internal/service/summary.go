package service

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/money"
)

type currencyTotal struct {
	exp   int
	owed  money.Amount
	owing money.Amount
}

// GetMemberSummary reports a member's net position in each of their groups.
// Positions in different currencies are never netted against each other.
func (s *LedgerService) GetMemberSummary(ctx context.Context, req *connect.Request[pb.GetMemberSummaryRequest]) (*connect.Response[pb.GetMemberSummaryResponse], error) {
	memberID := strings.TrimSpace(req.Msg.MemberId)
	slog.Info("GetMemberSummary request received", "member_id", memberID)

	if memberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	groups, err := s.store.ListGroupsByMember(ctx, memberID)
	if err != nil {
		slog.Error("GetMemberSummary failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.GetMemberSummaryResponse{MemberId: memberID}
	totals := make(map[string]*currencyTotal)

	for _, g := range groups {
		l, err := s.loadLedger(ctx, g.ID)
		if err != nil {
			slog.Error("GetMemberSummary failed", "member_id", memberID, "group_id", g.ID, "error", err)
			return nil, toConnectError(err)
		}

		balances, invalid := calculator.Aggregate(l.expenses, l.settlements, l.group.Members)
		s.reportSkipped(g.ID, invalid)
		resp.Skipped += int32(len(invalid))

		net := balances[memberID]
		resp.Groups = append(resp.Groups, &pb.GroupPosition{
			GroupId:  l.group.ID,
			Name:     l.group.Name,
			Currency: l.group.Currency,
			Net:      net.Format(l.exp),
			NetMinor: int64(net),
		})

		t, ok := totals[l.group.Currency]
		if !ok {
			t = &currencyTotal{exp: l.exp}
			totals[l.group.Currency] = t
		}
		switch {
		case net > 0:
			t.owed += net
		case net < 0:
			t.owing -= net
		}

		pending, err := s.store.ListSettlementRequests(ctx, g.ID, storage.RequestFilter{
			Status: models.RequestPending,
			ToID:   memberID,
		})
		if err != nil {
			slog.Error("GetMemberSummary failed - could not list pending requests", "member_id", memberID, "group_id", g.ID, "error", err)
			return nil, toConnectError(err)
		}
		resp.PendingIncoming += int32(len(pending))
	}

	for _, currency := range slices.Sorted(maps.Keys(totals)) {
		t := totals[currency]
		resp.Totals = append(resp.Totals, &pb.CurrencyTotal{
			Currency:   currency,
			Owed:       t.owed.Format(t.exp),
			OwedMinor:  int64(t.owed),
			Owing:      t.owing.Format(t.exp),
			OwingMinor: int64(t.owing),
		})
	}

	slog.Info("GetMemberSummary successful",
		"member_id", memberID,
		"groups", len(resp.Groups),
		"pending_incoming", resp.PendingIncoming,
		"skipped", resp.Skipped,
	)

	return connect.NewResponse(resp), nil
}
