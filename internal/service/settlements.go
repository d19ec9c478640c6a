package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/requests"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/money"
)

// actingMember returns the member the call is made on behalf of.
func actingMember(ctx context.Context) (string, error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, middleware.ErrMissingMember)
	}
	return memberID, nil
}

// ListSettlements returns a group's confirmed settlements, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[pb.ListSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	slog.Info("ListSettlements request received", "group_id", req.Msg.GroupId)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	exp, err := s.groupExponent(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}

	settlements, err := s.store.ListSettlementsByGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListSettlements failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = settlementToProto(st, exp)
	}

	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}

// CreateSettlementRequest records that the acting member says they paid ToID.
func (s *LedgerService) CreateSettlementRequest(ctx context.Context, req *connect.Request[pb.CreateSettlementRequestRequest]) (*connect.Response[pb.CreateSettlementRequestResponse], error) {
	from, err := actingMember(ctx)
	if err != nil {
		return nil, err
	}
	to := strings.TrimSpace(req.Msg.ToId)

	slog.Info("CreateSettlementRequest request received",
		"group_id", req.Msg.GroupId,
		"from", from,
		"to", to,
		"amount", req.Msg.Amount,
	)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("CreateSettlementRequest failed - group not found", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	if err := requireMembers(group, from, to); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	exp, err := money.Exponent(group.Currency)
	if err != nil {
		return nil, toConnectError(err)
	}
	amount, err := money.Parse(req.Msg.Amount, exp)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	created, err := s.requests.Create(ctx, requests.CreateParams{
		GroupID:  group.ID,
		From:     from,
		To:       to,
		Amount:   amount,
		ProofRef: req.Msg.ProofRef,
	})
	if err != nil {
		slog.Warn("CreateSettlementRequest failed", "group_id", group.ID, "from", from, "to", to, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement request created", "request_id", created.ID, "group_id", group.ID)

	return connect.NewResponse(&pb.CreateSettlementRequestResponse{Request: requestToProto(created, exp)}), nil
}

// ConfirmSettlementRequest confirms a pending request addressed to the acting
// member and returns the Settlement it created.
func (s *LedgerService) ConfirmSettlementRequest(ctx context.Context, req *connect.Request[pb.ConfirmSettlementRequestRequest]) (*connect.Response[pb.ConfirmSettlementRequestResponse], error) {
	actor, err := actingMember(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ConfirmSettlementRequest request received", "request_id", req.Msg.RequestId, "member_id", actor)

	if req.Msg.RequestId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("request_id required"))
	}

	// Resolve the currency first so a failed read cannot hide a committed confirmation.
	exp, err := s.requestExponent(ctx, req.Msg.RequestId)
	if err != nil {
		slog.Warn("ConfirmSettlementRequest failed", "request_id", req.Msg.RequestId, "member_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	confirmed, settlement, err := s.requests.Confirm(ctx, req.Msg.RequestId, actor)
	if err != nil {
		slog.Warn("ConfirmSettlementRequest failed", "request_id", req.Msg.RequestId, "member_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement request confirmed", "request_id", confirmed.ID, "settlement_id", settlement.ID)

	return connect.NewResponse(&pb.ConfirmSettlementRequestResponse{
		Request:    requestToProto(confirmed, exp),
		Settlement: settlementToProto(settlement, exp),
	}), nil
}

// RejectSettlementRequest rejects a pending request addressed to the acting member.
func (s *LedgerService) RejectSettlementRequest(ctx context.Context, req *connect.Request[pb.RejectSettlementRequestRequest]) (*connect.Response[pb.RejectSettlementRequestResponse], error) {
	actor, err := actingMember(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RejectSettlementRequest request received", "request_id", req.Msg.RequestId, "member_id", actor)

	if req.Msg.RequestId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("request_id required"))
	}

	exp, err := s.requestExponent(ctx, req.Msg.RequestId)
	if err != nil {
		slog.Warn("RejectSettlementRequest failed", "request_id", req.Msg.RequestId, "member_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	rejected, err := s.requests.Reject(ctx, req.Msg.RequestId, actor)
	if err != nil {
		slog.Warn("RejectSettlementRequest failed", "request_id", req.Msg.RequestId, "member_id", actor, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement request rejected", "request_id", rejected.ID)

	return connect.NewResponse(&pb.RejectSettlementRequestResponse{Request: requestToProto(rejected, exp)}), nil
}

// ListSettlementRequests returns a group's requests, optionally filtered by
// status, by a member on either side and by recipient.
func (s *LedgerService) ListSettlementRequests(ctx context.Context, req *connect.Request[pb.ListSettlementRequestsRequest]) (*connect.Response[pb.ListSettlementRequestsResponse], error) {
	slog.Info("ListSettlementRequests request received",
		"group_id", req.Msg.GroupId,
		"status", req.Msg.Status,
		"member_id", req.Msg.MemberId,
		"to_id", req.Msg.ToId,
	)

	if req.Msg.GroupId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}
	status := models.RequestStatus(strings.ToLower(req.Msg.Status))
	if status != "" && !status.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", req.Msg.Status))
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	exp, err := s.groupExponent(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}

	reqs, err := s.store.ListSettlementRequests(ctx, req.Msg.GroupId, storage.RequestFilter{
		Status:   status,
		MemberID: req.Msg.MemberId,
		ToID:     req.Msg.ToId,
	})
	if err != nil {
		slog.Error("ListSettlementRequests failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.SettlementRequest, len(reqs))
	for i, r := range reqs {
		out[i] = requestToProto(r, exp)
	}

	return connect.NewResponse(&pb.ListSettlementRequestsResponse{Requests: out}), nil
}

func (s *LedgerService) groupExponent(ctx context.Context, groupID string) (int, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return money.Exponent(group.Currency)
}

// requestExponent returns the exponent of the currency of the group a request belongs to.
func (s *LedgerService) requestExponent(ctx context.Context, requestID string) (int, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	r, err := s.store.GetSettlementRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}
	return s.groupExponent(ctx, r.GroupID)
}
