package service

import (
	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	pb "github.com/mmynk/settleup/pkg/proto"
)

func groupToProto(g *models.Group) *pb.Group {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		Members:   members,
		CreatedAt: g.CreatedAt,
	}
}

func expenseToProto(e *models.Expense, exp int) *pb.Expense {
	return &pb.Expense{
		Id:             e.ID,
		GroupId:        e.GroupID,
		PayerId:        e.PayerID,
		Amount:         e.Amount.Format(exp),
		AmountMinor:    int64(e.Amount),
		ParticipantIds: e.Participants,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
	}
}

func settlementToProto(s *models.Settlement, exp int) *pb.Settlement {
	return &pb.Settlement{
		Id:          s.ID,
		GroupId:     s.GroupID,
		FromId:      s.FromMemberID,
		ToId:        s.ToMemberID,
		Amount:      s.Amount.Format(exp),
		AmountMinor: int64(s.Amount),
		ConfirmedBy: s.ConfirmedBy,
		RequestId:   s.RequestID,
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
	}
}

func requestToProto(r *models.SettlementRequest, exp int) *pb.SettlementRequest {
	return &pb.SettlementRequest{
		Id:          r.ID,
		GroupId:     r.GroupID,
		FromId:      r.FromMemberID,
		ToId:        r.ToMemberID,
		Amount:      r.Amount.Format(exp),
		AmountMinor: int64(r.Amount),
		Status:      string(r.Status),
		ProofRef:    r.ProofRef,
		CreatedAt:   r.CreatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}

func summaryToProto(s calculator.MemberSummary, exp int) *pb.MemberBalance {
	return &pb.MemberBalance{
		MemberId:   s.MemberID,
		TotalPaid:  s.TotalPaid.Format(exp),
		TotalShare: s.TotalShare.Format(exp),
		SettledOut: s.SettledOut.Format(exp),
		SettledIn:  s.SettledIn.Format(exp),
		Net:        s.NetBalance.Format(exp),
		NetMinor:   int64(s.NetBalance),
	}
}
