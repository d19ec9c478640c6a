// Package requests implements the settlement request lifecycle.
//
// A request starts pending and is resolved exactly once by its recipient:
//
//	pending ──confirm──▶ confirmed   (appends one Settlement)
//	        └─reject───▶ rejected
//
// The transition functions in this file are pure and operate on values.
// Manager applies them durably over a storage.RequestStore.
package requests

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/money"
)

var (
	// ErrInvalidTransition is returned when a request cannot move to the asked state,
	// either because it is no longer pending or because the actor may not resolve it.
	ErrInvalidTransition = errors.New("invalid settlement request transition")

	// ErrNotRecipient is returned when someone other than the recipient tries to
	// resolve a request. It matches ErrInvalidTransition under errors.Is.
	ErrNotRecipient = fmt.Errorf("%w: only the recipient can resolve a request", ErrInvalidTransition)

	// ErrDuplicateRequest is returned when a pending request already exists for the
	// same (group, from, to) pair.
	ErrDuplicateRequest = errors.New("a pending settlement request already exists between these members")

	// ErrInvalidRequest is returned when creation parameters are malformed.
	ErrInvalidRequest = errors.New("invalid settlement request")

	// ErrStoreUnavailable is returned when storage did not answer in time.
	// Callers may retry.
	ErrStoreUnavailable = errors.New("settlement request store unavailable")
)

// CreateParams describes a proposed payment.
type CreateParams struct {
	GroupID  string
	From     string
	To       string
	Amount   money.Amount
	ProofRef string
}

// Open validates p and returns a new pending request stamped with now.
// The ID is left empty for storage to assign.
func Open(p CreateParams, now time.Time) (models.SettlementRequest, error) {
	switch {
	case p.GroupID == "":
		return models.SettlementRequest{}, fmt.Errorf("%w: group id is required", ErrInvalidRequest)
	case p.From == "" || p.To == "":
		return models.SettlementRequest{}, fmt.Errorf("%w: from and to are required", ErrInvalidRequest)
	case p.From == p.To:
		return models.SettlementRequest{}, fmt.Errorf("%w: cannot pay yourself", ErrInvalidRequest)
	case p.Amount <= 0:
		return models.SettlementRequest{}, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	return models.SettlementRequest{
		GroupID:      p.GroupID,
		FromMemberID: p.From,
		ToMemberID:   p.To,
		Amount:       p.Amount,
		Status:       models.RequestPending,
		ProofRef:     p.ProofRef,
		CreatedAt:    now.Unix(),
	}, nil
}

// Confirm resolves req as confirmed by actor and returns the updated request
// together with the Settlement it produces.
func Confirm(req models.SettlementRequest, actor string, now time.Time) (models.SettlementRequest, models.Settlement, error) {
	if err := checkResolvable(req, actor); err != nil {
		return req, models.Settlement{}, err
	}

	req.Status = models.RequestConfirmed
	req.ResolvedAt = now.Unix()

	settlement := models.Settlement{
		GroupID:      req.GroupID,
		FromMemberID: req.FromMemberID,
		ToMemberID:   req.ToMemberID,
		Amount:       req.Amount,
		CreatedAt:    req.ResolvedAt,
		ConfirmedBy:  actor,
		RequestID:    req.ID,
	}
	return req, settlement, nil
}

// Reject resolves req as rejected by actor. No Settlement is produced and the
// pair is free for a new request afterwards.
func Reject(req models.SettlementRequest, actor string, now time.Time) (models.SettlementRequest, error) {
	if err := checkResolvable(req, actor); err != nil {
		return req, err
	}

	req.Status = models.RequestRejected
	req.ResolvedAt = now.Unix()
	return req, nil
}

func checkResolvable(req models.SettlementRequest, actor string) error {
	if req.Status != models.RequestPending {
		return fmt.Errorf("%w: request %s is %s", ErrInvalidTransition, req.ID, req.Status)
	}
	if actor != req.ToMemberID {
		return fmt.Errorf("%w: %q is not the recipient of request %s", ErrNotRecipient, actor, req.ID)
	}
	return nil
}

// HasPending reports whether reqs contains a pending request from → to in group.
func HasPending(reqs []*models.SettlementRequest, groupID, from, to string) bool {
	for _, r := range reqs {
		if r.GroupID == groupID && r.FromMemberID == from && r.ToMemberID == to && r.Status == models.RequestPending {
			return true
		}
	}
	return false
}
