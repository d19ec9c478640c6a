package models

import "github.com/mmynk/settleup/pkg/money"

// RequestStatus is the lifecycle state of a SettlementRequest.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestConfirmed RequestStatus = "confirmed"
	RequestRejected  RequestStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestConfirmed, RequestRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestConfirmed || s == RequestRejected
}

// SettlementRequest is a payment the sender claims to have made, waiting for
// the recipient to confirm or reject it.
type SettlementRequest struct {
	// ID is the unique identifier for the request (UUID format).
	ID string

	// GroupID is the group this request belongs to.
	GroupID string

	// FromMemberID is the member who says they paid.
	FromMemberID string

	// ToMemberID is the member who must confirm or reject.
	ToMemberID string

	// Amount is the claimed payment in minor units.
	Amount money.Amount

	// Status is pending until the recipient resolves the request.
	Status RequestStatus

	// ProofRef is an opaque reference to proof of payment (e.g. an upload URL).
	// It is stored and returned, never interpreted.
	ProofRef string

	// CreatedAt is the Unix timestamp when the request was created.
	CreatedAt int64

	// ResolvedAt is the Unix timestamp of confirmation or rejection, 0 while pending.
	ResolvedAt int64
}
