package models

import "github.com/mmynk/settleup/pkg/money"

// Settlement represents a confirmed payment between group members to clear debts.
// Settlements are never updated or deleted once written.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string

	// Amount is the payment amount in minor units.
	Amount money.Amount

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// ConfirmedBy is the member who confirmed receipt.
	ConfirmedBy string

	// RequestID is the settlement request this settlement resolved, if any.
	RequestID string

	// Note is an optional description for the settlement.
	Note string
}
