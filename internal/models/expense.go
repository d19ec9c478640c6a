package models

import "github.com/mmynk/settleup/pkg/money"

// Expense records that one member paid for something shared by Participants.
// The amount is split equally among the participants; the payer need not be one of them.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PayerID is the member who paid.
	PayerID string

	// Amount is the total paid, in minor units. Must be positive.
	Amount money.Amount

	// Participants are the member IDs sharing the cost. Must be non-empty.
	Participants []string

	// Description is an optional label ("Hotel", "Dinner").
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
