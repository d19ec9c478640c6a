// Package models defines the core domain records for settleup.
//
// # Records
//
//   - Group: members sharing expenses in one currency
//   - Expense: a payment by one member on behalf of a set of participants
//   - Settlement: an immutable, confirmed transfer between two members
//   - SettlementRequest: a proposed transfer awaiting the recipient's decision
//
// Members are identified by opaque string IDs supplied by the host application.
// All amounts are money.Amount values in the group currency's minor unit.
//
// # Lifecycles
//
// Expenses and Settlements are append-only facts. A SettlementRequest starts
// pending and moves exactly once to confirmed or rejected; confirming it is the
// only way a Settlement gets created.
package models
