package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/money"
)

// CreateExpense persists a new expense with its participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, payer_id, amount, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PayerID, int64(expense.Amount), expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, participant := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_participants (expense_id, member_id) VALUES (?, ?)",
			expense.ID, participant,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpensesByGroup retrieves all expenses for a group with their participants, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, payer_id, amount, description, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		var amount int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PayerID, &amount,
			&expense.Description, &expense.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.Amount(amount)
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	// Participants are loaded in a second query once the first cursor is closed;
	// the store runs on a single connection.
	partRows, err := s.db.QueryContext(ctx,
		`SELECT ep.expense_id, ep.member_id
		 FROM expense_participants ep JOIN expenses e ON e.id = ep.expense_id
		 WHERE e.group_id = ? ORDER BY ep.member_id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer partRows.Close()

	for partRows.Next() {
		var expenseID, member string
		if err := partRows.Scan(&expenseID, &member); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.Participants = append(expense.Participants, member)
		}
	}
	if err := partRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return expenses, nil
}
