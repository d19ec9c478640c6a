package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/money"
)

// CreateExpense persists a new expense with its participants.
func (s *PostgresStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO expenses (id, group_id, payer_id, amount, description, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			expense.ID, expense.GroupID, expense.PayerID, int64(expense.Amount), expense.Description, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		for _, participant := range expense.Participants {
			_, err = tx.Exec(ctx,
				"INSERT INTO expense_participants (expense_id, member_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				expense.ID, participant,
			)
			if err != nil {
				return fmt.Errorf("failed to insert participant: %w", err)
			}
		}
		return nil
	})
}

// ListExpensesByGroup retrieves all expenses for a group with their participants, newest first.
func (s *PostgresStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT e.id, e.group_id, e.payer_id, e.amount, e.description, e.created_at,
		        COALESCE(array_agg(ep.member_id ORDER BY ep.member_id) FILTER (WHERE ep.member_id IS NOT NULL), '{}')
		 FROM expenses e LEFT JOIN expense_participants ep ON ep.expense_id = e.id
		 WHERE e.group_id = $1
		 GROUP BY e.seq, e.id
		 ORDER BY e.created_at DESC, e.seq DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Expense, error) {
		expense := &models.Expense{}
		var amount int64
		err := row.Scan(&expense.ID, &expense.GroupID, &expense.PayerID, &amount,
			&expense.Description, &expense.CreatedAt, &expense.Participants)
		expense.Amount = money.Amount(amount)
		return expense, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return expenses, nil
}
