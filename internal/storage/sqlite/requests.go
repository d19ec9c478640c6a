package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/pkg/money"
)

const requestColumns = `id, group_id, from_member_id, to_member_id, amount, status, proof_ref, created_at, resolved_at`

func scanRequest(row rowScanner) (*models.SettlementRequest, error) {
	req := &models.SettlementRequest{}
	var amount int64
	var status string
	var proofRef sql.NullString

	if err := row.Scan(&req.ID, &req.GroupID, &req.FromMemberID, &req.ToMemberID,
		&amount, &status, &proofRef, &req.CreatedAt, &req.ResolvedAt); err != nil {
		return nil, err
	}

	req.Amount = money.Amount(amount)
	req.Status = models.RequestStatus(status)
	req.ProofRef = proofRef.String
	return req, nil
}

// CreateSettlementRequest persists a new pending request.
// The partial unique index rejects a second pending request for the same pair
// even when two creates race past the existence check.
func (s *SQLiteStore) CreateSettlementRequest(ctx context.Context, req *models.SettlementRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().Unix()
	}
	req.Status = models.RequestPending
	req.ResolvedAt = 0

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM settlement_requests
		 WHERE group_id = ? AND from_member_id = ? AND to_member_id = ? AND status = 'pending'`,
		req.GroupID, req.FromMemberID, req.ToMemberID,
	).Scan(&exists)
	if err == nil {
		return storage.ErrDuplicatePending
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check pending requests: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settlement_requests (`+requestColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.GroupID, req.FromMemberID, req.ToMemberID, int64(req.Amount),
		string(req.Status), nullable(req.ProofRef), req.CreatedAt, req.ResolvedAt,
	)
	if isUniqueViolation(err) {
		return storage.ErrDuplicatePending
	}
	if err != nil {
		return fmt.Errorf("failed to insert settlement request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSettlementRequest retrieves a request by ID.
func (s *SQLiteStore) GetSettlementRequest(ctx context.Context, requestID string) (*models.SettlementRequest, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM settlement_requests WHERE id = ?`,
		requestID,
	)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement request: %w", err)
	}
	return req, nil
}

// ListSettlementRequests retrieves a group's requests matching filter, newest first.
func (s *SQLiteStore) ListSettlementRequests(ctx context.Context, groupID string, filter storage.RequestFilter) ([]*models.SettlementRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM settlement_requests WHERE group_id = ?`
	args := []any{groupID}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.MemberID != "" {
		query += ` AND (from_member_id = ? OR to_member_id = ?)`
		args = append(args, filter.MemberID, filter.MemberID)
	}
	if filter.ToID != "" {
		query += ` AND to_member_id = ?`
		args = append(args, filter.ToID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.SettlementRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement requests: %w", err)
	}

	return requests, nil
}

// ResolveSettlementRequest moves a pending request to status and, when given,
// records the settlement in the same transaction. The UPDATE only matches a
// pending row, so of two concurrent resolutions exactly one wins.
func (s *SQLiteStore) ResolveSettlementRequest(ctx context.Context, requestID string, status models.RequestStatus, resolvedAt int64, settlement *models.Settlement) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE settlement_requests SET status = ?, resolved_at = ?
		 WHERE id = ? AND status = 'pending'`,
		string(status), resolvedAt, requestID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM settlement_requests WHERE id = ?", requestID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
		}
		if err != nil {
			return fmt.Errorf("failed to check settlement request existence: %w", err)
		}
		return storage.ErrStaleRequest
	}

	if settlement != nil {
		if err := insertSettlement(ctx, tx, settlement); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
