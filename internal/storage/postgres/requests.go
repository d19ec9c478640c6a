package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/pkg/money"
)

const (
	requestColumns    = `id, group_id, from_member_id, to_member_id, amount, status, proof_ref, created_at, resolved_at`
	settlementColumns = `id, group_id, from_member_id, to_member_id, amount, created_at, confirmed_by, request_id, note`
)

func scanRequest(row pgx.Row) (*models.SettlementRequest, error) {
	req := &models.SettlementRequest{}
	var amount int64
	var status string
	var proofRef *string
	if err := row.Scan(&req.ID, &req.GroupID, &req.FromMemberID, &req.ToMemberID,
		&amount, &status, &proofRef, &req.CreatedAt, &req.ResolvedAt); err != nil {
		return nil, err
	}
	req.Amount = money.Amount(amount)
	req.Status = models.RequestStatus(status)
	if proofRef != nil {
		req.ProofRef = *proofRef
	}
	return req, nil
}

func scanSettlement(row pgx.Row) (*models.Settlement, error) {
	st := &models.Settlement{}
	var amount int64
	var requestID, note *string
	if err := row.Scan(&st.ID, &st.GroupID, &st.FromMemberID, &st.ToMemberID,
		&amount, &st.CreatedAt, &st.ConfirmedBy, &requestID, &note); err != nil {
		return nil, err
	}
	st.Amount = money.Amount(amount)
	if requestID != nil {
		st.RequestID = *requestID
	}
	if note != nil {
		st.Note = *note
	}
	return st, nil
}

// CreateSettlementRequest persists a new pending request. A concurrent insert
// for the same pair loses on idx_settlement_requests_one_pending.
func (s *PostgresStore) CreateSettlementRequest(ctx context.Context, req *models.SettlementRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().Unix()
	}
	req.Status = models.RequestPending
	req.ResolvedAt = 0

	_, err := s.pool.Exec(ctx,
		`INSERT INTO settlement_requests (`+requestColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID, req.GroupID, req.FromMemberID, req.ToMemberID, int64(req.Amount),
		string(req.Status), nullable(req.ProofRef), req.CreatedAt, req.ResolvedAt,
	)
	if isUniqueViolation(err) {
		return storage.ErrDuplicatePending
	}
	if err != nil {
		return fmt.Errorf("failed to insert settlement request: %w", err)
	}
	return nil
}

// GetSettlementRequest retrieves a request by ID.
func (s *PostgresStore) GetSettlementRequest(ctx context.Context, requestID string) (*models.SettlementRequest, error) {
	req, err := scanRequest(s.pool.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM settlement_requests WHERE id = $1`, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement request: %w", err)
	}
	return req, nil
}

// ListSettlementRequests retrieves a group's requests matching filter, newest first.
func (s *PostgresStore) ListSettlementRequests(ctx context.Context, groupID string, filter storage.RequestFilter) ([]*models.SettlementRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM settlement_requests WHERE group_id = $1`
	args := []any{groupID}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.MemberID != "" {
		args = append(args, filter.MemberID)
		n := strconv.Itoa(len(args))
		query += ` AND (from_member_id = $` + n + ` OR to_member_id = $` + n + `)`
	}
	if filter.ToID != "" {
		args = append(args, filter.ToID)
		query += ` AND to_member_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC, seq DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement requests: %w", err)
	}
	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.SettlementRequest, error) {
		return scanRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settlement requests: %w", err)
	}
	return requests, nil
}

// ResolveSettlementRequest moves a pending request to status and records the
// settlement, if any, in the same transaction. Under READ COMMITTED a second
// UPDATE blocks on the row lock and then re-checks status, so exactly one wins.
func (s *PostgresStore) ResolveSettlementRequest(ctx context.Context, requestID string, status models.RequestStatus, resolvedAt int64, settlement *models.Settlement) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE settlement_requests SET status = $1, resolved_at = $2
			 WHERE id = $3 AND status = 'pending'`,
			string(status), resolvedAt, requestID,
		)
		if err != nil {
			return fmt.Errorf("failed to update settlement request: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var exists int
			err := tx.QueryRow(ctx, "SELECT 1 FROM settlement_requests WHERE id = $1", requestID).Scan(&exists)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: settlement request %s", storage.ErrNotFound, requestID)
			}
			if err != nil {
				return fmt.Errorf("failed to check settlement request existence: %w", err)
			}
			return storage.ErrStaleRequest
		}

		if settlement == nil {
			return nil
		}
		if settlement.ID == "" {
			settlement.ID = uuid.New().String()
		}
		if settlement.CreatedAt == 0 {
			settlement.CreatedAt = time.Now().Unix()
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO settlements (`+settlementColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			settlement.ID, settlement.GroupID, settlement.FromMemberID, settlement.ToMemberID,
			int64(settlement.Amount), settlement.CreatedAt, settlement.ConfirmedBy,
			nullable(settlement.RequestID), nullable(settlement.Note),
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}
		return nil
	})
}

// GetSettlement retrieves a settlement by ID.
func (s *PostgresStore) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	st, err := scanSettlement(s.pool.QueryRow(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE id = $1`, settlementID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: settlement %s", storage.ErrNotFound, settlementID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return st, nil
}

// ListSettlementsByGroup retrieves all settlements for a group, newest first.
func (s *PostgresStore) ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE group_id = $1 ORDER BY created_at DESC, seq DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by group: %w", err)
	}
	settlements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Settlement, error) {
		return scanSettlement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settlements: %w", err)
	}
	return settlements, nil
}
