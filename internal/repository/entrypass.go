package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const entryPassColumns = `id, event_id, user_id, user_name, amount_paid_in_inr, promo_code,
	request_id, is_used, used_at, created_at`

type EntryPassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEntryPassRepo(db *dbpg.DB) *EntryPassRepository {
	return &EntryPassRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanEntryPass(row rowScanner) (*domain.EntryPass, error) {
	var (
		p         domain.EntryPass
		requestID sql.NullString
		usedAt    sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.EventID, &p.UserID, &p.UserName, &p.AmountPaidInINR, &p.PromoCode,
		&requestID, &p.IsUsed, &usedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.RequestID = requestID.String
	p.UsedAt = nullTimePtr(usedAt)
	return &p, nil
}

func insertEntryPass(ctx context.Context, db execer, p *domain.EntryPass) error {
	query := `INSERT INTO entry_passes (` + entryPassColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := db.ExecContext(ctx, query,
		p.ID, p.EventID, p.UserID, p.UserName, p.AmountPaidInINR, p.PromoCode,
		nullString(p.RequestID), p.IsUsed, p.UsedAt, p.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert entry pass: %w", err)
	}

	return nil
}

func (r *EntryPassRepository) Create(ctx context.Context, p *domain.EntryPass) error {
	return insertEntryPass(ctx, r.db.Master, p)
}

func (r *EntryPassRepository) GetByID(ctx context.Context, id string) (*domain.EntryPass, error) {
	query := `SELECT ` + entryPassColumns + ` FROM entry_passes WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *EntryPassRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.EntryPass, error) {
	query := `SELECT ` + entryPassColumns + ` FROM entry_passes WHERE event_id = $1 AND user_id = $2`
	return r.getOne(ctx, query, eventID, userID)
}

func (r *EntryPassRepository) getOne(ctx context.Context, query string, args ...any) (*domain.EntryPass, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get entry pass: %w", err)
	}

	p, err := scanEntryPass(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryPassNotFound
		}
		return nil, fmt.Errorf("scan entry pass: %w", err)
	}

	return p, nil
}

func (r *EntryPassRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EntryPass, error) {
	query := `SELECT ` + entryPassColumns + ` FROM entry_passes
			  WHERE event_id = $1
			  ORDER BY created_at`
	return r.list(ctx, query, eventID)
}

func (r *EntryPassRepository) ListByUser(ctx context.Context, userID string) ([]*domain.EntryPass, error) {
	query := `SELECT ` + entryPassColumns + ` FROM entry_passes
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *EntryPassRepository) list(ctx context.Context, query string, args ...any) ([]*domain.EntryPass, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entry passes: %w", err)
	}
	defer rows.Close()

	var res []*domain.EntryPass
	for rows.Next() {
		p, err := scanEntryPass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry pass: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

// CheckIn marks the pass as used. Only the first call wins.
func (r *EntryPassRepository) CheckIn(ctx context.Context, id string, at time.Time) (*domain.EntryPass, error) {
	query := `UPDATE entry_passes SET is_used = TRUE, used_at = $2
			  WHERE id = $1 AND is_used = FALSE
			  RETURNING ` + entryPassColumns

	p, err := scanEntryPass(r.db.Master.QueryRowContext(ctx, query, id, at))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check in entry pass: %w", err)
	}

	// Определяем причину: пропуск не найден или уже использован
	if _, err = r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return nil, domain.ErrEntryPassUsed
}
