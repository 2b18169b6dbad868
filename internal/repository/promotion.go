package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PromotionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPromotionRepo(db *dbpg.DB) *PromotionRepository {
	return &PromotionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	query := `INSERT INTO promotions (id, code, order_type, discount_type, discount_value,
			  		max_discount_in_inr, active, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Master.ExecContext(ctx, query,
		p.ID, p.Code, p.OrderType, p.DiscountType, p.DiscountValue,
		p.MaxDiscountInINR, p.Active, p.ExpiresAt, p.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrPromotionCodeTaken
		}
		return fmt.Errorf("insert promotion: %w", err)
	}

	return nil
}

func (r *PromotionRepository) GetByCode(ctx context.Context, code string, kind domain.Kind) (*domain.Promotion, error) {
	query := `SELECT id, code, order_type, discount_type, discount_value,
			  		max_discount_in_inr, active, expires_at, created_at
			  FROM promotions
			  WHERE code = $1 AND order_type = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code, kind)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	var (
		p           domain.Promotion
		maxDiscount sql.NullInt64
		expiresAt   sql.NullTime
	)
	err = row.Scan(
		&p.ID, &p.Code, &p.OrderType, &p.DiscountType, &p.DiscountValue,
		&maxDiscount, &p.Active, &expiresAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("scan promotion: %w", err)
	}

	if maxDiscount.Valid {
		p.MaxDiscountInINR = &maxDiscount.Int64
	}
	p.ExpiresAt = nullTimePtr(expiresAt)

	return &p, nil
}
