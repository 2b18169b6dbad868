package ports

import (
	"context"

	"github.com/stpnv0/EventPass/internal/domain"
)

type PromotionRepo interface {
	Create(ctx context.Context, p *domain.Promotion) error
	GetByCode(ctx context.Context, code string, kind domain.Kind) (*domain.Promotion, error)
}
