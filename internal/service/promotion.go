package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
)

type PromotionService struct {
	promotionRepo ports.PromotionRepo
	eventRepo     ports.EventRepo
	payeeName     string
	now           func() time.Time
}

func NewPromotionService(promotionRepo ports.PromotionRepo, eventRepo ports.EventRepo, payeeName string) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		eventRepo:     eventRepo,
		payeeName:     payeeName,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *PromotionService) Create(
	ctx context.Context,
	session domain.Session,
	input domain.CreatePromotionInput,
) (*domain.Promotion, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Promotion{
		ID:               uuid.New().String(),
		Code:             domain.NormalizePromoCode(input.Code),
		OrderType:        input.OrderType,
		DiscountType:     input.DiscountType,
		DiscountValue:    input.DiscountValue,
		MaxDiscountInINR: input.MaxDiscountInINR,
		Active:           true,
		ExpiresAt:        input.ExpiresAt,
		CreatedAt:        s.now(),
	}

	if err := s.promotionRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	return p, nil
}

func (s *PromotionService) Quote(ctx context.Context, eventID string, kind domain.Kind, code string) (*domain.Quote, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", domain.ErrValidation, kind)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return quote(ctx, s.promotionRepo, event, kind, code, s.now())
}

// PaymentInfo is the quote plus the UPI link to pay it with.
func (s *PromotionService) PaymentInfo(ctx context.Context, eventID string, kind domain.Kind, code string) (*domain.PaymentInfo, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", domain.ErrValidation, kind)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	q, err := quote(ctx, s.promotionRepo, event, kind, code, s.now())
	if err != nil {
		return nil, err
	}

	info := &domain.PaymentInfo{Quote: *q, PayeeName: s.payeeName}
	if q.DiscountedAmountInINR > 0 {
		info.UPILink = event.UPILink(s.payeeName, q.DiscountedAmountInINR)
	}

	return info, nil
}
