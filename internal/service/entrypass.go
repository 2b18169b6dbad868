package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EntryPassService struct {
	entryPassRepo ports.EntryPassRepo
	eventRepo     ports.EventRepo
	userRepo      ports.UserRepo
	promotionRepo ports.PromotionRepo
	logger        logger.Logger
	now           func() time.Time
}

func NewEntryPassService(
	entryPassRepo ports.EntryPassRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	promotionRepo ports.PromotionRepo,
	logger logger.Logger,
) *EntryPassService {
	return &EntryPassService{
		entryPassRepo: entryPassRepo,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Issue hands out a pass directly when nothing is due after the promotion.
func (s *EntryPassService) Issue(
	ctx context.Context,
	session domain.Session,
	eventID, promoCode string,
) (*domain.EntryPass, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	q, err := quote(ctx, s.promotionRepo, event, domain.KindEntryPass, promoCode, s.now())
	if err != nil {
		return nil, err
	}
	if q.DiscountedAmountInINR > 0 {
		return nil, fmt.Errorf("%w: entry pass costs %d INR, submit a payment proof",
			domain.ErrValidation, q.DiscountedAmountInINR)
	}

	pass := &domain.EntryPass{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		PromoCode: q.PromoCode,
		CreatedAt: s.now(),
	}

	if err = s.entryPassRepo.Create(ctx, pass); err != nil {
		return nil, fmt.Errorf("create entry pass: %w", err)
	}

	s.logger.Info("entry pass issued",
		logger.String("entry_pass_id", pass.ID),
		logger.String("event_id", pass.EventID),
		logger.String("user_id", pass.UserID),
	)

	return pass, nil
}

func (s *EntryPassService) ListMine(ctx context.Context, session domain.Session) ([]*domain.EntryPass, error) {
	return s.entryPassRepo.ListByUser(ctx, session.UserID)
}

func (s *EntryPassService) Get(ctx context.Context, session domain.Session, id string) (*domain.EntryPass, error) {
	pass, err := s.entryPassRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pass.UserID == session.UserID {
		return pass, nil
	}

	event, err := s.eventRepo.GetByID(ctx, pass.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !session.CanManageEvent(event) {
		return nil, domain.ErrEntryPassNotFound
	}

	return pass, nil
}

func (s *EntryPassService) ListByEvent(ctx context.Context, session domain.Session, eventID string) ([]*domain.EntryPass, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !session.CanManageEvent(event) {
		return nil, domain.ErrNotEventManager
	}

	return s.entryPassRepo.ListByEvent(ctx, eventID)
}

func (s *EntryPassService) CheckIn(ctx context.Context, session domain.Session, id string) (*domain.EntryPass, error) {
	pass, err := s.entryPassRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, pass.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !session.CanManageEvent(event) {
		return nil, domain.ErrNotEventManager
	}

	if pass.IsUsed {
		return nil, domain.ErrEntryPassUsed
	}

	used, err := s.entryPassRepo.CheckIn(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	s.logger.Info("entry pass checked in",
		logger.String("entry_pass_id", id),
		logger.String("event_id", pass.EventID),
		logger.String("by", session.UserID),
	)

	return used, nil
}
