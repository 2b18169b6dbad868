package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(
	ctx context.Context,
	session domain.Session,
	input domain.CreateEventInput,
) (*domain.Event, error) {
	if !session.CanCreateEvents() {
		return nil, domain.ErrCannotCreateEvents
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                    uuid.New().String(),
		Title:                 input.Title,
		Description:           input.Description,
		EventDate:             input.EventDate,
		MinTeamSize:           input.MinTeamSize,
		MaxTeamSize:           input.MaxTeamSize,
		RegistrationFeesInINR: input.RegistrationFeesInINR,
		EntryPassPriceInINR:   input.EntryPassPriceInINR,
		UpiAccountNumber:      input.UpiAccountNumber,
		UpiIfsc:               strings.ToUpper(input.UpiIfsc),
		OrganiserID:           session.UserID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
