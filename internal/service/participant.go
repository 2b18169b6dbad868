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

type ParticipantService struct {
	participantRepo ports.ParticipantRepo
	eventRepo       ports.EventRepo
	userRepo        ports.UserRepo
	promotionRepo   ports.PromotionRepo
	logger          logger.Logger
	now             func() time.Time
}

func NewParticipantService(
	participantRepo ports.ParticipantRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	promotionRepo ports.PromotionRepo,
	logger logger.Logger,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		promotionRepo:   promotionRepo,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Register confirms a team directly when nothing is due after the promotion.
// Paid registrations go through RegistrationService.Submit instead.
func (s *ParticipantService) Register(
	ctx context.Context,
	session domain.Session,
	input domain.RegisterParticipantInput,
) (*domain.Participant, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	leader, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get leader: %w", err)
	}

	ids, names, err := buildTeam(ctx, s.userRepo, leader, input.MemberIDs)
	if err != nil {
		return nil, err
	}
	if err = event.ValidateTeamSize(len(ids) - 1); err != nil {
		return nil, err
	}

	name, err := teamName(event, leader, input.TeamName)
	if err != nil {
		return nil, err
	}

	q, err := quote(ctx, s.promotionRepo, event, domain.KindParticipant, input.PromoCode, s.now())
	if err != nil {
		return nil, err
	}
	if q.DiscountedAmountInINR > 0 {
		return nil, fmt.Errorf("%w: registration fee of %d INR is due, submit a payment proof",
			domain.ErrValidation, q.DiscountedAmountInINR)
	}

	p := &domain.Participant{
		ID:          uuid.New().String(),
		EventID:     event.ID,
		LeaderID:    leader.ID,
		TeamName:    name,
		MemberIDs:   ids,
		MemberNames: names,
		TeamSize:    len(ids),
		PromoCode:   q.PromoCode,
		Attendance:  domain.AttendancePending,
		CreatedAt:   s.now(),
	}

	if err = s.participantRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	s.logger.Info("participant registered",
		logger.String("participant_id", p.ID),
		logger.String("event_id", p.EventID),
		logger.String("leader_id", p.LeaderID),
		logger.Int("team_size", p.TeamSize),
	)

	return p, nil
}

func (s *ParticipantService) ListMine(ctx context.Context, session domain.Session) ([]*domain.Participant, error) {
	return s.participantRepo.ListByUser(ctx, session.UserID)
}

func (s *ParticipantService) ListByEvent(ctx context.Context, session domain.Session, eventID string) ([]*domain.Participant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !session.CanManageEvent(event) {
		return nil, domain.ErrNotEventManager
	}

	return s.participantRepo.ListByEvent(ctx, eventID)
}

func (s *ParticipantService) UpdateAttendance(
	ctx context.Context,
	session domain.Session,
	id string,
	attendance domain.Attendance,
) (*domain.Participant, error) {
	if !attendance.Valid() {
		return nil, fmt.Errorf("%w: unknown attendance %q", domain.ErrValidation, attendance)
	}

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !session.CanManageEvent(event) {
		return nil, domain.ErrNotEventManager
	}

	updated, err := s.participantRepo.UpdateAttendance(ctx, id, attendance)
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}

	s.logger.Info("attendance updated",
		logger.String("participant_id", id),
		logger.String("attendance", string(attendance)),
		logger.String("by", session.UserID),
	)

	return updated, nil
}
