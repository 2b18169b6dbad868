package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultPollInterval = 10 * time.Second

type RegistrationService struct {
	requestRepo     ports.RequestRepo
	eventRepo       ports.EventRepo
	userRepo        ports.UserRepo
	participantRepo ports.ParticipantRepo
	entryPassRepo   ports.EntryPassRepo
	promotionRepo   ports.PromotionRepo
	notifier        ports.RegistrationNotifier
	pollInterval    time.Duration
	logger          logger.Logger
	now             func() time.Time
}

func NewRegistrationService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	participantRepo ports.ParticipantRepo,
	entryPassRepo ports.EntryPassRepo,
	promotionRepo ports.PromotionRepo,
	notifier ports.RegistrationNotifier,
	pollInterval time.Duration,
	logger logger.Logger,
) *RegistrationService {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &RegistrationService{
		requestRepo:     requestRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		participantRepo: participantRepo,
		entryPassRepo:   entryPassRepo,
		promotionRepo:   promotionRepo,
		notifier:        notifier,
		pollInterval:    pollInterval,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *RegistrationService) Submit(
	ctx context.Context,
	session domain.Session,
	input domain.SubmitInput,
) (*domain.RegistrationRequest, error) {
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown registration kind %q", domain.ErrValidation, input.Kind)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	submitter, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get submitter: %w", err)
	}

	req := &domain.RegistrationRequest{
		ID:          uuid.New().String(),
		Kind:        input.Kind,
		EventID:     event.ID,
		SubmitterID: submitter.ID,
		MemberIDs:   []string{submitter.ID},
		MemberNames: []string{submitter.Name},
		TeamSize:    1,
		Status:      domain.StatusPending,
		CreatedAt:   s.now(),
	}

	if input.Kind == domain.KindParticipant {
		ids, names, err := buildTeam(ctx, s.userRepo, submitter, input.MemberIDs)
		if err != nil {
			return nil, err
		}
		if err = event.ValidateTeamSize(len(ids) - 1); err != nil {
			return nil, err
		}
		if req.TeamName, err = teamName(event, submitter, input.TeamName); err != nil {
			return nil, err
		}
		req.MemberIDs, req.MemberNames, req.TeamSize = ids, names, len(ids)
	}

	q, err := quote(ctx, s.promotionRepo, event, input.Kind, input.PromoCode, s.now())
	if err != nil {
		return nil, err
	}
	if q.DiscountedAmountInINR == 0 {
		return nil, fmt.Errorf("%w: nothing to pay, register directly via POST %s", domain.ErrValidation, directPath(input.Kind))
	}

	req.PaymentProofURL = strings.TrimSpace(input.PaymentProofURL)
	if req.PaymentProofURL == "" {
		return nil, fmt.Errorf("%w: payment proof is required", domain.ErrValidation)
	}

	req.BaseAmountInINR = q.BaseAmountInINR
	req.PromoCode = q.PromoCode
	req.DiscountedAmountInINR = q.DiscountedAmountInINR

	if err = s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("registration submitted",
		logger.String("request_id", req.ID),
		logger.String("kind", string(req.Kind)),
		logger.String("event_id", req.EventID),
		logger.String("submitter_id", req.SubmitterID),
		logger.Int64("amount", req.DiscountedAmountInINR),
	)

	go s.notifier.NotifyRequestSubmitted(context.WithoutCancel(ctx), submitter, event, req)

	return req, nil
}

func (s *RegistrationService) Get(
	ctx context.Context,
	session domain.Session,
	kind domain.Kind,
	id string,
) (*domain.RegistrationRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	// чужие заявки не раскрываем
	if !session.CanVerifyPayments() && req.SubmitterID != session.UserID {
		return nil, domain.ErrRequestNotFound
	}

	return req, nil
}

func (s *RegistrationService) List(
	ctx context.Context,
	session domain.Session,
	filter domain.RequestFilter,
) (*domain.RequestPage, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown registration kind %q", domain.ErrValidation, filter.Kind)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}

	if session.CanVerifyPayments() {
		if filter.Status == "" {
			filter.Status = domain.StatusPending
		}
	} else {
		filter.SubmitterID = session.UserID
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Normalize()

	items, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return &domain.RequestPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ListPending is the verifier queue across both kinds.
func (s *RegistrationService) ListPending(
	ctx context.Context,
	session domain.Session,
	filter domain.RequestFilter,
) (*domain.RequestPage, error) {
	if !session.CanVerifyPayments() {
		return nil, domain.ErrNotVerifier
	}

	filter.Kind = ""
	filter.Status = domain.StatusPending

	return s.List(ctx, session, filter)
}

func (s *RegistrationService) Verify(
	ctx context.Context,
	session domain.Session,
	kind domain.Kind,
	id string,
) (*domain.RegistrationRequest, error) {
	if !session.CanVerifyPayments() {
		return nil, domain.ErrNotVerifier
	}

	req, err := s.requestRepo.Verify(ctx, kind, id, session.UserID, s.now())
	if err != nil {
		return nil, fmt.Errorf("verify request: %w", err)
	}

	s.logger.Info("registration verified",
		logger.String("request_id", req.ID),
		logger.String("kind", string(req.Kind)),
		logger.String("event_id", req.EventID),
		logger.String("verifier_id", session.UserID),
	)

	s.notify(ctx, req, s.notifier.NotifyRequestVerified)

	return req, nil
}

func (s *RegistrationService) Reject(
	ctx context.Context,
	session domain.Session,
	kind domain.Kind,
	id, reason string,
) (*domain.RegistrationRequest, error) {
	if !session.CanVerifyPayments() {
		return nil, domain.ErrNotVerifier
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	req, err := s.requestRepo.Reject(ctx, kind, id, session.UserID, reason, s.now())
	if err != nil {
		return nil, fmt.Errorf("reject request: %w", err)
	}

	s.logger.Info("registration rejected",
		logger.String("request_id", req.ID),
		logger.String("kind", string(req.Kind)),
		logger.String("event_id", req.EventID),
		logger.String("verifier_id", session.UserID),
		logger.String("reason", reason),
	)

	s.notify(ctx, req, s.notifier.NotifyRequestRejected)

	return req, nil
}

// Status is polled by the submitter while a request waits for verification.
func (s *RegistrationService) Status(
	ctx context.Context,
	session domain.Session,
	eventID string,
	kind domain.Kind,
) (*domain.RegistrationStatus, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown registration kind %q", domain.ErrValidation, kind)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	confirmed, err := s.isConfirmed(ctx, kind, eventID, session.UserID)
	if err != nil {
		return nil, err
	}

	status := &domain.RegistrationStatus{Confirmed: confirmed}

	latest, err := s.requestRepo.GetLatest(ctx, kind, eventID, session.UserID)
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
	case err != nil:
		return nil, fmt.Errorf("get latest request: %w", err)
	default:
		status.Request = latest
	}

	status.Pending = !confirmed && latest != nil && latest.Status == domain.StatusPending
	if status.Pending {
		status.PollAfterSeconds = int(s.pollInterval / time.Second)
	}

	return status, nil
}

// ReportBacklog notifies verifiers about requests pending longer than staleAfter.
// It never changes any request.
func (s *RegistrationService) ReportBacklog(ctx context.Context, staleAfter time.Duration) (int, error) {
	count, err := s.requestRepo.CountStale(ctx, s.now().Add(-staleAfter))
	if err != nil {
		return 0, fmt.Errorf("count stale requests: %w", err)
	}

	if count > 0 {
		s.logger.Warn("stale pending registrations",
			logger.Int("count", count),
			logger.Duration("older_than", staleAfter),
		)
		s.notifier.NotifyPendingBacklog(ctx, count, staleAfter)
	}

	return count, nil
}

func (s *RegistrationService) isConfirmed(ctx context.Context, kind domain.Kind, eventID, userID string) (bool, error) {
	var err error
	if kind == domain.KindParticipant {
		_, err = s.participantRepo.GetByEventAndMember(ctx, eventID, userID)
	} else {
		_, err = s.entryPassRepo.GetByEventAndUser(ctx, eventID, userID)
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("check confirmed registration: %w", err)
	}
}

// directPath is the free-path endpoint for a kind.
func directPath(kind domain.Kind) string {
	if kind == domain.KindEntryPass {
		return "/api/entry-passes"
	}
	return "/api/participants"
}

type requestNotify func(ctx context.Context, user *domain.User, event *domain.Event, req *domain.RegistrationRequest)

func (s *RegistrationService) notify(ctx context.Context, req *domain.RegistrationRequest, send requestNotify) {
	user, err := s.userRepo.GetByID(ctx, req.SubmitterID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", req.SubmitterID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", req.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	go send(context.WithoutCancel(ctx), user, event, req)
}
