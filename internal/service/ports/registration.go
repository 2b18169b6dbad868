package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
)

// RequestRepo stores pending registration requests. Every method is scoped by kind.
type RequestRepo interface {
	Create(ctx context.Context, r *domain.RegistrationRequest) error
	GetByID(ctx context.Context, kind domain.Kind, id string) (*domain.RegistrationRequest, error)
	GetLatest(ctx context.Context, kind domain.Kind, eventID, submitterID string) (*domain.RegistrationRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]*domain.RegistrationRequest, int, error)

	// Verify flips a pending request to verified and creates the confirmed
	// record in the same transaction.
	Verify(ctx context.Context, kind domain.Kind, id, verifierID string, at time.Time) (*domain.RegistrationRequest, error)
	Reject(ctx context.Context, kind domain.Kind, id, verifierID, reason string, at time.Time) (*domain.RegistrationRequest, error)

	CountStale(ctx context.Context, olderThan time.Time) (int, error)
}

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	GetByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.Participant, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Participant, error)
	UpdateAttendance(ctx context.Context, id string, a domain.Attendance) (*domain.Participant, error)
}

type EntryPassRepo interface {
	Create(ctx context.Context, p *domain.EntryPass) error
	GetByID(ctx context.Context, id string) (*domain.EntryPass, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.EntryPass, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EntryPass, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.EntryPass, error)
	CheckIn(ctx context.Context, id string, at time.Time) (*domain.EntryPass, error)
}
