package service

import (
	"context"
	"testing"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newParticipantService(t *testing.T) (*ParticipantService, *mocks.MockParticipantRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockPromotionRepo) {
	t.Helper()
	participantRepo := mocks.NewMockParticipantRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	promoRepo := mocks.NewMockPromotionRepo(t)

	svc := NewParticipantService(participantRepo, eventRepo, userRepo, promoRepo, newTestLogger(t))
	return svc, participantRepo, eventRepo, userRepo, promoRepo
}

func TestParticipantService_Register_FreeEvent(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, _ := newParticipantService(t)

	event := teamEvent()
	event.RegistrationFeesInINR = 0

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	userRepo.EXPECT().GetByIDs(mock.Anything, []string{"u2"}).Return(map[string]*domain.User{"u2": ravi}, nil)
	participantRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Register(context.Background(), domain.Session{UserID: "u1"}, domain.RegisterParticipantInput{
		EventID:   "e1",
		TeamName:  "Gophers",
		MemberIDs: []string{"u2"},
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", p.LeaderID)
	assert.Equal(t, []string{"Asha", "Ravi"}, p.MemberNames)
	assert.Equal(t, int64(0), p.AmountPaidInINR)
	assert.Equal(t, domain.AttendancePending, p.Attendance)
	assert.Empty(t, p.RequestID)
}

func TestParticipantService_Register_FullDiscount(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, promoRepo := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	userRepo.EXPECT().GetByIDs(mock.Anything, []string{"u2"}).Return(map[string]*domain.User{"u2": ravi}, nil)
	promoRepo.EXPECT().GetByCode(mock.Anything, "FREE", domain.KindParticipant).Return(&domain.Promotion{
		Code:          "FREE",
		OrderType:     domain.KindParticipant,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 100,
		Active:        true,
	}, nil)
	participantRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Register(context.Background(), domain.Session{UserID: "u1"}, domain.RegisterParticipantInput{
		EventID:   "e1",
		TeamName:  "Gophers",
		MemberIDs: []string{"u2"},
		PromoCode: "free",
	})

	require.NoError(t, err)
	assert.Equal(t, "FREE", p.PromoCode)
}

func TestParticipantService_Register_PaymentDue(t *testing.T) {
	svc, _, eventRepo, userRepo, _ := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	userRepo.EXPECT().GetByIDs(mock.Anything, []string{"u2"}).Return(map[string]*domain.User{"u2": ravi}, nil)

	_, err := svc.Register(context.Background(), domain.Session{UserID: "u1"}, domain.RegisterParticipantInput{
		EventID:   "e1",
		TeamName:  "Gophers",
		MemberIDs: []string{"u2"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_Register_Duplicate(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, _ := newParticipantService(t)

	event := teamEvent()
	event.RegistrationFeesInINR = 0

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	userRepo.EXPECT().GetByIDs(mock.Anything, []string{"u2"}).Return(map[string]*domain.User{"u2": ravi}, nil)
	participantRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), domain.Session{UserID: "u1"}, domain.RegisterParticipantInput{
		EventID:   "e1",
		TeamName:  "Gophers",
		MemberIDs: []string{"u2"},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestParticipantService_ListByEvent_Forbidden(t *testing.T) {
	svc, _, eventRepo, _, _ := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)

	_, err := svc.ListByEvent(context.Background(), domain.Session{UserID: "org2", Role: domain.RoleOrganiser}, "e1")

	assert.ErrorIs(t, err, domain.ErrNotEventManager)
}

func TestParticipantService_ListByEvent_Organiser(t *testing.T) {
	svc, participantRepo, eventRepo, _, _ := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	participantRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Participant{{ID: "p1"}}, nil)

	list, err := svc.ListByEvent(context.Background(), domain.Session{UserID: "org1", Role: domain.RoleOrganiser}, "e1")

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestParticipantService_UpdateAttendance(t *testing.T) {
	svc, participantRepo, eventRepo, _, _ := newParticipantService(t)

	participantRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Participant{ID: "p1", EventID: "e1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	participantRepo.EXPECT().UpdateAttendance(mock.Anything, "p1", domain.AttendancePresent).
		Return(&domain.Participant{ID: "p1", Attendance: domain.AttendancePresent}, nil)

	p, err := svc.UpdateAttendance(context.Background(), domain.Session{UserID: "a1", Role: domain.RoleAdmin}, "p1", domain.AttendancePresent)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, p.Attendance)
}

func TestParticipantService_UpdateAttendance_InvalidValue(t *testing.T) {
	svc, _, _, _, _ := newParticipantService(t)

	_, err := svc.UpdateAttendance(context.Background(), domain.Session{Role: domain.RoleAdmin}, "p1", "late")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
