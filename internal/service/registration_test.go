package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type registrationDeps struct {
	requests     *mocks.MockRequestRepo
	events       *mocks.MockEventRepo
	users        *mocks.MockUserRepo
	participants *mocks.MockParticipantRepo
	passes       *mocks.MockEntryPassRepo
	promos       *mocks.MockPromotionRepo
	notifier     *mocks.MockRegistrationNotifier
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationDeps) {
	t.Helper()
	d := registrationDeps{
		requests:     mocks.NewMockRequestRepo(t),
		events:       mocks.NewMockEventRepo(t),
		users:        mocks.NewMockUserRepo(t),
		participants: mocks.NewMockParticipantRepo(t),
		passes:       mocks.NewMockEntryPassRepo(t),
		promos:       mocks.NewMockPromotionRepo(t),
		notifier:     mocks.NewMockRegistrationNotifier(t),
	}

	svc := NewRegistrationService(
		d.requests, d.events, d.users, d.participants, d.passes, d.promos,
		d.notifier, 0, newTestLogger(t),
	)
	svc.now = func() time.Time { return fixedNow }

	return svc, d
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func teamEvent() *domain.Event {
	return &domain.Event{
		ID:                    "e1",
		Title:                 "Hackathon",
		MinTeamSize:           2,
		MaxTeamSize:           4,
		RegistrationFeesInINR: 500,
		EntryPassPriceInINR:   150,
		UpiAccountNumber:      "1234567890",
		UpiIfsc:               "SBIN0001234",
		OrganiserID:           "org1",
	}
}

var (
	asha  = &domain.User{ID: "u1", Name: "Asha"}
	ravi  = &domain.User{ID: "u2", Name: "Ravi"}
	meera = &domain.User{ID: "u3", Name: "Meera"}
)

func TestRegistrationService_Submit_ParticipantWithPromo(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	d.users.EXPECT().GetByIDs(mock.Anything, []string{"u2", "u3"}).
		Return(map[string]*domain.User{"u2": ravi, "u3": meera}, nil)
	d.promos.EXPECT().GetByCode(mock.Anything, "EARLY", domain.KindParticipant).Return(&domain.Promotion{
		Code:          "EARLY",
		OrderType:     domain.KindParticipant,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
		Active:        true,
	}, nil)
	d.requests.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyRequestSubmitted(mock.Anything, asha, event, mock.Anything).Return()

	req, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, domain.SubmitInput{
		Kind:            domain.KindParticipant,
		EventID:         "e1",
		TeamName:        " Gophers ",
		MemberIDs:       []string{"u2", "u1", "u3", "u2"},
		PaymentProofURL: "https://cdn.example.com/proof.png",
		PromoCode:       "early",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, req.Status)
	assert.Equal(t, "Gophers", req.TeamName)
	assert.Equal(t, []string{"u1", "u2", "u3"}, req.MemberIDs)
	assert.Equal(t, []string{"Asha", "Ravi", "Meera"}, req.MemberNames)
	assert.Equal(t, 3, req.TeamSize)
	assert.Equal(t, int64(500), req.BaseAmountInINR)
	assert.Equal(t, "EARLY", req.PromoCode)
	assert.Equal(t, int64(400), req.DiscountedAmountInINR)
	assert.Equal(t, fixedNow, req.CreatedAt)
	assert.NotEmpty(t, req.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Submit_EntryPass(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)
	d.requests.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.RegistrationRequest) bool {
		return r.Kind == domain.KindEntryPass && r.TeamSize == 1 && r.MemberNames[0] == "Meera"
	})).Return(nil)
	d.notifier.EXPECT().NotifyRequestSubmitted(mock.Anything, meera, event, mock.Anything).Return()

	req, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "https://cdn.example.com/p.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(150), req.DiscountedAmountInINR)
	assert.Empty(t, req.PromoCode)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Submit_TeamTooSmall(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, domain.SubmitInput{
		Kind:            domain.KindParticipant,
		EventID:         "e1",
		TeamName:        "Solo",
		PaymentProofURL: "https://cdn.example.com/proof.png",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Submit_UnknownMember(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	d.users.EXPECT().GetByIDs(mock.Anything, []string{"ghost"}).Return(map[string]*domain.User{}, nil)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, domain.SubmitInput{
		Kind:            domain.KindParticipant,
		EventID:         "e1",
		TeamName:        "Gophers",
		MemberIDs:       []string{"ghost"},
		PaymentProofURL: "https://cdn.example.com/proof.png",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Submit_MissingProof(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "   ",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Submit_NothingDue(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()
	event.EntryPassPriceInINR = 0

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "https://cdn.example.com/p.pdf",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "POST /api/entry-passes")
}

func TestRegistrationService_Submit_UnknownPromo(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)
	d.promos.EXPECT().GetByCode(mock.Anything, "NOPE", domain.KindEntryPass).Return(nil, domain.ErrPromotionNotFound)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "https://cdn.example.com/p.pdf",
		PromoCode:       "nope",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrationService_Submit_AfterVerified(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()

	// подтверждённый билет не мешает новой заявке, конфликтует только pending
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)
	d.requests.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyRequestSubmitted(mock.Anything, meera, event, mock.Anything).Return()

	req, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "https://cdn.example.com/p.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, req.Status)
	d.passes.AssertNotCalled(t, "GetByEventAndUser", mock.Anything, mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Submit_AlreadyPending(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.users.EXPECT().GetByID(mock.Anything, "u3").Return(meera, nil)
	d.requests.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyPending)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u3"}, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         "e1",
		PaymentProofURL: "https://cdn.example.com/p.pdf",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegistrationService_Submit_EventNotFound(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, domain.SubmitInput{
		Kind:    domain.KindParticipant,
		EventID: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Get_HidesOthersRequests(t *testing.T) {
	svc, d := newRegistrationService(t)

	req := &domain.RegistrationRequest{ID: "r1", Kind: domain.KindParticipant, SubmitterID: "u1"}
	d.requests.EXPECT().GetByID(mock.Anything, domain.KindParticipant, "r1").Return(req, nil)

	_, err := svc.Get(context.Background(), domain.Session{UserID: "u2"}, domain.KindParticipant, "r1")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	got, err := svc.Get(context.Background(), domain.Session{UserID: "u1"}, domain.KindParticipant, "r1")
	require.NoError(t, err)
	assert.Equal(t, req, got)

	got, err = svc.Get(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier}, domain.KindParticipant, "r1")
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestRegistrationService_List_ScopedToSubmitter(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.requests.EXPECT().List(mock.Anything, domain.RequestFilter{
		Kind:        domain.KindParticipant,
		SubmitterID: "u1",
		Page:        1,
		Limit:       domain.DefaultPageLimit,
	}).Return([]*domain.RegistrationRequest{{ID: "r1"}}, 1, nil)

	page, err := svc.List(context.Background(), domain.Session{UserID: "u1"}, domain.RequestFilter{
		Kind:        domain.KindParticipant,
		SubmitterID: "someone-else",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestRegistrationService_List_VerifierDefaultsToPending(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.requests.EXPECT().List(mock.Anything, domain.RequestFilter{
		Kind:    domain.KindEntryPass,
		EventID: "e1",
		Query:   "asha",
		Status:  domain.StatusPending,
		Page:    2,
		Limit:   domain.MaxPageLimit,
	}).Return(nil, 0, nil)

	page, err := svc.List(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier}, domain.RequestFilter{
		Kind:    domain.KindEntryPass,
		EventID: "e1",
		Query:   "  asha ",
		Page:    2,
		Limit:   1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, domain.MaxPageLimit, page.Limit)
}

func TestRegistrationService_ListPending_RequiresVerifier(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.ListPending(context.Background(), domain.Session{UserID: "u1"}, domain.RequestFilter{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Verify_Success(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()

	verified := &domain.RegistrationRequest{
		ID:          "r1",
		Kind:        domain.KindParticipant,
		EventID:     "e1",
		SubmitterID: "u1",
		Status:      domain.StatusVerified,
	}
	d.requests.EXPECT().Verify(mock.Anything, domain.KindParticipant, "r1", "v1", fixedNow).Return(verified, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.notifier.EXPECT().NotifyRequestVerified(mock.Anything, asha, event, verified).Return()

	req, err := svc.Verify(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier}, domain.KindParticipant, "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, req.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Verify_NotVerifier(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Verify(context.Background(), domain.Session{UserID: "org1", Role: domain.RoleOrganiser}, domain.KindParticipant, "r1")

	assert.ErrorIs(t, err, domain.ErrNotVerifier)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Verify_AlreadyResolved(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.requests.EXPECT().Verify(mock.Anything, domain.KindEntryPass, "r1", "a1", fixedNow).
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Verify(context.Background(), domain.Session{UserID: "a1", Role: domain.RoleAdmin}, domain.KindEntryPass, "r1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegistrationService_Verify_NotificationLookupFails(t *testing.T) {
	svc, d := newRegistrationService(t)

	verified := &domain.RegistrationRequest{ID: "r1", EventID: "e1", SubmitterID: "u1", Status: domain.StatusVerified}
	d.requests.EXPECT().Verify(mock.Anything, domain.KindParticipant, "r1", "v1", fixedNow).Return(verified, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errors.New("db error"))

	req, err := svc.Verify(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier}, domain.KindParticipant, "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", req.ID)
}

func TestRegistrationService_Reject_ReasonRequired(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Reject(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier},
		domain.KindParticipant, "r1", "  \t ")

	assert.ErrorIs(t, err, domain.ErrReasonRequired)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Reject_NotVerifier(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Reject(context.Background(), domain.Session{UserID: "u1"}, domain.KindParticipant, "r1", "blurry")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Reject_Success(t *testing.T) {
	svc, d := newRegistrationService(t)
	event := teamEvent()

	rejected := &domain.RegistrationRequest{
		ID:              "r1",
		Kind:            domain.KindParticipant,
		EventID:         "e1",
		SubmitterID:     "u1",
		Status:          domain.StatusRejected,
		RejectionReason: "amount mismatch",
	}
	d.requests.EXPECT().Reject(mock.Anything, domain.KindParticipant, "r1", "v1", "amount mismatch", fixedNow).
		Return(rejected, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(asha, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.notifier.EXPECT().NotifyRequestRejected(mock.Anything, asha, event, rejected).Return()

	req, err := svc.Reject(context.Background(), domain.Session{UserID: "v1", Role: domain.RolePaymentVerifier},
		domain.KindParticipant, "r1", " amount mismatch ")

	require.NoError(t, err)
	assert.Equal(t, "amount mismatch", req.RejectionReason)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Status_Pending(t *testing.T) {
	svc, d := newRegistrationService(t)

	latest := &domain.RegistrationRequest{ID: "r1", Status: domain.StatusPending}
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.participants.EXPECT().GetByEventAndMember(mock.Anything, "e1", "u1").Return(nil, domain.ErrParticipantNotFound)
	d.requests.EXPECT().GetLatest(mock.Anything, domain.KindParticipant, "e1", "u1").Return(latest, nil)

	st, err := svc.Status(context.Background(), domain.Session{UserID: "u1"}, "e1", domain.KindParticipant)

	require.NoError(t, err)
	assert.True(t, st.Pending)
	assert.False(t, st.Confirmed)
	assert.Equal(t, latest, st.Request)
	assert.Equal(t, 10, st.PollAfterSeconds)
}

func TestRegistrationService_Status_Confirmed(t *testing.T) {
	svc, d := newRegistrationService(t)

	latest := &domain.RegistrationRequest{ID: "r1", Status: domain.StatusVerified}
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.passes.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u3").Return(&domain.EntryPass{ID: "ep1"}, nil)
	d.requests.EXPECT().GetLatest(mock.Anything, domain.KindEntryPass, "e1", "u3").Return(latest, nil)

	st, err := svc.Status(context.Background(), domain.Session{UserID: "u3"}, "e1", domain.KindEntryPass)

	require.NoError(t, err)
	assert.False(t, st.Pending)
	assert.True(t, st.Confirmed)
	assert.Zero(t, st.PollAfterSeconds)
}

func TestRegistrationService_Status_ConfirmedTeamMember(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.participants.EXPECT().GetByEventAndMember(mock.Anything, "e1", "u2").
		Return(&domain.Participant{ID: "p1", LeaderID: "u1", MemberIDs: []string{"u1", "u2"}}, nil)
	d.requests.EXPECT().GetLatest(mock.Anything, domain.KindParticipant, "e1", "u2").Return(nil, domain.ErrRequestNotFound)

	st, err := svc.Status(context.Background(), domain.Session{UserID: "u2"}, "e1", domain.KindParticipant)

	require.NoError(t, err)
	assert.True(t, st.Confirmed)
	assert.False(t, st.Pending)
	assert.Nil(t, st.Request)
}

func TestRegistrationService_Status_NothingSubmitted(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	d.passes.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u3").Return(nil, domain.ErrEntryPassNotFound)
	d.requests.EXPECT().GetLatest(mock.Anything, domain.KindEntryPass, "e1", "u3").Return(nil, domain.ErrRequestNotFound)

	st, err := svc.Status(context.Background(), domain.Session{UserID: "u3"}, "e1", domain.KindEntryPass)

	require.NoError(t, err)
	assert.False(t, st.Pending)
	assert.False(t, st.Confirmed)
	assert.Nil(t, st.Request)
}

func TestRegistrationService_ReportBacklog(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.requests.EXPECT().CountStale(mock.Anything, fixedNow.Add(-24*time.Hour)).Return(3, nil)
	d.notifier.EXPECT().NotifyPendingBacklog(mock.Anything, 3, 24*time.Hour).Return()

	count, err := svc.ReportBacklog(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRegistrationService_ReportBacklog_Empty(t *testing.T) {
	svc, d := newRegistrationService(t)

	d.requests.EXPECT().CountStale(mock.Anything, mock.Anything).Return(0, nil)

	count, err := svc.ReportBacklog(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Zero(t, count)
}
