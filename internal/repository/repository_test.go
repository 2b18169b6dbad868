package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var testDB *dbpg.DB

// TestMain поднимает одноразовый postgres в docker. Без docker или в -short
// режиме интеграционные тесты пропускаются.
func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	if testing.Short() || os.Getenv("SKIP_DB_TESTS") != "" {
		return m.Run()
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return m.Run()
	}
	if err = pool.Client.Ping(); err != nil {
		return m.Run()
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=eventpass",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=eventpass",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		return 1
	}
	defer pool.Purge(resource) //nolint:errcheck
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://eventpass:secret@%s/eventpass?sslmode=disable", resource.GetHostPort("5432/tcp"))

	if err = pool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		fmt.Fprintf(os.Stderr, "wait for postgres: %v\n", err)
		return 1
	}

	migrations, err := sql.Open("postgres", dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db for migrations: %v\n", err)
		return 1
	}
	if err = goose.Up(migrations, "../../migrations"); err != nil {
		fmt.Fprintf(os.Stderr, "goose up: %v\n", err)
		return 1
	}
	migrations.Close()

	testDB, err = dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		return 1
	}
	defer testDB.Master.Close()

	return m.Run()
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres is not available")
	}
}

type fixture struct {
	users        *UserRepository
	events       *EventRepository
	promotions   *PromotionRepository
	requests     *RequestRepository
	participants *ParticipantRepository
	passes       *EntryPassRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	requireDB(t)
	return fixture{
		users:        NewUserRepo(testDB),
		events:       NewEventRepo(testDB),
		promotions:   NewPromotionRepo(testDB),
		requests:     NewRequestRepo(testDB),
		participants: NewParticipantRepo(testDB),
		passes:       NewEntryPassRepo(testDB),
	}
}

func (f fixture) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     uuid.New().String() + "@example.com",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f fixture) event(t *testing.T, organiser *domain.User) *domain.Event {
	t.Helper()
	now := time.Now().UTC()
	e := &domain.Event{
		ID:                    uuid.New().String(),
		Title:                 "Hackathon",
		EventDate:             now.Add(72 * time.Hour),
		MinTeamSize:           1,
		MaxTeamSize:           4,
		RegistrationFeesInINR: 500,
		EntryPassPriceInINR:   150,
		UpiAccountNumber:      "1234567890",
		UpiIfsc:               "SBIN0001234",
		OrganiserID:           organiser.ID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	require.NoError(t, f.events.Create(context.Background(), e))
	return e
}

func pendingRequest(kind domain.Kind, e *domain.Event, members ...*domain.User) *domain.RegistrationRequest {
	ids := make([]string, 0, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
		names = append(names, m.Name)
	}
	return &domain.RegistrationRequest{
		ID:                    uuid.New().String(),
		Kind:                  kind,
		EventID:               e.ID,
		SubmitterID:           members[0].ID,
		TeamName:              "Gophers",
		MemberIDs:             ids,
		MemberNames:           names,
		TeamSize:              len(ids),
		PaymentProofURL:       "https://cdn.example.com/proof.png",
		BaseAmountInINR:       500,
		DiscountedAmountInINR: 400,
		PromoCode:             "EARLY",
		Status:                domain.StatusPending,
		CreatedAt:             time.Now().UTC(),
	}
}

func TestRequestRepository_OnePendingPerSubmitter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	asha := f.user(t, "Asha")
	e := f.event(t, org)

	require.NoError(t, f.requests.Create(ctx, pendingRequest(domain.KindParticipant, e, asha)))

	err := f.requests.Create(ctx, pendingRequest(domain.KindParticipant, e, asha))
	assert.ErrorIs(t, err, domain.ErrAlreadyPending)

	// другой kind считается отдельным хранилищем
	require.NoError(t, f.requests.Create(ctx, pendingRequest(domain.KindEntryPass, e, asha)))
}

func TestRequestRepository_ConcurrentSubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	meera := f.user(t, "Meera")
	e := f.event(t, org)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.requests.Create(ctx, pendingRequest(domain.KindEntryPass, e, meera))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrAlreadyPending):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	page, total, err := f.requests.List(ctx, domain.RequestFilter{
		Kind: domain.KindEntryPass, EventID: e.ID, Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, page, 1)
}

func TestRequestRepository_VerifyAndResubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	verifier := f.user(t, "Vik")
	asha := f.user(t, "Asha")
	e := f.event(t, org)

	first := pendingRequest(domain.KindParticipant, e, asha)
	require.NoError(t, f.requests.Create(ctx, first))

	_, err := f.requests.Verify(ctx, domain.KindParticipant, first.ID, verifier.ID, time.Now().UTC())
	require.NoError(t, err)

	second := pendingRequest(domain.KindParticipant, e, asha)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, f.requests.Create(ctx, second))

	latest, err := f.requests.GetLatest(ctx, domain.KindParticipant, e.ID, asha.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, domain.StatusPending, latest.Status)

	// вторая команда того же лидера не подтверждается, заявка остаётся pending
	_, err = f.requests.Verify(ctx, domain.KindParticipant, second.ID, verifier.ID, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRequestRepository_VerifyCreatesParticipantFromFrozenFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	verifier := f.user(t, "Vik")
	asha := f.user(t, "Asha")
	ravi := f.user(t, "Ravi")
	e := f.event(t, org)

	req := pendingRequest(domain.KindParticipant, e, asha, ravi)
	require.NoError(t, f.requests.Create(ctx, req))

	// имя меняется после подачи заявки
	_, err := testDB.Master.ExecContext(ctx, `UPDATE users SET name = 'Ravi Kumar' WHERE id = $1`, ravi.ID)
	require.NoError(t, err)

	at := time.Now().UTC().Truncate(time.Microsecond)
	verified, err := f.requests.Verify(ctx, domain.KindParticipant, req.ID, verifier.ID, at)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, verified.Status)
	assert.Equal(t, verifier.ID, verified.ResolvedBy)
	require.NotNil(t, verified.ResolvedAt)

	p, err := f.participants.GetByEventAndMember(ctx, e.ID, asha.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Ravi"}, p.MemberNames)
	assert.Equal(t, []string{asha.ID, ravi.ID}, p.MemberIDs)
	assert.Equal(t, int64(400), p.AmountPaidInINR)
	assert.Equal(t, "EARLY", p.PromoCode)
	assert.Equal(t, req.ID, p.RequestID)
	assert.Equal(t, domain.AttendancePending, p.Attendance)

	// участник команды, не лидер, тоже находит её
	byMember, err := f.participants.GetByEventAndMember(ctx, e.ID, ravi.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byMember.ID)

	mine, err := f.participants.ListByUser(ctx, ravi.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.requests.Verify(ctx, domain.KindParticipant, req.ID, verifier.ID, at)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.requests.Reject(ctx, domain.KindParticipant, req.ID, verifier.ID, "late", at)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRequestRepository_ConcurrentVerify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	verifier := f.user(t, "Vik")
	meera := f.user(t, "Meera")
	e := f.event(t, org)

	req := pendingRequest(domain.KindEntryPass, e, meera)
	require.NoError(t, f.requests.Create(ctx, req))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.requests.Verify(ctx, domain.KindEntryPass, req.ID, verifier.ID, time.Now().UTC())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	passes, err := f.passes.ListByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, passes, 1)
	assert.Equal(t, "Meera", passes[0].UserName)
	assert.Equal(t, int64(400), passes[0].AmountPaidInINR)
}

func TestRequestRepository_VerifyRollsBackWhenAlreadyRegistered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	verifier := f.user(t, "Vik")
	meera := f.user(t, "Meera")
	e := f.event(t, org)

	require.NoError(t, f.passes.Create(ctx, &domain.EntryPass{
		ID:        uuid.New().String(),
		EventID:   e.ID,
		UserID:    meera.ID,
		UserName:  meera.Name,
		CreatedAt: time.Now().UTC(),
	}))

	req := pendingRequest(domain.KindEntryPass, e, meera)
	require.NoError(t, f.requests.Create(ctx, req))

	_, err := f.requests.Verify(ctx, domain.KindEntryPass, req.ID, verifier.ID, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	stored, err := f.requests.GetByID(ctx, domain.KindEntryPass, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestRequestRepository_RejectAndResubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	verifier := f.user(t, "Vik")
	asha := f.user(t, "Asha")
	e := f.event(t, org)

	first := pendingRequest(domain.KindParticipant, e, asha)
	require.NoError(t, f.requests.Create(ctx, first))

	rejected, err := f.requests.Reject(ctx, domain.KindParticipant, first.ID, verifier.ID, "blurry screenshot", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)
	assert.Equal(t, "blurry screenshot", rejected.RejectionReason)

	second := pendingRequest(domain.KindParticipant, e, asha)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, f.requests.Create(ctx, second))

	latest, err := f.requests.GetLatest(ctx, domain.KindParticipant, e.ID, asha.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestRequestRepository_ResolveMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.requests.Verify(context.Background(), domain.KindParticipant, uuid.New().String(), uuid.New().String(), time.Now())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestRepository_ListSearchAndPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	e := f.event(t, org)

	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{"Priya", "Rahul", "Priyanka"} {
		u := f.user(t, name)
		req := pendingRequest(domain.KindParticipant, e, u)
		req.TeamName = "Team " + name
		req.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, f.requests.Create(ctx, req))
	}

	items, total, err := f.requests.List(ctx, domain.RequestFilter{
		Kind:    domain.KindParticipant,
		EventID: e.ID,
		Status:  domain.StatusPending,
		Query:   "PRIYA",
		Page:    1,
		Limit:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Team Priya", items[0].TeamName)

	items, total, err = f.requests.List(ctx, domain.RequestFilter{
		EventID: e.ID,
		Status:  domain.StatusPending,
		Page:    5,
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, total)

	stale, err := f.requests.CountStale(ctx, base.Add(90*time.Second))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stale, 2)
}

func TestEntryPassRepository_CheckInOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	u := f.user(t, "Meera")
	e := f.event(t, org)

	pass := &domain.EntryPass{
		ID:        uuid.New().String(),
		EventID:   e.ID,
		UserID:    u.ID,
		UserName:  u.Name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.passes.Create(ctx, pass))

	used, err := f.passes.CheckIn(ctx, pass.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, used.IsUsed)
	require.NotNil(t, used.UsedAt)

	_, err = f.passes.CheckIn(ctx, pass.ID, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrEntryPassUsed)

	_, err = f.passes.CheckIn(ctx, uuid.New().String(), time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrEntryPassNotFound)
}

func TestParticipantRepository_UpdateAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org := f.user(t, "Org")
	u := f.user(t, "Asha")
	e := f.event(t, org)

	p := &domain.Participant{
		ID:          uuid.New().String(),
		EventID:     e.ID,
		LeaderID:    u.ID,
		TeamName:    "Solo",
		MemberIDs:   []string{u.ID},
		MemberNames: []string{u.Name},
		TeamSize:    1,
		Attendance:  domain.AttendancePending,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.participants.Create(ctx, p))
	assert.ErrorIs(t, f.participants.Create(ctx, p), domain.ErrAlreadyRegistered)

	updated, err := f.participants.UpdateAttendance(ctx, p.ID, domain.AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, updated.Attendance)
	assert.Empty(t, updated.RequestID)

	_, err = f.participants.UpdateAttendance(ctx, uuid.New().String(), domain.AttendanceAbsent)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestUserAndPromotionRepositories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "Asha")
	dup := *u
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, f.users.Create(ctx, &dup), domain.ErrEmailTaken)

	found, err := f.users.GetByIDs(ctx, []string{u.ID, uuid.New().String()})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Asha", found[u.ID].Name)

	code := "P" + uuid.New().String()[:8]
	maxDiscount := int64(100)
	promo := &domain.Promotion{
		ID:               uuid.New().String(),
		Code:             code,
		OrderType:        domain.KindParticipant,
		DiscountType:     domain.DiscountFlat,
		DiscountValue:    300,
		MaxDiscountInINR: &maxDiscount,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, f.promotions.Create(ctx, promo))

	got, err := f.promotions.GetByCode(ctx, code, domain.KindParticipant)
	require.NoError(t, err)
	require.NotNil(t, got.MaxDiscountInINR)
	assert.Equal(t, int64(100), *got.MaxDiscountInINR)
	assert.Nil(t, got.ExpiresAt)

	_, err = f.promotions.GetByCode(ctx, code, domain.KindEntryPass)
	assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
}
