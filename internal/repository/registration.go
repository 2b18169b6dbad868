package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const requestColumns = `id, kind, event_id, submitter_id, team_name, member_ids, member_names, team_size,
	payment_proof_url, base_amount_in_inr, promo_code, discounted_amount_in_inr, status,
	rejection_reason, resolved_by, created_at, resolved_at`

// pendingIndex is the partial unique index allowing one pending request
// per (kind, submitter, event).
const pendingIndex = "registration_requests_one_pending"

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanRequest(row rowScanner, extra ...any) (*domain.RegistrationRequest, error) {
	var (
		r          domain.RegistrationRequest
		resolvedBy sql.NullString
		resolvedAt sql.NullTime
	)
	dest := []any{
		&r.ID, &r.Kind, &r.EventID, &r.SubmitterID, &r.TeamName,
		pq.Array(&r.MemberIDs), pq.Array(&r.MemberNames), &r.TeamSize,
		&r.PaymentProofURL, &r.BaseAmountInINR, &r.PromoCode, &r.DiscountedAmountInINR, &r.Status,
		&r.RejectionReason, &resolvedBy, &r.CreatedAt, &resolvedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	r.ResolvedBy = resolvedBy.String
	r.ResolvedAt = nullTimePtr(resolvedAt)
	return &r, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.RegistrationRequest) error {
	query := `INSERT INTO registration_requests (id, kind, event_id, submitter_id, team_name,
			  		member_ids, member_names, team_size, payment_proof_url, base_amount_in_inr,
			  		promo_code, discounted_amount_in_inr, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	// без ретраев: повтор после unique violation не имеет смысла
	_, err := r.db.Master.ExecContext(ctx, query,
		req.ID, req.Kind, req.EventID, req.SubmitterID, req.TeamName,
		pq.Array(req.MemberIDs), pq.Array(req.MemberNames), req.TeamSize, req.PaymentProofURL,
		req.BaseAmountInINR, req.PromoCode, req.DiscountedAmountInINR, req.Status, req.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == pendingIndex {
			return domain.ErrAlreadyPending
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, kind domain.Kind, id string) (*domain.RegistrationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM registration_requests WHERE id = $1 AND kind = $2`
	return r.getOne(ctx, query, id, kind)
}

func (r *RequestRepository) GetLatest(
	ctx context.Context,
	kind domain.Kind,
	eventID, submitterID string,
) (*domain.RegistrationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM registration_requests
			  WHERE kind = $1 AND event_id = $2 AND submitter_id = $3
			  ORDER BY created_at DESC
			  LIMIT 1`
	return r.getOne(ctx, query, kind, eventID, submitterID)
}

func (r *RequestRepository) getOne(ctx context.Context, query string, args ...any) (*domain.RegistrationRequest, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) List(ctx context.Context, f domain.RequestFilter) ([]*domain.RegistrationRequest, int, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Kind != "" {
		add("kind = $%d", f.Kind)
	}
	if f.EventID != "" {
		add("event_id = $%d", f.EventID)
	}
	if f.SubmitterID != "" {
		add("submitter_id = $%d", f.SubmitterID)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Query != "" {
		args = append(args, containsPattern(f.Query))
		conds = append(conds, fmt.Sprintf(
			"(team_name ILIKE $%[1]d OR array_to_string(member_names, ' ') ILIKE $%[1]d)", len(args),
		))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	// очередь на проверку: сначала самые старые
	order := "DESC"
	if f.Status == domain.StatusPending {
		order = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() FROM registration_requests %s
			  ORDER BY created_at %s, id
			  LIMIT $%d OFFSET $%d`,
		requestColumns, where, order, len(args)+1, len(args)+2,
	)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var (
		res   []*domain.RegistrationRequest
		total int
	)
	for rows.Next() {
		req, err := scanRequest(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, req)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}

	// страница за пределами выборки: total считаем отдельно
	if len(res) == 0 && f.Offset() > 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			"SELECT COUNT(*) FROM registration_requests "+where, args...)
		if err != nil {
			return nil, 0, fmt.Errorf("count requests: %w", err)
		}
		if err = row.Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count requests: %w", err)
		}
	}

	return res, total, nil
}

// Verify resolves a pending request and creates the confirmed participant or
// entry pass from its frozen fields. Both happen in one transaction.
func (r *RequestRepository) Verify(
	ctx context.Context,
	kind domain.Kind,
	id, verifierID string,
	at time.Time,
) (*domain.RegistrationRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	req, err := resolve(ctx, tx, kind, id, domain.StatusVerified, verifierID, "", at)
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindParticipant:
		p := domain.ParticipantFromRequest(req, uuid.New().String())
		p.CreatedAt = at
		err = insertParticipant(ctx, tx, p)
	case domain.KindEntryPass:
		p := domain.EntryPassFromRequest(req, uuid.New().String())
		p.CreatedAt = at
		err = insertEntryPass(ctx, tx, p)
	default:
		err = fmt.Errorf("%w: unknown registration kind %q", domain.ErrValidation, kind)
	}
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit verify: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) Reject(
	ctx context.Context,
	kind domain.Kind,
	id, verifierID, reason string,
	at time.Time,
) (*domain.RegistrationRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	req, err := resolve(ctx, tx, kind, id, domain.StatusRejected, verifierID, reason, at)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reject: %w", err)
	}

	return req, nil
}

// resolve moves a pending request to a terminal status. The conditional
// update makes concurrent resolutions serialize on the row: exactly one wins.
func resolve(
	ctx context.Context,
	tx *sql.Tx,
	kind domain.Kind,
	id string,
	to domain.PaymentStatus,
	verifierID, reason string,
	at time.Time,
) (*domain.RegistrationRequest, error) {
	query := `UPDATE registration_requests
			  SET status = $3, resolved_by = $4, rejection_reason = $5, resolved_at = $6
			  WHERE id = $1 AND kind = $2 AND status = $7
			  RETURNING ` + requestColumns

	req, err := scanRequest(tx.QueryRowContext(ctx, query,
		id, kind, to, verifierID, reason, at, domain.StatusPending,
	))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolve request: %w", err)
	}

	// Определяем причину: заявки нет или она уже закрыта
	var current domain.PaymentStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM registration_requests WHERE id = $1 AND kind = $2`, id, kind,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request status: %w", err)
	}

	if err = domain.ValidateTransition(current, to); err != nil {
		return nil, err
	}
	return nil, domain.ErrInvalidTransition
}

func (r *RequestRepository) CountStale(ctx context.Context, olderThan time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM registration_requests WHERE status = $1 AND created_at < $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.StatusPending, olderThan)
	if err != nil {
		return 0, fmt.Errorf("count stale requests: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan stale count: %w", err)
	}

	return count, nil
}
