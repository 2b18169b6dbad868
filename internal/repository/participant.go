package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const participantColumns = `id, event_id, leader_id, team_name, member_ids, member_names, team_size,
	amount_paid_in_inr, promo_code, request_id, attendance, created_at`

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	var (
		p         domain.Participant
		requestID sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.EventID, &p.LeaderID, &p.TeamName,
		pq.Array(&p.MemberIDs), pq.Array(&p.MemberNames), &p.TeamSize,
		&p.AmountPaidInINR, &p.PromoCode, &requestID, &p.Attendance, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.RequestID = requestID.String
	return &p, nil
}

// insertParticipant is shared with the verification transaction.
func insertParticipant(ctx context.Context, db execer, p *domain.Participant) error {
	query := `INSERT INTO participants (` + participantColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := db.ExecContext(ctx, query,
		p.ID, p.EventID, p.LeaderID, p.TeamName,
		pq.Array(p.MemberIDs), pq.Array(p.MemberNames), p.TeamSize,
		p.AmountPaidInINR, p.PromoCode, nullString(p.RequestID), p.Attendance, p.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	return insertParticipant(ctx, r.db.Master, p)
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEventAndMember finds the team the user belongs to; the leader is always a member.
func (r *ParticipantRepository) GetByEventAndMember(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants
			  WHERE event_id = $1 AND member_ids @> ARRAY[$2]::uuid[]
			  ORDER BY created_at
			  LIMIT 1`
	return r.getOne(ctx, query, eventID, userID)
}

func (r *ParticipantRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Participant, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return p, nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants
			  WHERE event_id = $1
			  ORDER BY created_at`
	return r.list(ctx, query, eventID)
}

// ListByUser returns teams the user leads or is a member of.
func (r *ParticipantRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants
			  WHERE $1::uuid = ANY(member_ids)
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *ParticipantRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Participant, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ParticipantRepository) UpdateAttendance(ctx context.Context, id string, a domain.Attendance) (*domain.Participant, error) {
	query := `UPDATE participants SET attendance = $2
			  WHERE id = $1
			  RETURNING ` + participantColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, a)
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return p, nil
}
