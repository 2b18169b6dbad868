package domain

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindParticipant Kind = "participant"
	KindEntryPass   Kind = "entry_pass"
)

func (k Kind) Valid() bool {
	return k == KindParticipant || k == KindEntryPass
}

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusVerified PaymentStatus = "verified"
	StatusRejected PaymentStatus = "rejected"
)

func (s PaymentStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// verified и rejected терминальные
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:  {StatusVerified, StatusRejected},
	StatusVerified: {},
	StatusRejected: {},
}

func CanTransition(from, to PaymentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to PaymentStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// RegistrationRequest is a submission waiting for a verifier to check the
// payment proof. Members, names and amounts are frozen at submit time.
type RegistrationRequest struct {
	ID                    string        `json:"id"`
	Kind                  Kind          `json:"kind"`
	EventID               string        `json:"event_id"`
	SubmitterID           string        `json:"submitter_id"`
	TeamName              string        `json:"team_name,omitempty"`
	MemberIDs             []string      `json:"member_ids"`
	MemberNames           []string      `json:"member_names"`
	TeamSize              int           `json:"team_size"`
	PaymentProofURL       string        `json:"payment_proof_url"`
	BaseAmountInINR       int64         `json:"base_amount_in_inr"`
	PromoCode             string        `json:"promo_code,omitempty"`
	DiscountedAmountInINR int64         `json:"discounted_amount_in_inr"`
	Status                PaymentStatus `json:"status"`
	RejectionReason       string        `json:"rejection_reason,omitempty"`
	ResolvedBy            string        `json:"resolved_by,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	ResolvedAt            *time.Time    `json:"resolved_at,omitempty"`
}

type SubmitInput struct {
	Kind            Kind
	EventID         string
	TeamName        string
	MemberIDs       []string
	PaymentProofURL string
	PromoCode       string
}

type RequestFilter struct {
	Kind        Kind
	EventID     string
	SubmitterID string
	Query       string
	Status      PaymentStatus
	Page        int
	Limit       int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps paging to sane values.
func (f *RequestFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
}

func (f RequestFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type RequestPage struct {
	Items []*RegistrationRequest `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// RegistrationStatus is what a client polls while waiting for verification.
type RegistrationStatus struct {
	Pending          bool                 `json:"pending"`
	Request          *RegistrationRequest `json:"request,omitempty"`
	Confirmed        bool                 `json:"confirmed"`
	PollAfterSeconds int                  `json:"poll_after_seconds"`
}

func ParticipantFromRequest(r *RegistrationRequest, id string) *Participant {
	return &Participant{
		ID:              id,
		EventID:         r.EventID,
		LeaderID:        r.SubmitterID,
		TeamName:        r.TeamName,
		MemberIDs:       append([]string(nil), r.MemberIDs...),
		MemberNames:     append([]string(nil), r.MemberNames...),
		TeamSize:        r.TeamSize,
		AmountPaidInINR: r.DiscountedAmountInINR,
		PromoCode:       r.PromoCode,
		RequestID:       r.ID,
		Attendance:      AttendancePending,
	}
}

func EntryPassFromRequest(r *RegistrationRequest, id string) *EntryPass {
	var name string
	if len(r.MemberNames) > 0 {
		name = r.MemberNames[0]
	}

	return &EntryPass{
		ID:              id,
		EventID:         r.EventID,
		UserID:          r.SubmitterID,
		UserName:        name,
		AmountPaidInINR: r.DiscountedAmountInINR,
		PromoCode:       r.PromoCode,
		RequestID:       r.ID,
	}
}
