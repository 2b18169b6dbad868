package dto

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/stpnv0/EventPass/internal/domain"
)

var (
	ifscPattern       = regexp.MustCompile(`^[A-Za-z]{4}0[A-Za-z0-9]{6}$`)
	upiAccountPattern = regexp.MustCompile(`^[0-9]{6,18}$`)
)

type CreateEventRequest struct {
	Title                 string `json:"title" binding:"required"`
	Description           string `json:"description"`
	EventDate             string `json:"event_date" binding:"required"`
	MinTeamSize           int    `json:"min_team_size" binding:"required"`
	MaxTeamSize           int    `json:"max_team_size" binding:"required"`
	RegistrationFeesInINR int64  `json:"registration_fees_in_inr"`
	EntryPassPriceInINR   int64  `json:"entry_pass_price_in_inr"`
	UpiAccountNumber      string `json:"upi_account_number"`
	UpiIfsc               string `json:"upi_ifsc"`
}

func (r *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.MinTeamSize, validation.Required, validation.Min(1)),
		validation.Field(&r.MaxTeamSize, validation.Required, validation.Min(r.MinTeamSize)),
		validation.Field(&r.RegistrationFeesInINR, validation.Min(0)),
		validation.Field(&r.EntryPassPriceInINR, validation.Min(0)),
		validation.Field(&r.UpiAccountNumber, validation.Match(upiAccountPattern)),
		validation.Field(&r.UpiIfsc, validation.Match(ifscPattern)),
	)
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Role           string `json:"role"`
	Organisation   string `json:"organisation"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, validation.In(
			string(domain.RoleAdmin), string(domain.RolePaymentVerifier), string(domain.RoleOrganiser),
		)),
		validation.Field(&r.Organisation, validation.Length(0, 200)),
	)
}

type SubmitParticipantRequest struct {
	EventID         string   `json:"event_id" binding:"required,uuid"`
	TeamName        string   `json:"team_name"`
	MemberIDs       []string `json:"member_ids" binding:"omitempty,dive,uuid"`
	PaymentProofURL string   `json:"payment_proof_url"`
	PromoCode       string   `json:"promo_code"`
}

func (r *SubmitParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.TeamName, validation.Length(0, 100)),
		validation.Field(&r.PaymentProofURL, is.URL),
		validation.Field(&r.PromoCode, validation.Length(0, 50)),
	)
}

type SubmitEntryPassRequest struct {
	EventID         string `json:"event_id" binding:"required,uuid"`
	PaymentProofURL string `json:"payment_proof_url"`
	PromoCode       string `json:"promo_code"`
}

func (r *SubmitEntryPassRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.PaymentProofURL, is.URL),
		validation.Field(&r.PromoCode, validation.Length(0, 50)),
	)
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// ListRequestsQuery is shared by the per-kind lists and the verifier queue.
type ListRequestsQuery struct {
	EventID string `form:"event_id" binding:"omitempty,uuid"`
	Query   string `form:"q"`
	Status  string `form:"status" binding:"omitempty,oneof=pending verified rejected"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListRequestsQuery) Filter(kind domain.Kind) domain.RequestFilter {
	return domain.RequestFilter{
		Kind:    kind,
		EventID: q.EventID,
		Query:   q.Query,
		Status:  domain.PaymentStatus(q.Status),
		Page:    q.Page,
		Limit:   q.Limit,
	}
}

type StatusQuery struct {
	Kind string `form:"kind" binding:"required,oneof=participant entry_pass"`
}

type RegisterParticipantRequest struct {
	EventID   string   `json:"event_id" binding:"required,uuid"`
	TeamName  string   `json:"team_name"`
	MemberIDs []string `json:"member_ids" binding:"omitempty,dive,uuid"`
	PromoCode string   `json:"promo_code"`
}

type IssueEntryPassRequest struct {
	EventID   string `json:"event_id" binding:"required,uuid"`
	PromoCode string `json:"promo_code"`
}

type UpdateAttendanceRequest struct {
	Attendance string `json:"attendance" binding:"required"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Attendance, validation.Required, validation.In(
			string(domain.AttendancePending), string(domain.AttendancePresent), string(domain.AttendanceAbsent),
		)),
	)
}

type CreatePromotionRequest struct {
	Code             string     `json:"code" binding:"required"`
	OrderType        string     `json:"order_type" binding:"required"`
	DiscountType     string     `json:"discount_type" binding:"required"`
	DiscountValue    int64      `json:"discount_value"`
	MaxDiscountInINR *int64     `json:"max_discount_in_inr"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

func (r *CreatePromotionRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Code, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.OrderType, validation.Required, validation.In(
			string(domain.KindParticipant), string(domain.KindEntryPass),
		)),
		validation.Field(&r.DiscountType, validation.Required, validation.In(
			string(domain.DiscountPercentage), string(domain.DiscountFlat),
		)),
		validation.Field(&r.DiscountValue, validation.Min(0)),
		validation.Field(&r.MaxDiscountInINR, validation.Min(0)),
	)
}

// PriceQuery serves both the promo quote and the payment info endpoints.
type PriceQuery struct {
	EventID string `form:"event" binding:"omitempty,uuid"`
	Kind    string `form:"kind" binding:"required,oneof=participant entry_pass"`
	Code    string `form:"code"`
	Promo   string `form:"promo"`
}

// PromoCode accepts both ?code= and ?promo=.
func (q PriceQuery) PromoCode() string {
	if q.Code != "" {
		return q.Code
	}
	return q.Promo
}
