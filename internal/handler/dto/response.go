package dto

import (
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type EventResponse struct {
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	Description           string `json:"description"`
	EventDate             string `json:"event_date"`
	MinTeamSize           int    `json:"min_team_size"`
	MaxTeamSize           int    `json:"max_team_size"`
	RegistrationFeesInINR int64  `json:"registration_fees_in_inr"`
	EntryPassPriceInINR   int64  `json:"entry_pass_price_in_inr"`
	UpiAccountNumber      string `json:"upi_account_number"`
	UpiIfsc               string `json:"upi_ifsc"`
	OrganiserID           string `json:"organiser_id"`
	CreatedAt             string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Organisation   string `json:"organisation,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RequestResponse struct {
	ID                    string   `json:"id"`
	Kind                  string   `json:"kind"`
	EventID               string   `json:"event_id"`
	SubmitterID           string   `json:"submitter_id"`
	TeamName              string   `json:"team_name,omitempty"`
	MemberIDs             []string `json:"member_ids"`
	MemberNames           []string `json:"member_names"`
	TeamSize              int      `json:"team_size"`
	PaymentProofURL       string   `json:"payment_proof_url"`
	BaseAmountInINR       int64    `json:"base_amount_in_inr"`
	PromoCode             string   `json:"promo_code,omitempty"`
	DiscountedAmountInINR int64    `json:"discounted_amount_in_inr"`
	Status                string   `json:"status"`
	RejectionReason       string   `json:"rejection_reason,omitempty"`
	ResolvedBy            string   `json:"resolved_by,omitempty"`
	CreatedAt             string   `json:"created_at"`
	ResolvedAt            *string  `json:"resolved_at,omitempty"`
}

type RequestPageResponse struct {
	Items []RequestResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type StatusResponse struct {
	Pending          bool             `json:"pending"`
	Confirmed        bool             `json:"confirmed"`
	Request          *RequestResponse `json:"request,omitempty"`
	PollAfterSeconds int              `json:"poll_after_seconds"`
}

type ParticipantResponse struct {
	ID              string   `json:"id"`
	EventID         string   `json:"event_id"`
	LeaderID        string   `json:"leader_id"`
	TeamName        string   `json:"team_name"`
	MemberIDs       []string `json:"member_ids"`
	MemberNames     []string `json:"member_names"`
	TeamSize        int      `json:"team_size"`
	AmountPaidInINR int64    `json:"amount_paid_in_inr"`
	PromoCode       string   `json:"promo_code,omitempty"`
	RequestID       string   `json:"request_id,omitempty"`
	Attendance      string   `json:"attendance"`
	CreatedAt       string   `json:"created_at"`
}

type EntryPassResponse struct {
	ID              string  `json:"id"`
	EventID         string  `json:"event_id"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	AmountPaidInINR int64   `json:"amount_paid_in_inr"`
	PromoCode       string  `json:"promo_code,omitempty"`
	RequestID       string  `json:"request_id,omitempty"`
	IsUsed          bool    `json:"is_used"`
	UsedAt          *string `json:"used_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type PromotionResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	OrderType        string  `json:"order_type"`
	DiscountType     string  `json:"discount_type"`
	DiscountValue    int64   `json:"discount_value"`
	MaxDiscountInINR *int64  `json:"max_discount_in_inr,omitempty"`
	Active           bool    `json:"active"`
	ExpiresAt        *string `json:"expires_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type QuoteResponse struct {
	BaseAmountInINR       int64  `json:"base_amount_in_inr"`
	PromoCode             string `json:"promo_code,omitempty"`
	DiscountedAmountInINR int64  `json:"discounted_amount_in_inr"`
}

type PaymentInfoResponse struct {
	QuoteResponse
	PayeeName string `json:"payee_name"`
	UPILink   string `json:"upi_link,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                    e.ID,
		Title:                 e.Title,
		Description:           e.Description,
		EventDate:             formatTime(e.EventDate),
		MinTeamSize:           e.MinTeamSize,
		MaxTeamSize:           e.MaxTeamSize,
		RegistrationFeesInINR: e.RegistrationFeesInINR,
		EntryPassPriceInINR:   e.EntryPassPriceInINR,
		UpiAccountNumber:      e.UpiAccountNumber,
		UpiIfsc:               e.UpiIfsc,
		OrganiserID:           e.OrganiserID,
		CreatedAt:             formatTime(e.CreatedAt),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(domain.ResolveRole(u)),
		Organisation:   u.Organisation,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      formatTime(u.CreatedAt),
	}
}

func ToRequestResponse(r *domain.RegistrationRequest) RequestResponse {
	return RequestResponse{
		ID:                    r.ID,
		Kind:                  string(r.Kind),
		EventID:               r.EventID,
		SubmitterID:           r.SubmitterID,
		TeamName:              r.TeamName,
		MemberIDs:             r.MemberIDs,
		MemberNames:           r.MemberNames,
		TeamSize:              r.TeamSize,
		PaymentProofURL:       r.PaymentProofURL,
		BaseAmountInINR:       r.BaseAmountInINR,
		PromoCode:             r.PromoCode,
		DiscountedAmountInINR: r.DiscountedAmountInINR,
		Status:                string(r.Status),
		RejectionReason:       r.RejectionReason,
		ResolvedBy:            r.ResolvedBy,
		CreatedAt:             formatTime(r.CreatedAt),
		ResolvedAt:            formatTimePtr(r.ResolvedAt),
	}
}

func ToRequestPageResponse(p *domain.RequestPage) RequestPageResponse {
	items := make([]RequestResponse, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, ToRequestResponse(r))
	}

	return RequestPageResponse{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

func ToStatusResponse(s *domain.RegistrationStatus) StatusResponse {
	resp := StatusResponse{
		Pending:          s.Pending,
		Confirmed:        s.Confirmed,
		PollAfterSeconds: s.PollAfterSeconds,
	}
	if s.Request != nil {
		r := ToRequestResponse(s.Request)
		resp.Request = &r
	}
	return resp
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:              p.ID,
		EventID:         p.EventID,
		LeaderID:        p.LeaderID,
		TeamName:        p.TeamName,
		MemberIDs:       p.MemberIDs,
		MemberNames:     p.MemberNames,
		TeamSize:        p.TeamSize,
		AmountPaidInINR: p.AmountPaidInINR,
		PromoCode:       p.PromoCode,
		RequestID:       p.RequestID,
		Attendance:      string(p.Attendance),
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func ToParticipantsResponse(ps []*domain.Participant) []ParticipantResponse {
	resp := make([]ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, ToParticipantResponse(p))
	}
	return resp
}

func ToEntryPassResponse(p *domain.EntryPass) EntryPassResponse {
	return EntryPassResponse{
		ID:              p.ID,
		EventID:         p.EventID,
		UserID:          p.UserID,
		UserName:        p.UserName,
		AmountPaidInINR: p.AmountPaidInINR,
		PromoCode:       p.PromoCode,
		RequestID:       p.RequestID,
		IsUsed:          p.IsUsed,
		UsedAt:          formatTimePtr(p.UsedAt),
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func ToEntryPassesResponse(ps []*domain.EntryPass) []EntryPassResponse {
	resp := make([]EntryPassResponse, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, ToEntryPassResponse(p))
	}
	return resp
}

func ToPromotionResponse(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:               p.ID,
		Code:             p.Code,
		OrderType:        string(p.OrderType),
		DiscountType:     string(p.DiscountType),
		DiscountValue:    p.DiscountValue,
		MaxDiscountInINR: p.MaxDiscountInINR,
		Active:           p.Active,
		ExpiresAt:        formatTimePtr(p.ExpiresAt),
		CreatedAt:        formatTime(p.CreatedAt),
	}
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		BaseAmountInINR:       q.BaseAmountInINR,
		PromoCode:             q.PromoCode,
		DiscountedAmountInINR: q.DiscountedAmountInINR,
	}
}

func ToPaymentInfoResponse(p *domain.PaymentInfo) PaymentInfoResponse {
	return PaymentInfoResponse{
		QuoteResponse: ToQuoteResponse(&p.Quote),
		PayeeName:     p.PayeeName,
		UPILink:       p.UPILink,
	}
}
