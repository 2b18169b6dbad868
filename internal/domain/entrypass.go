package domain

import "time"

type EntryPass struct {
	ID              string     `json:"id"`
	EventID         string     `json:"event_id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	AmountPaidInINR int64      `json:"amount_paid_in_inr"`
	PromoCode       string     `json:"promo_code,omitempty"`
	RequestID       string     `json:"request_id,omitempty"`
	IsUsed          bool       `json:"is_used"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
