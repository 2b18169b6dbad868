package domain

import (
	"fmt"
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

type Promotion struct {
	ID               string       `json:"id"`
	Code             string       `json:"code"`
	OrderType        Kind         `json:"order_type"`
	DiscountType     DiscountType `json:"discount_type"`
	DiscountValue    int64        `json:"discount_value"`
	MaxDiscountInINR *int64       `json:"max_discount_in_inr,omitempty"`
	Active           bool         `json:"active"`
	ExpiresAt        *time.Time   `json:"expires_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

type CreatePromotionInput struct {
	Code             string
	OrderType        Kind
	DiscountType     DiscountType
	DiscountValue    int64
	MaxDiscountInINR *int64
	ExpiresAt        *time.Time
}

// Quote is the price of one order after an optional promotion.
type Quote struct {
	BaseAmountInINR       int64  `json:"base_amount_in_inr"`
	PromoCode             string `json:"promo_code,omitempty"`
	DiscountedAmountInINR int64  `json:"discounted_amount_in_inr"`
}

// Apply returns the amount due after promo is applied to base.
// The result is always within [0, base].
func Apply(promo *Promotion, base int64) int64 {
	if base <= 0 {
		return 0
	}
	if promo == nil {
		return base
	}

	value := promo.DiscountValue
	if value < 0 {
		value = 0
	}

	var discount int64
	switch promo.DiscountType {
	case DiscountPercentage:
		discount = min(value*base/100, base)
	case DiscountFlat:
		limit := value
		if promo.MaxDiscountInINR != nil {
			limit = max(*promo.MaxDiscountInINR, 0)
		}
		discount = min(value, base, limit)
	}

	return base - discount
}

// Usable reports whether promo can be applied to an order of kind at now.
func (p *Promotion) Usable(kind Kind, now time.Time) error {
	if !p.Active {
		return fmt.Errorf("%w: promo code %q is not active", ErrValidation, p.Code)
	}
	if p.OrderType != kind {
		return fmt.Errorf("%w: promo code %q is not valid for this order type", ErrValidation, p.Code)
	}
	if p.ExpiresAt != nil && !now.Before(*p.ExpiresAt) {
		return fmt.Errorf("%w: promo code %q has expired", ErrValidation, p.Code)
	}
	return nil
}

func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (in CreatePromotionInput) Validate() error {
	if NormalizePromoCode(in.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrValidation)
	}
	if !in.OrderType.Valid() {
		return fmt.Errorf("%w: unknown order type %q", ErrValidation, in.OrderType)
	}
	switch in.DiscountType {
	case DiscountPercentage:
		if in.DiscountValue < 0 || in.DiscountValue > 100 {
			return fmt.Errorf("%w: percentage discount must be within 0..100", ErrValidation)
		}
	case DiscountFlat:
		if in.DiscountValue < 0 {
			return fmt.Errorf("%w: flat discount must not be negative", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown discount type %q", ErrValidation, in.DiscountType)
	}
	if in.MaxDiscountInINR != nil && *in.MaxDiscountInINR < 0 {
		return fmt.Errorf("%w: max discount must not be negative", ErrValidation)
	}
	return nil
}

type PaymentInfo struct {
	Quote
	PayeeName string `json:"payee_name"`
	UPILink   string `json:"upi_link,omitempty"`
}
