package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		promo *Promotion
		base  int64
		want  int64
	}{
		{
			name: "no promotion",
			base: 500,
			want: 500,
		},
		{
			name:  "percentage",
			promo: &Promotion{DiscountType: DiscountPercentage, DiscountValue: 20},
			base:  500,
			want:  400,
		},
		{
			name:  "percentage rounds discount down",
			promo: &Promotion{DiscountType: DiscountPercentage, DiscountValue: 15},
			base:  99,
			want:  85,
		},
		{
			name:  "percentage above hundred clamps to zero",
			promo: &Promotion{DiscountType: DiscountPercentage, DiscountValue: 150},
			base:  500,
			want:  0,
		},
		{
			name:  "flat capped by max discount",
			promo: &Promotion{DiscountType: DiscountFlat, DiscountValue: 300, MaxDiscountInINR: int64Ptr(100)},
			base:  500,
			want:  400,
		},
		{
			name:  "flat without cap",
			promo: &Promotion{DiscountType: DiscountFlat, DiscountValue: 300},
			base:  500,
			want:  200,
		},
		{
			name:  "flat larger than base",
			promo: &Promotion{DiscountType: DiscountFlat, DiscountValue: 900},
			base:  500,
			want:  0,
		},
		{
			name:  "negative value is no discount",
			promo: &Promotion{DiscountType: DiscountFlat, DiscountValue: -50},
			base:  500,
			want:  500,
		},
		{
			name:  "negative cap is no discount",
			promo: &Promotion{DiscountType: DiscountFlat, DiscountValue: 50, MaxDiscountInINR: int64Ptr(-1)},
			base:  500,
			want:  500,
		},
		{
			name:  "free base stays free",
			promo: &Promotion{DiscountType: DiscountPercentage, DiscountValue: 10},
			base:  0,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.promo, tt.base)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, max(tt.base, 0))
		})
	}
}

func TestPromotion_Usable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	p := &Promotion{Code: "EARLY", OrderType: KindParticipant, Active: true, ExpiresAt: &future}
	require.NoError(t, p.Usable(KindParticipant, now))

	err := p.Usable(KindEntryPass, now)
	assert.ErrorIs(t, err, ErrValidation)

	inactive := &Promotion{Code: "OFF", OrderType: KindParticipant}
	assert.ErrorIs(t, inactive.Usable(KindParticipant, now), ErrValidation)

	expired := &Promotion{Code: "OLD", OrderType: KindParticipant, Active: true, ExpiresAt: &past}
	assert.ErrorIs(t, expired.Usable(KindParticipant, now), ErrValidation)
}

func TestCreatePromotionInput_Validate(t *testing.T) {
	valid := CreatePromotionInput{
		Code:          "early",
		OrderType:     KindEntryPass,
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.DiscountValue = 101
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	bad = valid
	bad.OrderType = "ticket"
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	bad = valid
	bad.Code = "  "
	assert.ErrorIs(t, bad.Validate(), ErrValidation)
}
