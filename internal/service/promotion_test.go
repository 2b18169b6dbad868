package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPromotionService(t *testing.T) (*PromotionService, *mocks.MockPromotionRepo, *mocks.MockEventRepo) {
	t.Helper()
	promoRepo := mocks.NewMockPromotionRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewPromotionService(promoRepo, eventRepo, "Tech Club")
	svc.now = func() time.Time { return fixedNow }
	return svc, promoRepo, eventRepo
}

func TestPromotionService_Create(t *testing.T) {
	svc, promoRepo, _ := newPromotionService(t)

	promoRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), domain.Session{UserID: "a1", Role: domain.RoleAdmin}, domain.CreatePromotionInput{
		Code:          " early ",
		OrderType:     domain.KindParticipant,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "EARLY", p.Code)
	assert.True(t, p.Active)
}

func TestPromotionService_Create_AdminOnly(t *testing.T) {
	svc, _, _ := newPromotionService(t)

	_, err := svc.Create(context.Background(), domain.Session{UserID: "org1", Role: domain.RoleOrganiser}, domain.CreatePromotionInput{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPromotionService_Quote_FlatCapped(t *testing.T) {
	svc, promoRepo, eventRepo := newPromotionService(t)

	maxDiscount := int64(100)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	promoRepo.EXPECT().GetByCode(mock.Anything, "FLAT300", domain.KindParticipant).Return(&domain.Promotion{
		Code:             "FLAT300",
		OrderType:        domain.KindParticipant,
		DiscountType:     domain.DiscountFlat,
		DiscountValue:    300,
		MaxDiscountInINR: &maxDiscount,
		Active:           true,
	}, nil)

	q, err := svc.Quote(context.Background(), "e1", domain.KindParticipant, "flat300")

	require.NoError(t, err)
	assert.Equal(t, int64(500), q.BaseAmountInINR)
	assert.Equal(t, int64(400), q.DiscountedAmountInINR)
	assert.Equal(t, "FLAT300", q.PromoCode)
}

func TestPromotionService_Quote_Expired(t *testing.T) {
	svc, promoRepo, eventRepo := newPromotionService(t)

	expired := fixedNow.Add(-time.Minute)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)
	promoRepo.EXPECT().GetByCode(mock.Anything, "OLD", domain.KindEntryPass).Return(&domain.Promotion{
		Code:          "OLD",
		OrderType:     domain.KindEntryPass,
		DiscountType:  domain.DiscountFlat,
		DiscountValue: 50,
		Active:        true,
		ExpiresAt:     &expired,
	}, nil)

	_, err := svc.Quote(context.Background(), "e1", domain.KindEntryPass, "OLD")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPromotionService_PaymentInfo(t *testing.T) {
	svc, _, eventRepo := newPromotionService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(teamEvent(), nil)

	info, err := svc.PaymentInfo(context.Background(), "e1", domain.KindEntryPass, "")

	require.NoError(t, err)
	assert.Equal(t, int64(150), info.DiscountedAmountInINR)
	assert.Equal(t, "Tech Club", info.PayeeName)
	assert.Contains(t, info.UPILink, "am=150")
	assert.Contains(t, info.UPILink, "pa=1234567890%40SBIN0001234.ifsc.npci")
}

func TestPromotionService_PaymentInfo_FreeHasNoLink(t *testing.T) {
	svc, _, eventRepo := newPromotionService(t)

	event := teamEvent()
	event.RegistrationFeesInINR = 0
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	info, err := svc.PaymentInfo(context.Background(), "e1", domain.KindParticipant, "")

	require.NoError(t, err)
	assert.Zero(t, info.DiscountedAmountInINR)
	assert.Empty(t, info.UPILink)
}
