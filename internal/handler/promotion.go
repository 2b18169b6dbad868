package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreatePromotion(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.CreatePromotionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	promo, err := h.promotionService.Create(c.Request.Context(), session, domain.CreatePromotionInput{
		Code:             req.Code,
		OrderType:        domain.Kind(req.OrderType),
		DiscountType:     domain.DiscountType(req.DiscountType),
		DiscountValue:    req.DiscountValue,
		MaxDiscountInINR: req.MaxDiscountInINR,
		ExpiresAt:        req.ExpiresAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromotionResponse(promo))
}

func (h *Handler) QuotePromotion(c *ginext.Context) {
	var q dto.PriceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	if _, err := uuid.Parse(q.EventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	quote, err := h.promotionService.Quote(c.Request.Context(), q.EventID, domain.Kind(q.Kind), q.PromoCode())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *Handler) GetPaymentInfo(c *ginext.Context) {
	eventID, ok := h.pathID(c, "event")
	if !ok {
		return
	}

	var q dto.PriceQuery
	if !h.bindQuery(c, &q) {
		return
	}

	info, err := h.promotionService.PaymentInfo(c.Request.Context(), eventID, domain.Kind(q.Kind), q.PromoCode())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentInfoResponse(info))
}
