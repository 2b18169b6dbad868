package handler

import (
	"net/http"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitParticipantRequest(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.SubmitParticipantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.submit(c, session, domain.SubmitInput{
		Kind:            domain.KindParticipant,
		EventID:         req.EventID,
		TeamName:        req.TeamName,
		MemberIDs:       req.MemberIDs,
		PaymentProofURL: req.PaymentProofURL,
		PromoCode:       req.PromoCode,
	})
}

func (h *Handler) SubmitEntryPassRequest(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.SubmitEntryPassRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.submit(c, session, domain.SubmitInput{
		Kind:            domain.KindEntryPass,
		EventID:         req.EventID,
		PaymentProofURL: req.PaymentProofURL,
		PromoCode:       req.PromoCode,
	})
}

func (h *Handler) submit(c *ginext.Context, session domain.Session, input domain.SubmitInput) {
	pending, err := h.registrationService.Submit(c.Request.Context(), session, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(pending))
}

// ListRequests returns the list handler for one kind of pending request.
func (h *Handler) ListRequests(kind domain.Kind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var q dto.ListRequestsQuery
		if !h.bindQuery(c, &q) {
			return
		}

		page, err := h.registrationService.List(c.Request.Context(), session, q.Filter(kind))
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToRequestPageResponse(page))
	}
}

// ListPendingRegistrations is the verifier queue over both kinds.
func (h *Handler) ListPendingRegistrations(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var q dto.ListRequestsQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.registrationService.ListPending(c.Request.Context(), session, q.Filter(""))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestPageResponse(page))
}

func (h *Handler) GetRequest(kind domain.Kind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		id, ok := h.pathID(c, "request")
		if !ok {
			return
		}

		pending, err := h.registrationService.Get(c.Request.Context(), session, kind, id)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToRequestResponse(pending))
	}
}

func (h *Handler) VerifyRequest(kind domain.Kind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		id, ok := h.pathID(c, "request")
		if !ok {
			return
		}

		verified, err := h.registrationService.Verify(c.Request.Context(), session, kind, id)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToRequestResponse(verified))
	}
}

func (h *Handler) RejectRequest(kind domain.Kind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		id, ok := h.pathID(c, "request")
		if !ok {
			return
		}

		var req dto.RejectRequest
		if !h.bindJSON(c, &req) {
			return
		}

		rejected, err := h.registrationService.Reject(c.Request.Context(), session, kind, id, req.Reason)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToRequestResponse(rejected))
	}
}

func (h *Handler) GetRegistrationStatus(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "event")
	if !ok {
		return
	}

	var q dto.StatusQuery
	if !h.bindQuery(c, &q) {
		return
	}

	status, err := h.registrationService.Status(c.Request.Context(), session, eventID, domain.Kind(q.Kind))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}
