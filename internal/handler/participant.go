package handler

import (
	"net/http"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// RegisterParticipant is the direct path for events with nothing to pay.
func (h *Handler) RegisterParticipant(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.RegisterParticipantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.participantService.Register(c.Request.Context(), session, domain.RegisterParticipantInput{
		EventID:   req.EventID,
		TeamName:  req.TeamName,
		MemberIDs: req.MemberIDs,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(p))
}

func (h *Handler) ListMyParticipations(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	ps, err := h.participantService.ListMine(c.Request.Context(), session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantsResponse(ps))
}

func (h *Handler) ListEventParticipants(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "event")
	if !ok {
		return
	}

	ps, err := h.participantService.ListByEvent(c.Request.Context(), session, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantsResponse(ps))
}

func (h *Handler) UpdateAttendance(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "participant")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.participantService.UpdateAttendance(c.Request.Context(), session, id, domain.Attendance(req.Attendance))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(p))
}
