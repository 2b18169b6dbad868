package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.bindJSON(c, &req) {
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:                 req.Title,
		Description:           req.Description,
		EventDate:             eventDate,
		MinTeamSize:           req.MinTeamSize,
		MaxTeamSize:           req.MaxTeamSize,
		RegistrationFeesInINR: req.RegistrationFeesInINR,
		EntryPassPriceInINR:   req.EntryPassPriceInINR,
		UpiAccountNumber:      req.UpiAccountNumber,
		UpiIfsc:               req.UpiIfsc,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), session, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "event")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}
