package handler

import (
	"net/http"

	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) IssueEntryPass(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.IssueEntryPassRequest
	if !h.bindJSON(c, &req) {
		return
	}

	pass, err := h.entryPassService.Issue(c.Request.Context(), session, req.EventID, req.PromoCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryPassResponse(pass))
}

func (h *Handler) ListMyEntryPasses(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	passes, err := h.entryPassService.ListMine(c.Request.Context(), session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryPassesResponse(passes))
}

func (h *Handler) GetEntryPass(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "entry pass")
	if !ok {
		return
	}

	pass, err := h.entryPassService.Get(c.Request.Context(), session, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryPassResponse(pass))
}

func (h *Handler) ListEventEntryPasses(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	eventID, ok := h.pathID(c, "event")
	if !ok {
		return
	}

	passes, err := h.entryPassService.ListByEvent(c.Request.Context(), session, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryPassesResponse(passes))
}

func (h *Handler) CheckInEntryPass(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "entry pass")
	if !ok {
		return
	}

	pass, err := h.entryPassService.CheckIn(c.Request.Context(), session, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryPassResponse(pass))
}
