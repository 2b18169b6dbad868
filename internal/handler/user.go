package handler

import (
	"net/http"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/stpnv0/EventPass/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// CreateUser is public; a session, if any, decides whether the role is kept.
func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	var caller *domain.Session
	if s, ok := middleware.GetSession(c); ok {
		caller = &s
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		Organisation:   req.Organisation,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), caller, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMe(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
