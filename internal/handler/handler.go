package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/stpnv0/EventPass/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, session domain.Session, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type UserSvc interface {
	Create(ctx context.Context, caller *domain.Session, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, session domain.Session) ([]*domain.User, error)
}

type RegistrationSvc interface {
	Submit(ctx context.Context, session domain.Session, input domain.SubmitInput) (*domain.RegistrationRequest, error)
	Get(ctx context.Context, session domain.Session, kind domain.Kind, id string) (*domain.RegistrationRequest, error)
	List(ctx context.Context, session domain.Session, filter domain.RequestFilter) (*domain.RequestPage, error)
	ListPending(ctx context.Context, session domain.Session, filter domain.RequestFilter) (*domain.RequestPage, error)
	Verify(ctx context.Context, session domain.Session, kind domain.Kind, id string) (*domain.RegistrationRequest, error)
	Reject(ctx context.Context, session domain.Session, kind domain.Kind, id string, reason string) (*domain.RegistrationRequest, error)
	Status(ctx context.Context, session domain.Session, eventID string, kind domain.Kind) (*domain.RegistrationStatus, error)
}

type ParticipantSvc interface {
	Register(ctx context.Context, session domain.Session, input domain.RegisterParticipantInput) (*domain.Participant, error)
	ListMine(ctx context.Context, session domain.Session) ([]*domain.Participant, error)
	ListByEvent(ctx context.Context, session domain.Session, eventID string) ([]*domain.Participant, error)
	UpdateAttendance(ctx context.Context, session domain.Session, id string, attendance domain.Attendance) (*domain.Participant, error)
}

type EntryPassSvc interface {
	Issue(ctx context.Context, session domain.Session, eventID string, promoCode string) (*domain.EntryPass, error)
	ListMine(ctx context.Context, session domain.Session) ([]*domain.EntryPass, error)
	Get(ctx context.Context, session domain.Session, id string) (*domain.EntryPass, error)
	ListByEvent(ctx context.Context, session domain.Session, eventID string) ([]*domain.EntryPass, error)
	CheckIn(ctx context.Context, session domain.Session, id string) (*domain.EntryPass, error)
}

type PromotionSvc interface {
	Create(ctx context.Context, session domain.Session, input domain.CreatePromotionInput) (*domain.Promotion, error)
	Quote(ctx context.Context, eventID string, kind domain.Kind, code string) (*domain.Quote, error)
	PaymentInfo(ctx context.Context, eventID string, kind domain.Kind, code string) (*domain.PaymentInfo, error)
}

type UploadSvc interface {
	Upload(ctx context.Context, size int64, r io.Reader) (string, error)
}

type Handler struct {
	eventService        EventSvc
	userService         UserSvc
	registrationService RegistrationSvc
	participantService  ParticipantSvc
	entryPassService    EntryPassSvc
	promotionService    PromotionSvc
	uploadService       UploadSvc
}

func NewHandler(
	eventService EventSvc,
	userService UserSvc,
	registrationService RegistrationSvc,
	participantService ParticipantSvc,
	entryPassService EntryPassSvc,
	promotionService PromotionSvc,
	uploadService UploadSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		userService:         userService,
		registrationService: registrationService,
		participantService:  participantService,
		entryPassService:    entryPassService,
		promotionService:    promotionService,
		uploadService:       uploadService,
	}
}

type validatable interface {
	Validate() error
}

// bindJSON: битый JSON -> 400, невалидные поля -> 422.
func (h *Handler) bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}

	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			h.validationFailed(c, err)
			return false
		}
	}

	return true
}

func (h *Handler) bindQuery(c *ginext.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) validationFailed(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	resp := dto.ErrorResponse{Error: domain.ErrValidation.Error()}
	var fields validation.Errors
	if errors.As(err, &fields) {
		resp.Details = fields
	} else {
		resp.Error = err.Error()
	}

	c.JSON(http.StatusUnprocessableEntity, resp)
}

// pathID достаёт uuid из пути; name попадает в текст ошибки.
func (h *Handler) pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) session(c *ginext.Context) (domain.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return domain.Session{}, false
	}
	return s, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpload):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.ErrUpload.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
