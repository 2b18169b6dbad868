package domain

import "errors"

// Категории ошибок. Конкретные ошибки ниже матчатся через errors.Is
// и с собой, и со своей категорией.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpload       = errors.New("upload failed")
)

type categoryError struct {
	msg      string
	category error
}

func (e *categoryError) Error() string { return e.msg }

func (e *categoryError) Is(target error) bool { return target == e.category }

func newError(category error, msg string) error {
	return &categoryError{msg: msg, category: category}
}

var (
	ErrEventNotFound       = newError(ErrNotFound, "event not found")
	ErrUserNotFound        = newError(ErrNotFound, "user not found")
	ErrRequestNotFound     = newError(ErrNotFound, "registration request not found")
	ErrParticipantNotFound = newError(ErrNotFound, "participant not found")
	ErrEntryPassNotFound   = newError(ErrNotFound, "entry pass not found")
	ErrPromotionNotFound   = newError(ErrNotFound, "promotion not found")
)

var (
	ErrAlreadyPending     = newError(ErrConflict, "a registration request is already pending for this event")
	ErrInvalidTransition  = newError(ErrConflict, "registration request is already resolved")
	ErrAlreadyRegistered  = newError(ErrConflict, "already registered for this event")
	ErrEntryPassUsed      = newError(ErrConflict, "entry pass has already been used")
	ErrEmailTaken         = newError(ErrConflict, "email is already taken")
	ErrPromotionCodeTaken = newError(ErrConflict, "promotion code already exists for this order type")
)

var (
	ErrReasonRequired      = newError(ErrValidation, "rejection reason is required")
	ErrUnsupportedFileType = newError(ErrValidation, "unsupported file type")
	ErrFileTooLarge        = newError(ErrValidation, "file is too large")
)

var (
	ErrNotVerifier        = newError(ErrForbidden, "only admins and payment verifiers can resolve payments")
	ErrNotEventManager    = newError(ErrForbidden, "only the event organiser or an admin can do this")
	ErrNotAdmin           = newError(ErrForbidden, "admin role required")
	ErrCannotCreateEvents = newError(ErrForbidden, "only organisers and admins can create events")
)
