package apperrors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
	KindInternal
)

// Error est l'erreur métier typée remontée par les services.
// Le middleware HTTP la traduit en statut + enveloppe uniforme.
type Error struct {
	Kind    Kind
	Message string
	Code    string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Code: "BAD_REQUEST"}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, Code: "UNAUTHORIZED"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message, Code: "FORBIDDEN"}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Code: "NOT_FOUND"}
}

func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Message: message, Code: "VALIDATION_ERROR", Details: details}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Code: "CONFLICT"}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Code: "INTERNAL_ERROR"}
}

// HTTPStatus mappe chaque kind vers son statut HTTP
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromDB traduit les erreurs GORM en erreurs métier pour ne jamais
// laisser fuiter le vocabulaire du moteur de stockage vers le client
func FromDB(err error, notFoundMessage string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMessage)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("Cette valeur existe déjà (contrainte d'unicité)")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return BadRequest("Référence invalide vers une autre entité")
	default:
		return &Error{Kind: KindInternal, Message: "Erreur base de données", Code: "DATABASE_ERROR"}
	}
}

// AsAppError extrait une *Error d'une chaîne d'erreurs quelconque
func AsAppError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
