package handlers

import (
	"errors"
	"log"
	"net/http"

	"meshguard_api/internal/adapter/http/middleware"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/phone"
	"meshguard_api/internal/usecase"
	"meshguard_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapError translates use case sentinels into the API error envelope. Anything
// unknown becomes a generic 500; the cause is only logged.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, phone.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Phone must look like 07XXXXXXXX or 2547XXXXXXXX", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Name, a valid email and a password of at least 6 characters are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Width, height, window count, mesh and material are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Status must be one of pending, confirmed, paid, completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidLocation),
		errors.Is(err, usecase.ErrInvalidContactMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteDocumentsOffline):
		return pkg.NewDomainErrorSimple("DOCUMENTS_UNAVAILABLE", "Quote documents are not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] internal error path=%s err=%v", area, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actorOrAbort reads the authenticated caller; routes mounted without
// RequireAuth answer 401.
func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.UserID == "" {
		c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
