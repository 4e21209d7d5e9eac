package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
	"github.com/MKhiriev/go-invoice-audit/models"
)

const loginPath = "/login"

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:    http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:  http.StatusUnauthorized,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	validators.ErrIncompleteForm:   http.StatusBadRequest,
	validators.ErrPasswordMismatch: http.StatusBadRequest,
	validators.ErrPasswordTooShort: http.StatusBadRequest,
	validators.ErrInvalidOTP:       http.StatusBadRequest,
	validators.ErrReadOnlyField:    http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,
	validators.ErrUnknownField:     http.StatusBadRequest,

	service.ErrBusinessNotFound:        http.StatusNotFound,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrNotLoggedIn:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSessionMismatch:         http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrInvoiceNotFound:         http.StatusNotFound,

	invoice.ErrInvalidTypeFilter:    http.StatusBadRequest,
	invoice.ErrInvalidSortField:     http.StatusBadRequest,
	invoice.ErrInvalidSortDirection: http.StatusBadRequest,
	invoice.ErrInvalidInvoiceType:   http.StatusBadRequest,
	invoice.ErrInvalidAction:        http.StatusBadRequest,

	store.ErrStoreUnavailable: http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         http.StatusRequestTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status and notice for err. Unauthorized
// answers point the browser shell at the login page.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	notice := describe(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("Location", loginPath)
	}
	utils.WriteError(w, status, notice.Title, notice.Message)
}

func describe(err error) models.Notice {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return models.Notice{Title: app.TitleInvalidData, Message: app.MsgInvalidData}
	case errors.Is(err, ErrEmptyAuthorizationHeader), errors.Is(err, ErrInvalidAuthorizationHeader):
		return models.Notice{Title: app.TitleSessionExpired, Message: app.MsgLoginRequired}
	}
	return service.Describe(err)
}
