// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// Describe turns an error returned by the services into the notice shown to
// the user. Unknown errors become a generic internal error notice.
func Describe(err error) models.Notice {
	switch {
	case err == nil:
		return models.Notice{}

	case errors.Is(err, validators.ErrIncompleteForm):
		return models.Notice{Title: app.TitleIncompleteForm, Message: app.MsgIncompleteForm}
	case errors.Is(err, validators.ErrPasswordMismatch):
		return models.Notice{Title: app.TitlePasswordMismatch, Message: app.MsgPasswordMismatch}
	case errors.Is(err, validators.ErrPasswordTooShort):
		return models.Notice{Title: app.TitleWeakPassword, Message: app.MsgWeakPassword}
	case errors.Is(err, validators.ErrInvalidOTP):
		return models.Notice{Title: app.TitleInvalidOTP, Message: app.MsgInvalidOTP}
	case errors.Is(err, validators.ErrReadOnlyField):
		return models.Notice{Title: app.TitleReadOnlyField, Message: app.MsgReadOnlyField}
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return models.Notice{Title: app.TitleNothingToUpdate, Message: app.MsgNothingToUpdate}
	case errors.Is(err, validators.ErrUnsupportedType),
		errors.Is(err, validators.ErrUnknownField),
		errors.Is(err, ErrInvalidDataProvided):
		return models.Notice{Title: app.TitleInvalidData, Message: app.MsgInvalidData}

	case errors.Is(err, ErrBusinessNotFound):
		return models.Notice{Title: app.TitleBusinessNotFound, Message: app.MsgBusinessNotFound}
	case errors.Is(err, ErrWrongPassword):
		return models.Notice{Title: app.TitleWrongPassword, Message: app.MsgWrongPassword}
	case errors.Is(err, ErrNotLoggedIn),
		errors.Is(err, ErrTokenIsExpiredOrInvalid),
		errors.Is(err, ErrSessionMismatch):
		return models.Notice{Title: app.TitleSessionExpired, Message: app.MsgLoginRequired}

	case errors.Is(err, ErrInvoiceNotFound):
		return models.Notice{Title: app.TitleInvoiceNotFound, Message: app.MsgInvoiceNotFound}
	case errors.Is(err, invoice.ErrInvalidTypeFilter),
		errors.Is(err, invoice.ErrInvalidSortField),
		errors.Is(err, invoice.ErrInvalidSortDirection),
		errors.Is(err, invoice.ErrInvalidInvoiceType),
		errors.Is(err, invoice.ErrInvalidAction):
		return models.Notice{Title: app.TitleInvalidQuery, Message: app.MsgInvalidQuery}

	case errors.Is(err, store.ErrStoreUnavailable):
		return models.Notice{Title: app.TitleStorageUnavailable, Message: app.MsgStorageUnavailable}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.Notice{Title: app.TitleCancelled, Message: app.MsgCancelled}
	}

	return models.Notice{Title: app.TitleInternalError, Message: app.MsgInternalError}
}
