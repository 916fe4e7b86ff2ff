package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/apierr"
	"github.com/bailanysta/api/pkg/slogx"
)

// writeServiceError maps service and store sentinels onto the wire taxonomy.
// Anything unrecognized is a 500 and gets logged; the caller only ever sees
// the generic message.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		apierr.ErrUnauthorized.WriteError(w)
	case errors.Is(err, service.ErrMissingFields):
		apierr.ErrBadRequest.WithMessage("please provide all required fields").WriteError(w)
	case errors.Is(err, service.ErrInvalidEmail):
		apierr.ErrBadRequest.WithMessage("invalid email address").WriteError(w)
	case errors.Is(err, service.ErrShortPassword):
		apierr.ErrBadRequest.WithMessage("password is too short").WriteError(w)
	case errors.Is(err, service.ErrSelfFollow):
		apierr.ErrBadRequest.WithMessage("you cannot follow yourself").WriteError(w)
	case errors.Is(err, service.ErrEmptyContent):
		apierr.ErrBadRequest.WithMessage("content must not be empty").WriteError(w)
	case errors.Is(err, service.ErrNotOwner):
		apierr.ErrForbidden.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		apierr.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		apierr.ErrConflict.WithMessage("a user with this username or email already exists").WriteError(w)
	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		apierr.ErrServerError.WriteError(w)
	}
}
