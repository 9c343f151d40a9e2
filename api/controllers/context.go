package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Saksham10-11/GSD/api/middleware"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
)

// currentUserID pulls the authenticated user out of the request context. The
// auth middleware always sets it on protected routes, so a miss is a wiring
// bug rather than a client error.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return uid, nil
}
