package controllers

import (
	"net/http"

	"github.com/Saksham10-11/GSD/api/responses"
	"github.com/Saksham10-11/GSD/api/validators"
	checkoutsvc "github.com/Saksham10-11/GSD/internal/checkout"
	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
	"github.com/Saksham10-11/GSD/pkg/logger"
)

// Checkout converts the caller's active cart into an order, freezing the
// priced summary at submission time.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutsvc.CheckoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
