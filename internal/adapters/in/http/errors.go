package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/pkg/errs"
)

// errorResponse is the JSON body every failed request carries.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates the error taxonomy to HTTP status codes. Not-found
// maps to 404, invalid input to 400, broken business rules to 422, and a
// missing catalog entry to 500 because it is a deployment defect.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrDomainViolation),
		errors.Is(err, commands.ErrNoEligibleShipments):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidConfiguration):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
