package handler

import (
	"errors"
	"net/http"

	"github.com/bounty-bunny/DataSage/internal/api/response"
	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// writeError maps the domain error taxonomy onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrAccessDenied):
		response.Forbidden(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredential):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrDuplicateWorkspaceName):
		response.Conflict(w, err.Error())
	case errors.Is(err, domain.ErrInvalidChartType),
		errors.Is(err, domain.ErrEmptyColumnSelection):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrStoreBusy):
		response.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
