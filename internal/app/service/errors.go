package service

import (
	"net/http"

	"github.com/phsants/usetravel-service/internal/pkg/exception"
)

// ErrNoOffersFound is returned when an export is requested over a view
// that filtered down to nothing; there is no report to build.
var ErrNoOffersFound = exception.ApplicationError{
	Message:    "Nenhuma oferta encontrada",
	StatusCode: http.StatusNotFound,
}
