package travelapi

import (
	"net/http"

	"github.com/phsants/usetravel-service/internal/pkg/exception"
)

// ErrUnexpectedResponse means the upstream answered with a non-2xx
// status or a body that is not JSON. The fetch is treated as failed,
// never partially successful.
var ErrUnexpectedResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "Resposta inesperada do servidor",
}

var ErrRetryExceeded = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "retry exceeded",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "upstream rate limit exceeded",
}
