package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/phsants/usetravel-service/internal/pkg/exception"
)

// DecodeRequestFunc extracts the endpoint request from an HTTP request.
type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, respWriter http.ResponseWriter, response interface{}) error

// MakeHandlerFunc glues one endpoint into the HTTP layer. Every failure,
// decode, business or encode, is funneled through ErrorResponse.
func MakeHandlerFunc(
	endpnt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpnt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes the JSON body into T and runs its Bind hook.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	binder, ok := any(request).(render.Binder)
	if !ok {
		return nil, errors.New("request type does not implement render.Binder")
	}

	if err := render.Bind(req, binder); err != nil {
		var (
			appErr exception.ApplicationError
			valErr exception.ValidationError
		)

		if errors.As(err, &appErr) || errors.As(err, &valErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "Corpo da requisição inválido",
			Cause:      err,
		}
	}

	return request, nil
}

// DecodeEmptyRequest is for endpoints that take no input at all.
func DecodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
