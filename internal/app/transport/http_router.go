package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/phsants/usetravel-service/internal/app/config"
	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/app/endpoints"
	"github.com/phsants/usetravel-service/internal/pkg/exception"
	"github.com/phsants/usetravel-service/internal/pkg/session"
	httptransport "github.com/phsants/usetravel-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	sessions *session.Manager,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
			httptransport.RequireSession(sessions),
		)

		router.Route("/ofertas", func(router chi.Router) {
			router.Post("/search", httptransport.MakeHandlerFunc(
				endpts.OfferEndpoint.SearchOffers,
				httptransport.DecodeRequest[dto.OfferSearchRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/export", httptransport.MakeHandlerFunc(
				endpts.OfferEndpoint.ExportOffers,
				httptransport.DecodeRequest[dto.OfferExportRequest],
				httptransport.FileAttachmentResponse,
			))
		})

		router.Get("/cidades", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.ListCities,
			decodeCityQueryRequest,
			httptransport.ResponseWithBody,
		))

		router.Route("/pesquisas", func(router chi.Router) {
			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.CreateSearch,
				httptransport.DecodeRequest[dto.SearchForm],
				httptransport.CreatedResponse,
			))
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.ListSearches,
				httptransport.DecodeEmptyRequest,
				httptransport.ResponseWithBody,
			))
			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.GetSearch,
				decodeSearchIDRequest,
				httptransport.ResponseWithBody,
			))
			router.Put("/{id}", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.UpdateSearch,
				decodeUpdateSearchRequest,
				httptransport.NoContentResponse,
			))
			router.Delete("/{id}", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.DeleteSearch,
				decodeSearchIDRequest,
				httptransport.NoContentResponse,
			))
		})
	})

	return router
}

func pathID(req *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		return 0, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "Identificador de pesquisa inválido",
			Cause:      err,
		}
	}

	return id, nil
}

func decodeSearchIDRequest(_ context.Context, req *http.Request) (interface{}, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	return &dto.SearchIDRequest{ID: id}, nil
}

func decodeCityQueryRequest(_ context.Context, req *http.Request) (interface{}, error) {
	return &dto.CityQueryRequest{Query: req.URL.Query().Get("q")}, nil
}

func decodeUpdateSearchRequest(ctx context.Context, req *http.Request) (interface{}, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	decoded, err := httptransport.DecodeRequest[dto.UpdateSearchRequest](ctx, req)
	if err != nil {
		return nil, err
	}

	request, ok := decoded.(*dto.UpdateSearchRequest)
	if !ok {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "Corpo da requisição inválido",
		}
	}

	request.ID = id

	return request, nil
}
