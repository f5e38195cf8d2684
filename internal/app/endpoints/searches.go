package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/phsants/usetravel-service/internal/app/dto"
)

type SearchService interface {
	CreateSearch(ctx context.Context, form dto.SearchForm) error
	ListSearches(ctx context.Context) (dto.ListSearchesResponse, error)
	GetSearch(ctx context.Context, id int64) (dto.SavedSearchDetail, error)
	UpdateSearch(ctx context.Context, id int64, form dto.SearchForm) error
	DeleteSearch(ctx context.Context, id int64) error
	CityOptions(ctx context.Context, query string) (dto.ListCitiesResponse, error)
}

type SearchEndpoint struct {
	CreateSearch endpoint.Endpoint
	ListSearches endpoint.Endpoint
	GetSearch    endpoint.Endpoint
	UpdateSearch endpoint.Endpoint
	DeleteSearch endpoint.Endpoint
	ListCities   endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		CreateSearch: makeCreateSearchEndpoint(service),
		ListSearches: makeListSearchesEndpoint(service),
		GetSearch:    makeGetSearchEndpoint(service),
		UpdateSearch: makeUpdateSearchEndpoint(service),
		DeleteSearch: makeDeleteSearchEndpoint(service),
		ListCities:   makeListCitiesEndpoint(service),
	}
}

func makeCreateSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchForm)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.CreateSearch(ctx, *request); err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return nil, nil
	}
}

func makeListSearchesEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		searches, err := service.ListSearches(ctx)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return searches, nil
	}
}

func makeGetSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchIDRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		detail, err := service.GetSearch(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return detail, nil
	}
}

func makeUpdateSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdateSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.UpdateSearch(ctx, request.ID, request.SearchForm); err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return nil, nil
	}
}

func makeDeleteSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchIDRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.DeleteSearch(ctx, request.ID); err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return nil, nil
	}
}

func makeListCitiesEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CityQueryRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		cities, err := service.CityOptions(ctx, request.Query)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return cities, nil
	}
}
