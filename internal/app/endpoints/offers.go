package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/phsants/usetravel-service/internal/app/dto"
)

type OfferService interface {
	SearchOffers(ctx context.Context, req dto.OfferSearchRequest) (dto.SearchOffersResponse, error)
	ExportOffers(ctx context.Context, req dto.OfferExportRequest) (dto.ExportFile, error)
}

type OfferEndpoint struct {
	SearchOffers endpoint.Endpoint
	ExportOffers endpoint.Endpoint
}

func MakeOfferEndpoint(service OfferService) OfferEndpoint {
	return OfferEndpoint{
		SearchOffers: makeSearchOffersEndpoint(service),
		ExportOffers: makeExportOffersEndpoint(service),
	}
}

func makeSearchOffersEndpoint(service OfferService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.OfferSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		offers, err := service.SearchOffers(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("offer service: %w", err)
		}

		return offers, nil
	}
}

func makeExportOffersEndpoint(service OfferService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.OfferExportRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		file, err := service.ExportOffers(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("offer service: %w", err)
		}

		return file, nil
	}
}
