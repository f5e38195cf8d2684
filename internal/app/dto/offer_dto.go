package dto

import (
	"fmt"
	"net/http"

	"github.com/phsants/usetravel-service/internal/pkg/exception"
	"github.com/phsants/usetravel-service/internal/pkg/utils"
)

// Connection classification of an enriched offer.
const (
	ConnectionDirect    = "Direto"
	ConnectionWithStops = "Com Conexão"
	ConnectionUnknown   = "Desconhecido"
)

// Offer is a single bookable travel package result, already normalized
// for display. Prices carry both the formatted string and the parsed
// numeric value; only the numeric value is ever compared.
type Offer struct {
	ID                  string  `json:"id"`
	ExecutionID         string  `json:"id_execucao"`
	Origin              string  `json:"origem"`
	Destination         string  `json:"destino"`
	DepartureDate       string  `json:"data_ida"`
	ReturnDate          string  `json:"data_volta"`
	HotelName           string  `json:"nome_hotel"`
	RoomType            string  `json:"tipo_quarto"`
	MealPlan            string  `json:"refeicao"`
	TotalPrice          string  `json:"preco_total_pacote"`
	TotalPriceValue     float64 `json:"preco_total_numerico"`
	PricePerPerson      string  `json:"preco_por_pessoa"`
	PricePerPersonValue float64 `json:"preco_pessoa_numerico"`
	SearchDate          string  `json:"data_pesquisa"`
	Connections         int     `json:"conexoes"`
	ConnectionType      string  `json:"tipo_conexao"`
	Score               float64 `json:"score"`
}

// AllowedSortField lists the sortable offer columns. Empty field means
// best value score.
var AllowedSortField = map[string]bool{
	"preco_total_pacote": true,
	"origem":             true,
	"destino":            true,
	"data_ida":           true,
	"data_volta":         true,
	"nome_hotel":         true,
	"conexoes":           true,
	"data_pesquisa":      true,
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// OfferSearchRequest carries the dashboard's filter criteria. Every
// constraint is optional; an empty request means fetch unfiltered.
type OfferSearchRequest struct {
	Origins      []string    `json:"origens,omitempty"`
	Destinations []string    `json:"destinos,omitempty"`
	HotelNames   []string    `json:"nomes_hoteis,omitempty"`
	PriceMin     *float64    `json:"preco_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax     *float64    `json:"preco_max,omitempty" validate:"omitempty,gte=0"`
	Connection   *string     `json:"conexoes,omitempty"`
	DateStart    string      `json:"data_inicio,omitempty"`
	DateEnd      string      `json:"data_fim,omitempty"`
	SortOption   *SortOption `json:"sort_option,omitempty"`
	Page         int         `json:"page" validate:"gte=0"`
	PageSize     int         `json:"page_size" validate:"gte=0,lte=200"`
}

func (r *OfferSearchRequest) Bind(req *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *OfferSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.PriceMin != nil && r.PriceMax != nil && *r.PriceMax < *r.PriceMin {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "preco_max must be greater than or equal to preco_min",
		}
	}

	if r.Connection != nil &&
		*r.Connection != ConnectionDirect && *r.Connection != ConnectionWithStops {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("invalid conexoes value %q", *r.Connection),
		}
	}

	for _, date := range []string{r.DateStart, r.DateEnd} {
		if date == "" {
			continue
		}
		if _, ok := utils.ParseDate(date); !ok {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("invalid date %q", date),
			}
		}
	}

	if r.SortOption != nil && r.SortOption.Field != "" {
		if !AllowedSortField[r.SortOption.Field] {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("invalid sort field %s", r.SortOption.Field),
			}
		}
	}

	return nil
}

// IsEmpty reports whether no constraint was requested at all, which
// short-circuits local filtering.
func (r *OfferSearchRequest) IsEmpty() bool {
	return len(r.Origins) == 0 &&
		len(r.Destinations) == 0 &&
		len(r.HotelNames) == 0 &&
		r.PriceMin == nil &&
		r.PriceMax == nil &&
		r.Connection == nil &&
		r.DateStart == "" &&
		r.DateEnd == ""
}

// ExportFormat values accepted by the export endpoint.
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

// OfferExportRequest runs the same pipeline as a search and renders the
// filtered-and-sorted view (never the raw fetch) as a report file.
type OfferExportRequest struct {
	OfferSearchRequest
	Format string `json:"format" validate:"required,oneof=xlsx pdf"`
}

func (r *OfferExportRequest) Bind(req *http.Request) error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return r.OfferSearchRequest.Validate()
}

type Metadata struct {
	TotalResults       int  `json:"total_results"`
	TotalBeforeFilter  int  `json:"total_before_filter"`
	EnrichmentFailures int  `json:"enrichment_failures"`
	SearchTimeMs       int  `json:"search_time_ms"`
	CacheHit           bool `json:"cache_hit"`
}

// SearchOffersResponse is the response struct for the offer search endpoint.
type SearchOffersResponse struct {
	Criteria OfferSearchRequest `json:"criteria"`
	Metadata Metadata           `json:"metadata"`
	Offers   []Offer            `json:"ofertas"`
}

// ExportFile is a rendered report ready to stream back as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
