package offer

import (
	"sort"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/utils"
)

// Sort returns a new ordered sequence; the input keeps its order.
// Price sorting always uses the parsed numeric value, date columns
// compare parsed dates, everything else compares raw values. Ties keep
// their relative input order.
func Sort(offers []dto.Offer, sortOption *dto.SortOption) []dto.Offer {
	var (
		field = ""
		order = "asc"
	)
	if sortOption != nil {
		field = sortOption.Field
		if sortOption.Order != "" {
			order = sortOption.Order
		}
	}

	results := make([]dto.Offer, len(offers))
	copy(results, offers)

	less := lessFunc(field)
	sort.SliceStable(results, func(i, j int) bool {
		if order == "desc" {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})

	return results
}

func lessFunc(field string) func(a, b dto.Offer) bool {
	switch field {
	case "preco_total_pacote":
		return func(a, b dto.Offer) bool {
			return a.TotalPriceValue < b.TotalPriceValue
		}
	case "conexoes":
		return func(a, b dto.Offer) bool {
			return a.Connections < b.Connections
		}
	case "data_ida":
		return dateLess(func(o dto.Offer) string { return o.DepartureDate })
	case "data_volta":
		return dateLess(func(o dto.Offer) string { return o.ReturnDate })
	case "data_pesquisa":
		return dateLess(func(o dto.Offer) string { return o.SearchDate })
	case "origem":
		return func(a, b dto.Offer) bool { return a.Origin < b.Origin }
	case "destino":
		return func(a, b dto.Offer) bool { return a.Destination < b.Destination }
	case "nome_hotel":
		return func(a, b dto.Offer) bool { return a.HotelName < b.HotelName }
	default:
		// best value first
		return func(a, b dto.Offer) bool { return a.Score < b.Score }
	}
}

// dateLess orders display dates chronologically, not lexically; the
// display form DD/MM/YYYY would sort wrong as a plain string.
func dateLess(key func(o dto.Offer) string) func(a, b dto.Offer) bool {
	return func(a, b dto.Offer) bool {
		dateA, okA := utils.ParseDate(key(a))
		dateB, okB := utils.ParseDate(key(b))

		if !okA || !okB {
			return okB && !okA
		}

		return dateA.Before(dateB)
	}
}
