package offer

import (
	"strings"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/utils"
)

// Filter applies the dashboard's client-side constraints over an
// already-fetched result set. Pure: the input slice is never changed,
// constraints are AND-combined, and an empty criteria object returns
// the input as-is.
func Filter(offers []dto.Offer, criteria dto.OfferSearchRequest) []dto.Offer {
	if criteria.IsEmpty() {
		return offers
	}

	results := make([]dto.Offer, 0, len(offers))

	for _, record := range offers {
		if len(criteria.Origins) > 0 && !contains(criteria.Origins, record.Origin) {
			continue
		}

		if len(criteria.Destinations) > 0 && !contains(criteria.Destinations, record.Destination) {
			continue
		}

		if len(criteria.HotelNames) > 0 && !hotelMatches(criteria.HotelNames, record.HotelName) {
			continue
		}

		if criteria.PriceMin != nil && record.TotalPriceValue < *criteria.PriceMin {
			continue
		}

		if criteria.PriceMax != nil && record.TotalPriceValue > *criteria.PriceMax {
			continue
		}

		if criteria.DateStart != "" && departsBefore(record.DepartureDate, criteria.DateStart) {
			continue
		}

		if criteria.DateEnd != "" && returnsAfter(record.ReturnDate, criteria.DateEnd) {
			continue
		}

		if criteria.Connection != nil {
			if *criteria.Connection == dto.ConnectionDirect && record.Connections > 0 {
				continue
			}
			if *criteria.Connection == dto.ConnectionWithStops && record.Connections == 0 {
				continue
			}
		}

		results = append(results, record)
	}

	return results
}

// hotelMatches checks whether ANY requested name is a case-insensitive
// substring of the offer's hotel name.
func hotelMatches(requested []string, hotelName string) bool {
	lowered := strings.ToLower(hotelName)
	for _, term := range requested {
		if strings.Contains(lowered, strings.ToLower(term)) {
			return true
		}
	}

	return false
}

// departsBefore is true when the offer departs before the inclusive
// range start. Unparseable dates never exclude an offer.
func departsBefore(departureDate, rangeStart string) bool {
	departure, ok := utils.ParseDate(departureDate)
	if !ok {
		return false
	}

	start, ok := utils.ParseDate(rangeStart)
	if !ok {
		return false
	}

	return departure.Before(start)
}

// returnsAfter is true when the offer returns after the inclusive
// range end.
func returnsAfter(returnDate, rangeEnd string) bool {
	ret, ok := utils.ParseDate(returnDate)
	if !ok {
		return false
	}

	end, ok := utils.ParseDate(rangeEnd)
	if !ok {
		return false
	}

	return ret.After(end)
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}

	return false
}
