package offer

import (
	"math"

	"github.com/phsants/usetravel-service/internal/app/dto"
)

// weighted scoring using normalization; 0 is the best deal in the set,
// 1 the worst. Drives the default "best offers" ordering on the
// dashboard when no explicit sort column is picked.
const (
	WeightPrice       = 0.75
	WeightConnections = 0.25
)

// Rank assigns every offer a value score from its total price and
// connection count, both normalized over the result set.
func Rank(offers []dto.Offer) []dto.Offer {
	priceMin, priceMax := priceRange(offers)
	connMin, connMax := connectionRange(offers)

	for i, record := range offers {
		priceScore := normalizeValue(record.TotalPriceValue, priceMin, priceMax)
		connScore := normalizeValue(float64(record.Connections),
			float64(connMin), float64(connMax))

		offers[i].Score = WeightPrice*priceScore + WeightConnections*connScore
	}

	return offers
}

func priceRange(offers []dto.Offer) (float64, float64) {
	if len(offers) == 0 {
		return 0, 0
	}

	minPrice := math.MaxFloat64
	maxPrice := -math.MaxFloat64
	for _, record := range offers {
		if record.TotalPriceValue < minPrice {
			minPrice = record.TotalPriceValue
		}
		if record.TotalPriceValue > maxPrice {
			maxPrice = record.TotalPriceValue
		}
	}
	return minPrice, maxPrice
}

func connectionRange(offers []dto.Offer) (int, int) {
	if len(offers) == 0 {
		return 0, 0
	}

	minConn := math.MaxInt
	maxConn := -math.MaxInt
	for _, record := range offers {
		if record.Connections < minConn {
			minConn = record.Connections
		}
		if record.Connections > maxConn {
			maxConn = record.Connections
		}
	}
	return minConn, maxConn
}

func normalizeValue(value float64, min float64, max float64) float64 {
	if max == min {
		return 0
	}

	return (value - min) / (max - min)
}
