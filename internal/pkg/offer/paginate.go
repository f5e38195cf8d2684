package offer

import "github.com/phsants/usetravel-service/internal/app/dto"

// Paginate slices out the zero-based page. A page beyond the end yields
// an empty sequence, never an error. A non-positive page size means no
// pagination was requested and the whole set comes back.
func Paginate(offers []dto.Offer, page, pageSize int) []dto.Offer {
	if pageSize <= 0 {
		return offers
	}

	start := page * pageSize
	if page < 0 || start >= len(offers) {
		return []dto.Offer{}
	}

	end := start + pageSize
	if end > len(offers) {
		end = len(offers)
	}

	return offers[start:end]
}
