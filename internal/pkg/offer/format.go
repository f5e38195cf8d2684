package offer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
	"github.com/phsants/usetravel-service/internal/pkg/utils"
)

const hotelNotInformed = "Hotel não informado"

// roomTypes maps upstream room type codes to display descriptions.
var roomTypes = map[string]string{
	"1":                  "Standard",
	"2":                  "Superior",
	"3":                  "Luxo",
	"4":                  "Suíte",
	"5":                  "Suíte Executiva",
	"6":                  "Suíte Presidencial",
	"standard":           "Standard",
	"superior":           "Superior",
	"luxo":               "Luxo",
	"suite":              "Suíte",
	"suite_executiva":    "Suíte Executiva",
	"suite_presidencial": "Suíte Presidencial",
}

// FromRaw normalizes one upstream record into a display-ready offer.
// The numeric price fields are derived from the same value as the
// display strings so ordering by either can never disagree.
func FromRaw(raw travelapi.RawOffer) dto.Offer {
	totalDisplay, totalValue := normalizePrice(string(raw.TotalPrice))
	perPersonDisplay, perPersonValue := normalizePrice(string(raw.PricePerPerson))

	return dto.Offer{
		ID:                  offerID(raw.ID),
		ExecutionID:         raw.ExecutionID,
		Origin:              fallback(raw.Origin, utils.NotInformed),
		Destination:         fallback(raw.Destination, utils.NotInformed),
		DepartureDate:       utils.FormatDateBR(raw.DepartureDate),
		ReturnDate:          utils.FormatDateBR(raw.ReturnDate),
		HotelName:           FormatHotelName(raw.HotelName),
		RoomType:            MapRoomType(string(raw.RoomType)),
		MealPlan:            fallback(raw.MealPlan, utils.NotInformed),
		TotalPrice:          totalDisplay,
		TotalPriceValue:     totalValue,
		PricePerPerson:      perPersonDisplay,
		PricePerPersonValue: perPersonValue,
		SearchDate:          utils.FormatDateBR(raw.SearchDate),
	}
}

// FromRawAll normalizes a whole result set.
func FromRawAll(raws []travelapi.RawOffer) []dto.Offer {
	offers := make([]dto.Offer, len(raws))
	for i, raw := range raws {
		offers[i] = FromRaw(raw)
	}

	return offers
}

func offerID(id int64) string {
	if id != 0 {
		return strconv.FormatInt(id, 10)
	}

	// Upstream sometimes omits the id; records still need one within
	// the result set.
	return "hotel-" + uuid.NewString()[:8]
}

// FormatHotelName falls back to a placeholder when the name is missing
// or too short to be a real hotel name.
func FormatHotelName(name string) string {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return hotelNotInformed
	}

	return name
}

// MapRoomType resolves upstream room type codes; unknown codes read as
// Standard.
func MapRoomType(code string) string {
	if code == "" {
		return "Standard"
	}

	if mapped, ok := roomTypes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return mapped
	}

	return "Standard"
}

func fallback(value, alt string) string {
	if strings.TrimSpace(value) == "" {
		return alt
	}

	return value
}

// normalizePrice yields the display string and the numeric value from a
// wire price that may be a plain number or an already-formatted string.
func normalizePrice(raw string) (string, float64) {
	value, ok := utils.ParseBRL(raw)
	if !ok {
		return utils.NotInformed, 0
	}

	return utils.FormatBRL(value), value
}
