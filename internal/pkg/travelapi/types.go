package travelapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts either a JSON string or a JSON number. The upstream
// API is loose about price fields; some deployments send formatted
// strings ("R$ 1.234,56"), others plain numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("unmarshal flex string: %w", err)
		}
		*s = FlexString(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("unmarshal flex number: %w", err)
	}
	*s = FlexString(number.String())

	return nil
}

// RawOffer is one record as returned by GET /api/hoteis, before any
// normalization.
type RawOffer struct {
	ID             int64      `json:"id"`
	ExecutionID    string     `json:"id_execucao"`
	Origin         string     `json:"origem"`
	Destination    string     `json:"destino"`
	DepartureDate  string     `json:"data_ida"`
	ReturnDate     string     `json:"data_volta"`
	HotelName      string     `json:"nome_hotel"`
	RoomType       FlexString `json:"tipo_quarto"`
	MealPlan       string     `json:"refeicao"`
	TotalPrice     FlexString `json:"preco_total_pacote"`
	PricePerPerson FlexString `json:"preco_por_pessoa"`
	SearchDate     string     `json:"data_pesquisa"`
}

// FlightLeg is one segment of an itinerary.
type FlightLeg struct {
	Airline          string `json:"companhia"`
	FlightNumber     string `json:"numero_voo"`
	Aircraft         string `json:"tipo_aviao"`
	CabinClass       string `json:"classe"`
	DepartureDate    string `json:"partida_data"`
	DepartureTime    string `json:"partida_hora"`
	DepartureAirport string `json:"partida_aeroporto"`
	ArrivalDate      string `json:"chegada_data"`
	ArrivalTime      string `json:"chegada_hora"`
	ArrivalAirport   string `json:"chegada_aeroporto"`
}

// Itinerary is the detail behind one execution id: outbound and return
// legs, each list holding one entry per flown segment.
type Itinerary struct {
	Outbound []FlightLeg `json:"ida"`
	Return   []FlightLeg `json:"volta"`
}

// City is one entry of GET /api/cidades.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// savedSearchEnvelope wraps the pesquisas list response.
type savedSearchEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}
