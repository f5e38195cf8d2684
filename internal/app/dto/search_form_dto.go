package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/phsants/usetravel-service/internal/pkg/exception"
)

// Period types accepted by tipo_periodo.
const (
	PeriodSpecificDay = "Dia Específico"
	PeriodWeekly      = "Semanal"
	PeriodFullMonth   = "Mês Completo"
)

// OriginEntry is one "Saindo de" row.
type OriginEntry struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// DestinationEntry is one destination row. Hotel and CheapestHotel are
// mutually exclusive in effect: when the flag is set the backend picks
// the lowest-price hotel and the named hotel is disregarded.
type DestinationEntry struct {
	ID            string `json:"id"`
	Name          string `json:"nome"`
	Hotel         string `json:"hotel"`
	CheapestHotel bool   `json:"hotel_por_preco"`
}

// EffectiveHotel is the hotel name the upstream contract will honor.
func (d DestinationEntry) EffectiveHotel() string {
	if d.CheapestHotel {
		return ""
	}
	return d.Hotel
}

// SearchForm is the scheduled recurring search payload, the same shape
// the dashboard posts to /api/pesquisas.
type SearchForm struct {
	ClientName       string             `json:"cliente_nome"`
	Origins          []OriginEntry      `json:"origens"`
	Destinations     []DestinationEntry `json:"destinos"`
	SelectedMonths   []string           `json:"meses_selecionados"`
	PeriodType       string             `json:"tipo_periodo"`
	SpecificDay      string             `json:"dia_especifico"`
	Weekdays         []string           `json:"dias_semana"`
	MinNights        int                `json:"noites_min"`
	MaxNights        int                `json:"noites_max"`
	Apartments       int                `json:"apartamento"`
	Adults           int                `json:"adultos"`
	Children         int                `json:"criancas"`
	ChildAges        []int              `json:"idades_criancas"`
	Infants          int                `json:"bebes"`
	InfantAges       []int              `json:"idades_bebes"`
	FlightPreference string             `json:"tipo_voo"`
}

// NewSearchForm returns a form with one empty origin and destination row,
// the occupancy defaults the dashboard starts from, and the cheapest-hotel
// flag set on the first destination.
func NewSearchForm() SearchForm {
	return SearchForm{
		Origins:          []OriginEntry{{}},
		Destinations:     []DestinationEntry{{CheapestHotel: true}},
		Apartments:       1,
		Adults:           2,
		FlightPreference: "Mais Barato",
	}
}

// AddOriginRow appends an empty origin row.
func (f *SearchForm) AddOriginRow() {
	f.Origins = append(append([]OriginEntry{}, f.Origins...), OriginEntry{})
}

// AddDestinationRow appends an empty destination row. New rows default to
// cheapest-hotel selection.
func (f *SearchForm) AddDestinationRow() {
	f.Destinations = append(append([]DestinationEntry{}, f.Destinations...),
		DestinationEntry{CheapestHotel: true})
}

// RemoveOriginRow drops the row at index. Index 0 is protected so at
// least one origin always remains.
func (f *SearchForm) RemoveOriginRow(index int) {
	if index <= 0 || index >= len(f.Origins) {
		return
	}
	rows := append([]OriginEntry{}, f.Origins[:index]...)
	f.Origins = append(rows, f.Origins[index+1:]...)
}

// RemoveDestinationRow drops the row at index, keeping index 0.
func (f *SearchForm) RemoveDestinationRow(index int) {
	if index <= 0 || index >= len(f.Destinations) {
		return
	}
	rows := append([]DestinationEntry{}, f.Destinations[:index]...)
	f.Destinations = append(rows, f.Destinations[index+1:]...)
}

// UpdateOriginRow replaces the selected city on an origin row.
func (f *SearchForm) UpdateOriginRow(index int, id, name string) {
	if index < 0 || index >= len(f.Origins) {
		return
	}
	rows := append([]OriginEntry{}, f.Origins...)
	rows[index] = OriginEntry{ID: id, Name: name}
	f.Origins = rows
}

// UpdateDestinationRow replaces the selected city on a destination row,
// preserving the hotel override and cheapest flag already entered.
func (f *SearchForm) UpdateDestinationRow(index int, id, name string) {
	if index < 0 || index >= len(f.Destinations) {
		return
	}
	rows := append([]DestinationEntry{}, f.Destinations...)
	rows[index].ID = id
	rows[index].Name = name
	f.Destinations = rows
}

// SetHotelOverride types a hotel name on a destination row. It only takes
// effect while the cheapest flag is off.
func (f *SearchForm) SetHotelOverride(index int, hotel string) {
	if index < 0 || index >= len(f.Destinations) {
		return
	}
	if f.Destinations[index].CheapestHotel {
		return
	}
	rows := append([]DestinationEntry{}, f.Destinations...)
	rows[index].Hotel = hotel
	f.Destinations = rows
}

// SetCheapestHotel toggles the cheapest-hotel flag. Turning it on clears
// any typed hotel name.
func (f *SearchForm) SetCheapestHotel(index int, cheapest bool) {
	if index < 0 || index >= len(f.Destinations) {
		return
	}
	rows := append([]DestinationEntry{}, f.Destinations...)
	rows[index].CheapestHotel = cheapest
	if cheapest {
		rows[index].Hotel = ""
	}
	f.Destinations = rows
}

func (f *SearchForm) Bind(r *http.Request) error {
	return f.Validate()
}

// Validate checks every invariant and reports all violations at once,
// keyed by field name. Array entries get synthesized keys such as
// idade_crianca_0. Values are never auto-corrected here.
func (f *SearchForm) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(f.ClientName) == "" {
		fields["cliente_nome"] = "Nome do cliente é obrigatório."
	}

	if len(f.Origins) == 0 || strings.TrimSpace(f.Origins[0].Name) == "" {
		fields["origens"] = "Origem é obrigatória."
	}
	for i, origin := range f.Origins {
		if i > 0 && strings.TrimSpace(origin.Name) == "" {
			fields[fmt.Sprintf("origem_%d", i)] = "Origem é obrigatória."
		}
	}

	if len(f.Destinations) == 0 || strings.TrimSpace(f.Destinations[0].Name) == "" {
		fields["destinos"] = "Destino é obrigatório."
	}
	for i, destination := range f.Destinations {
		if i > 0 && strings.TrimSpace(destination.Name) == "" {
			fields[fmt.Sprintf("destino_%d", i)] = "Destino é obrigatório."
		}
	}

	if len(f.SelectedMonths) == 0 {
		fields["meses_selecionados"] = "Selecione pelo menos um mês."
	}

	if f.PeriodType == "" {
		fields["tipo_periodo"] = "Selecione um período."
	}
	if f.PeriodType == PeriodSpecificDay && f.SpecificDay == "" {
		fields["dia_especifico"] = "Selecione um dia específico."
	}
	if f.PeriodType == PeriodWeekly && len(f.Weekdays) == 0 {
		fields["dias_semana"] = "Selecione pelo menos um dia da semana."
	}

	if f.MinNights < 1 {
		fields["noites_min"] = "Mínimo de noites deve ser pelo menos 1."
	}
	if f.MaxNights < f.MinNights {
		fields["noites_max"] = "Máximo de noites deve ser igual ou maior que o mínimo."
	}

	if f.Apartments < 1 || f.Apartments > 4 {
		fields["apartamento"] = "Escolha entre 1 e 4 apartamentos."
	}
	if f.Adults < 1 || f.Adults > 9 {
		fields["adultos"] = "Escolha entre 1 e 9 adultos."
	}

	if f.Children < 0 || f.Children > 5 {
		fields["criancas"] = "Máximo de 5 crianças."
	}
	for i, age := range f.ChildAges {
		if age < 2 || age > 17 {
			fields[fmt.Sprintf("idade_crianca_%d", i)] = "Idade da criança deve ser entre 2 e 17 anos."
		}
	}

	if f.Infants < 0 || f.Infants > 5 {
		fields["bebes"] = "Máximo de 5 bebês."
	}
	for i, age := range f.InfantAges {
		if age != 0 && age != 1 {
			fields[fmt.Sprintf("idade_bebe_%d", i)] = "Idade do bebê deve ser 0 ou 1 ano."
		}
	}

	if len(fields) > 0 {
		return exception.ValidationError{
			StatusCode: http.StatusUnprocessableEntity,
			Fields:     fields,
		}
	}

	return nil
}

// CoerceOccupancy forces the occupancy counters back to their floor
// values right before transmission. Validate already rejects these, but
// the upstream contract expects sane values even when a caller skips
// validation, so this guard stays.
func (f *SearchForm) CoerceOccupancy() {
	if f.Apartments < 1 {
		f.Apartments = 1
	}
	if f.Infants < 0 {
		f.Infants = 0
	}
	if f.Adults < 1 {
		f.Adults = 2
	}
}

// SavedSearch is a persisted pesquisa as listed by the upstream API.
type SavedSearch struct {
	ID         int64  `json:"id"`
	ClientName string `json:"cliente_nome"`
	Status     string `json:"status"`
	PeriodType string `json:"tipo_periodo"`
	CreatedAt  string `json:"data_criacao"`
}

// SavedSearchDetail is the full payload behind one saved search.
type SavedSearchDetail struct {
	ID int64 `json:"id"`
	SearchForm
	Status string `json:"status"`
}

type ListSearchesResponse struct {
	Searches []SavedSearch `json:"pesquisas"`
}

// CityOption is one typeahead entry for the origin/destination selects.
type CityOption struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type ListCitiesResponse struct {
	Cities []CityOption `json:"cidades"`
}
