package travelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{BaseURL: server.URL, MaxRetries: 2})
}

func TestClient_SearchOffers_QueryShape(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "id_execucao": "exec-1", "preco_total_pacote": 3549.9}]`))
	})

	minPrice := 1000.0
	direct := dto.ConnectionDirect

	offers, err := client.SearchOffers(context.Background(), "token", dto.OfferSearchRequest{
		Origins:      []string{"São Paulo", "Campinas"},
		Destinations: []string{"Maceió"},
		HotelNames:   []string{"Praia, Sol e Mar"},
		PriceMin:     &minPrice,
		Connection:   &direct,
		DateStart:    "01/07/2026",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer token", gotAuth)

	// multi-valued constraints repeat the parameter, never comma-join
	assert.Equal(t, []string{"São Paulo", "Campinas"}, gotQuery["origem"])
	assert.Equal(t, []string{"Maceió"}, gotQuery["destino"])
	assert.Equal(t, []string{"Praia, Sol e Mar"}, gotQuery["nome_hotel"])
	assert.Equal(t, []string{"1000"}, gotQuery["preco_min"])
	assert.Equal(t, []string{"direto"}, gotQuery["conexoes"])
	assert.Equal(t, []string{"2026-07-01"}, gotQuery["data_inicio"])

	require.Len(t, offers, 1)
	assert.Equal(t, int64(1), offers[0].ID)
	assert.Equal(t, "3549.9", string(offers[0].TotalPrice))
}

func TestClient_SearchOffers_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := client.SearchOffers(context.Background(), "token", dto.OfferSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_SearchOffers_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.SearchOffers(context.Background(), "token", dto.OfferSearchRequest{})
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_SearchOffers_RejectsNonJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>login</html>"))
	})

	_, err := client.SearchOffers(context.Background(), "token", dto.OfferSearchRequest{})
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestClient_FetchItinerary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/voos/exec-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"ida": [
				{"companhia": "Azul", "numero_voo": "AD4050", "partida_aeroporto": "VCP"},
				{"companhia": "Azul", "numero_voo": "AD2210", "partida_aeroporto": "REC"}
			],
			"volta": [
				{"companhia": "Azul", "numero_voo": "AD4051", "partida_aeroporto": "MCZ"}
			]
		}`))
	})

	itinerary, err := client.FetchItinerary(context.Background(), "token", "exec-1")
	require.NoError(t, err)
	assert.Len(t, itinerary.Outbound, 2)
	assert.Len(t, itinerary.Return, 1)
	assert.Equal(t, "AD2210", itinerary.Outbound[1].FlightNumber)
}

func TestClient_FetchItinerary_EmptyID(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused"})

	_, err := client.FetchItinerary(context.Background(), "token", "")
	assert.Error(t, err)
}

func TestClient_ListSearches_Envelope(t *testing.T) {
	t.Run("success_envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true, "data": [{"id": 1, "cliente_nome": "Agência Azul", "status": "concluido"}]}`))
		})

		searches, err := client.ListSearches(context.Background(), "token")
		require.NoError(t, err)

		want := []dto.SavedSearch{{ID: 1, ClientName: "Agência Azul", Status: "concluido"}}
		diff := cmp.Diff(want, searches)
		if diff != "" {
			t.Fatalf("ListSearches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("failure_envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": false, "data": null}`))
		})

		_, err := client.ListSearches(context.Background(), "token")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})
}

func TestClient_GetSearch_RebuildsFormRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pesquisa/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"pesquisa": {"cliente_nome": "Agência Azul", "tipo_periodo": "Mês Completo", "status": "pendente"},
				"origensDestinos": [
					{"origem": "São Paulo", "destino": "Porto Seguro", "nome_hotel": "", "hotel_por_preco": true},
					{"origem": "Campinas", "destino": "Maceió", "nome_hotel": "Pousada da Praia", "hotel_por_preco": false}
				]
			}
		}`))
	})

	detail, err := client.GetSearch(context.Background(), "token", 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), detail.ID)
	assert.Equal(t, "Agência Azul", detail.ClientName)
	require.Len(t, detail.Origins, 2)
	require.Len(t, detail.Destinations, 2)
	assert.True(t, detail.Destinations[0].CheapestHotel)
	assert.Equal(t, "Pousada da Praia", detail.Destinations[1].Hotel)
}

func TestClient_CreateSearch_PostsForm(t *testing.T) {
	var gotMethod string
	var gotBody dto.SearchForm

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	form := dto.SearchForm{ClientName: "Agência Azul", Adults: 2, Apartments: 1}

	require.NoError(t, client.CreateSearch(context.Background(), "token", form))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Agência Azul", gotBody.ClientName)
}

func TestClient_DeleteSearch(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteSearch(context.Background(), "token", 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/pesquisa/9", gotPath)
}
