//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/pkg/exception"
	"github.com/phsants/usetravel-service/internal/pkg/session"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validForm() dto.SearchForm {
	return dto.SearchForm{
		ClientName:       "Agência Azul",
		Origins:          []dto.OriginEntry{{ID: "1", Name: "São Paulo"}},
		Destinations:     []dto.DestinationEntry{{ID: "9", Name: "Porto Seguro", CheapestHotel: true}},
		SelectedMonths:   []string{"Julho"},
		PeriodType:       dto.PeriodFullMonth,
		MinNights:        5,
		MaxNights:        10,
		Apartments:       1,
		Adults:           2,
		FlightPreference: "Mais Barato",
	}
}

func TestSearchService_CreateSearch(t *testing.T) {
	t.Run("valid_form_reaches_upstream", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("CreateSearch", mock.Anything, "token", validForm()).Return(nil)

		s := NewSearchService(upstream, 10*time.Minute)

		err := s.CreateSearch(sessionContext(), validForm())
		assert.NoError(t, err)
	})

	t.Run("invalid_form_never_reaches_upstream", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)

		s := NewSearchService(upstream, 10*time.Minute)

		form := validForm()
		form.ClientName = ""

		err := s.CreateSearch(sessionContext(), form)

		var valErr exception.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "Nome do cliente é obrigatório.", valErr.Fields["cliente_nome"])
		upstream.AssertNotCalled(t, "CreateSearch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("occupancy_coerced_before_transmission", func(t *testing.T) {
		// Validate passes on the sane values; the coercion guard is about
		// what is sent over the wire.
		form := validForm()

		coerced := form
		coerced.Apartments = 1
		coerced.Adults = 2
		coerced.Infants = 0

		upstream := NewMockSearchWriter(t)
		upstream.On("CreateSearch", mock.Anything, "token", coerced).Return(nil)

		s := NewSearchService(upstream, 10*time.Minute)

		assert.NoError(t, s.CreateSearch(sessionContext(), form))
	})

	t.Run("no_session", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		s := NewSearchService(upstream, 10*time.Minute)

		err := s.CreateSearch(context.Background(), validForm())
		assert.ErrorIs(t, err, session.ErrSessionExpired)
	})
}

func TestSearchService_UpdateSearch(t *testing.T) {
	t.Run("revalidates_before_replacing", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		s := NewSearchService(upstream, 10*time.Minute)

		form := validForm()
		form.MinNights = 0

		err := s.UpdateSearch(sessionContext(), 7, form)

		var valErr exception.ValidationError
		require.True(t, errors.As(err, &valErr))
		upstream.AssertNotCalled(t, "UpdateSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid_update", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("UpdateSearch", mock.Anything, "token", int64(7), validForm()).Return(nil)

		s := NewSearchService(upstream, 10*time.Minute)

		assert.NoError(t, s.UpdateSearch(sessionContext(), 7, validForm()))
	})
}

func TestSearchService_ListAndDelete(t *testing.T) {
	searches := []dto.SavedSearch{
		{ID: 1, ClientName: "Agência Azul", Status: "concluido"},
		{ID: 2, ClientName: "Operadora Sol", Status: "pendente"},
	}

	t.Run("list", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("ListSearches", mock.Anything, "token").Return(searches, nil)

		s := NewSearchService(upstream, 10*time.Minute)

		got, err := s.ListSearches(sessionContext())
		assert.NoError(t, err)

		diff := cmp.Diff(dto.ListSearchesResponse{Searches: searches}, got)
		if diff != "" {
			t.Fatalf("ListSearches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("delete", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("DeleteSearch", mock.Anything, "token", int64(2)).Return(nil)

		s := NewSearchService(upstream, 10*time.Minute)

		assert.NoError(t, s.DeleteSearch(sessionContext(), 2))
	})
}

func TestSearchService_CityOptions(t *testing.T) {
	cities := []travelapi.City{
		{ID: 3, Name: "São Paulo"},
		{ID: 1, Name: "Campinas"},
		{ID: 2, Name: "Maceió"},
	}

	t.Run("catalog_sorted_and_cached", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("ListCities", mock.Anything, "token").Return(cities, nil).Once()

		s := NewSearchService(upstream, 10*time.Minute)

		got, err := s.CityOptions(sessionContext(), "")
		assert.NoError(t, err)

		want := dto.ListCitiesResponse{Cities: []dto.CityOption{
			{ID: 1, Name: "Campinas"},
			{ID: 2, Name: "Maceió"},
			{ID: 3, Name: "São Paulo"},
		}}
		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("CityOptions mismatch (-want +got):\n%s", diff)
		}

		// second call served from the in-memory catalog
		_, err = s.CityOptions(sessionContext(), "")
		assert.NoError(t, err)
	})

	t.Run("substring_filter_case_insensitive", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("ListCities", mock.Anything, "token").Return(cities, nil).Once()

		s := NewSearchService(upstream, 10*time.Minute)

		got, err := s.CityOptions(sessionContext(), "macei")
		assert.NoError(t, err)
		require.Len(t, got.Cities, 1)
		assert.Equal(t, "Maceió", got.Cities[0].Name)
	})

	t.Run("stale_catalog_beats_broken_typeahead", func(t *testing.T) {
		upstream := NewMockSearchWriter(t)
		upstream.On("ListCities", mock.Anything, "token").Return(cities, nil).Once()
		upstream.On("ListCities", mock.Anything, "token").Return(nil, errors.New("upstream down")).Once()

		// TTL of zero forces a refresh attempt on every call
		s := NewSearchService(upstream, 0)

		_, err := s.CityOptions(sessionContext(), "")
		assert.NoError(t, err)

		got, err := s.CityOptions(sessionContext(), "")
		assert.NoError(t, err)
		assert.Len(t, got.Cities, 3)
	})
}
