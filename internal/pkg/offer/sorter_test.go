//go:build unit

package offer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phsants/usetravel-service/internal/app/dto"
)

func TestSort_Closure(t *testing.T) {
	offers := []dto.Offer{
		{ID: "1", TotalPriceValue: 4200, Connections: 2, DepartureDate: "20/07/2026", Score: 0.8},
		{ID: "2", TotalPriceValue: 2800, Connections: 0, DepartureDate: "05/07/2026", Score: 0.1},
		{ID: "3", TotalPriceValue: 3500, Connections: 1, DepartureDate: "12/07/2026", Score: 0.5},
	}

	sortRequest := func(offers []dto.Offer, opt *dto.SortOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			// Copy to avoid shared state
			oCopy := make([]dto.Offer, len(offers))
			copy(oCopy, offers)

			got := Sort(oCopy, opt)
			gotIDs := make([]string, len(got))
			for i, o := range got {
				gotIDs[i] = o.ID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("Sort result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("default_sort_best_score_asc", sortRequest(offers, nil, []string{"2", "3", "1"}))
	t.Run("price_asc", sortRequest(offers, &dto.SortOption{Field: "preco_total_pacote", Order: "asc"}, []string{"2", "3", "1"}))
	t.Run("price_desc", sortRequest(offers, &dto.SortOption{Field: "preco_total_pacote", Order: "desc"}, []string{"1", "3", "2"}))
	t.Run("connections_asc", sortRequest(offers, &dto.SortOption{Field: "conexoes", Order: "asc"}, []string{"2", "3", "1"}))
	t.Run("departure_date_chronological", sortRequest(offers, &dto.SortOption{Field: "data_ida", Order: "asc"}, []string{"2", "3", "1"}))
	t.Run("departure_date_desc_reverses", sortRequest(offers, &dto.SortOption{Field: "data_ida", Order: "desc"}, []string{"1", "3", "2"}))
}

func TestSort_StableOnTies(t *testing.T) {
	offers := []dto.Offer{
		{ID: "1", TotalPriceValue: 3000},
		{ID: "2", TotalPriceValue: 3000},
		{ID: "3", TotalPriceValue: 3000},
	}

	got := Sort(offers, &dto.SortOption{Field: "preco_total_pacote", Order: "asc"})

	gotIDs := make([]string, len(got))
	for i, o := range got {
		gotIDs[i] = o.ID
	}

	diff := cmp.Diff([]string{"1", "2", "3"}, gotIDs)
	if diff != "" {
		t.Fatalf("equal keys must keep input order (-want +got):\n%s", diff)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	offers := []dto.Offer{
		{ID: "1", TotalPriceValue: 4200},
		{ID: "2", TotalPriceValue: 2800},
	}

	_ = Sort(offers, &dto.SortOption{Field: "preco_total_pacote", Order: "asc"})

	if offers[0].ID != "1" || offers[1].ID != "2" {
		t.Fatalf("input order changed: %v, %v", offers[0].ID, offers[1].ID)
	}
}
