package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleOffers() []dto.Offer {
	return []dto.Offer{
		{
			Origin:         "São Paulo",
			Destination:    "Porto Seguro",
			DepartureDate:  "10/07/2026",
			ReturnDate:     "17/07/2026",
			HotelName:      "Resort Arraial",
			RoomType:       "Superior",
			MealPlan:       "Meia Pensão",
			PricePerPerson: "R$ 1.774,95",
			TotalPrice:     "R$ 3.549,90",
			SearchDate:     "28/06/2026",
		},
		{
			Origin:         "Campinas",
			Destination:    "Maceió",
			DepartureDate:  "01/08/2026",
			ReturnDate:     "08/08/2026",
			HotelName:      "Hotel não informado",
			RoomType:       "Standard",
			MealPlan:       "Não informado",
			PricePerPerson: "Não informado",
			TotalPrice:     "Não informado",
			SearchDate:     "28/06/2026",
		},
	}
}

func TestToSpreadsheet(t *testing.T) {
	content, err := ToSpreadsheet(sampleOffers())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	// reopen the workbook and check what a reader would see
	book, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Ofertas")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Origem", rows[0][0])
	assert.Equal(t, "Preço Total do Pacote", rows[0][8])

	assert.Equal(t, "São Paulo", rows[1][0])
	assert.Equal(t, "R$ 3.549,90", rows[1][8])
	assert.Equal(t, "Hotel não informado", rows[2][4])
}

func TestToSpreadsheet_EmptySet(t *testing.T) {
	content, err := ToSpreadsheet(nil)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Ofertas")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}

func TestToPDF(t *testing.T) {
	generatedAt := time.Date(2026, 6, 28, 14, 0, 0, 0, time.UTC)

	content, err := ToPDF(sampleOffers(), generatedAt)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "missing PDF magic bytes")
	assert.Greater(t, len(content), 1000)
}
