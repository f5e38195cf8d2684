package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/phsants/usetravel-service/internal/app/dto"
)

// column widths in mm, sized for A4 landscape.
var pdfWidths = []float64{26, 26, 22, 22, 42, 26, 26, 28, 32, 24}

// ToPDF renders the offers as a landscape report with a generation
// timestamp header and page-number footers.
func ToPDF(offers []dto.Offer, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.AliasNbPages("")

	// the core fonts are cp1252; accented Portuguese needs translation
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "", 8)
		doc.CellFormat(0, 10,
			tr(fmt.Sprintf("Página %d de {nb}", doc.PageNo())),
			"", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 8, tr("Relatório de Ofertas de Viagens"), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6,
		tr("Gerado em: "+generatedAt.Format("02/01/2006")),
		"", 1, "L", false, 0, "")
	doc.Ln(4)

	// header row
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(41, 128, 185)
	doc.SetTextColor(255, 255, 255)
	for i, column := range Columns {
		doc.CellFormat(pdfWidths[i], 7, tr(column), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(0, 0, 0)

	for rowIndex, record := range offers {
		if rowIndex%2 == 1 {
			doc.SetFillColor(240, 240, 240)
		} else {
			doc.SetFillColor(255, 255, 255)
		}

		cells := []string{
			record.Origin,
			record.Destination,
			record.DepartureDate,
			record.ReturnDate,
			record.HotelName,
			record.RoomType,
			record.MealPlan,
			record.PricePerPerson,
			record.TotalPrice,
			record.SearchDate,
		}

		for i, value := range cells {
			doc.CellFormat(pdfWidths[i], 6, tr(value), "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := doc.Output(&buffer); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buffer.Bytes(), nil
}
