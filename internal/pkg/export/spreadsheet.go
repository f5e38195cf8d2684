// Package export renders the currently filtered-and-sorted offer view
// as downloadable reports. It always receives the processed view, never
// the raw fetch.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/phsants/usetravel-service/internal/app/dto"
)

const sheetName = "Ofertas"

// Columns is the report column set, identical for spreadsheet and PDF.
var Columns = []string{
	"Origem",
	"Destino",
	"Data Ida",
	"Data Volta",
	"Nome do Hotel",
	"Tipo de Quarto",
	"Refeição",
	"Preço por Pessoa",
	"Preço Total do Pacote",
	"Data da Pesquisa",
}

func offerRow(record dto.Offer) []interface{} {
	return []interface{}{
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
}

// ToSpreadsheet renders the offers as an xlsx workbook with a single
// Ofertas sheet.
func ToSpreadsheet(offers []dto.Offer) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close() //nolint:errcheck

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, column := range Columns {
		header[i] = column
	}

	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, record := range offers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row coordinates: %w", err)
		}

		row := offerRow(record)
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
