package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/msantanna/hotelclean/internal/domain"
)

// ExcelFileName is the name under which the spreadsheet export is offered.
const ExcelFileName = "todos_registros.xlsx"

const excelSheet = "Registros"

// ExportExcel serializes all records into an XLSX workbook with the same
// columns as the CSV export.
func ExportExcel(records []domain.AssignmentRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{"ID", "Dia", "Hora", "Camareiras", "Quartos a Limpar", "Atribuições"}
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		datePart, timePart, _ := strings.Cut(rec.RegistrationTime, "T")
		row := []any{
			rec.ID,
			datePart,
			timePart,
			strings.Join(rec.Maids, "; "),
			joinRoomsWith(rec.RoomsToClean, "; "),
			strings.Join(rec.Assignments, "; "),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
