package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/msantanna/hotelclean/internal/domain"
)

func TestExportExcel(t *testing.T) {
	data, err := ExportExcel([]domain.AssignmentRecord{{
		ID:               7,
		RegistrationTime: "2025-08-15T09:30:00",
		Maids:            []string{"Ana", "Bea"},
		RoomsToClean:     []int{101, 102},
		Assignments:      []string{"Ana: 101", "Bea: 102"},
	}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	header, err := f.GetCellValue("Registros", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	id, err := f.GetCellValue("Registros", "A2")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	day, err := f.GetCellValue("Registros", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-15", day)

	maids, err := f.GetCellValue("Registros", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Ana; Bea", maids)

	assignments, err := f.GetCellValue("Registros", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Ana: 101; Bea: 102", assignments)
}

func TestExportExcelEmpty(t *testing.T) {
	data, err := ExportExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows("Registros")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
