package report

import (
	"strconv"
	"strings"

	"github.com/msantanna/hotelclean/internal/domain"
)

// CSVFileName is the name under which the export is offered to the user.
const CSVFileName = "todos_registros.csv"

const csvHeader = "ID,Dia,Hora,Camareiras,Quartos a Limpar,Atribuições"

// ExportCSV serializes all records into the fixed export format: one line
// per record, fields comma-separated, multi-valued fields semicolon-joined,
// the registration timestamp split into date and time at the "T".
//
// The format is fixed verbatim, including assignment entries that themselves
// contain commas; encoding/csv would quote those, so lines are assembled by
// hand.
func ExportCSV(records []domain.AssignmentRecord) []byte {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, rec := range records {
		datePart, timePart, _ := strings.Cut(rec.RegistrationTime, "T")

		fields := []string{
			formatID(rec.ID),
			datePart,
			timePart,
			strings.Join(rec.Maids, ";"),
			joinRoomsWith(rec.RoomsToClean, ";"),
			strings.Join(rec.Assignments, ";"),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func joinRoomsWith(rooms []int, sep string) string {
	parts := make([]string, len(rooms))
	for i, room := range rooms {
		parts[i] = strconv.Itoa(room)
	}
	return strings.Join(parts, sep)
}
