package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/msantanna/hotelclean/internal/domain"
)

//go:embed templates/print.html
var templatesFS embed.FS

var printTemplate = template.Must(template.ParseFS(templatesFS, "templates/print.html"))

type printFloor struct {
	Floor string
	Rooms string
}

type printRow struct {
	Maid  string
	Floor string
	Rooms string
}

type printData struct {
	Date   string
	Floors []printFloor
	Rows   []printRow
}

// RenderPrintable renders a record's floor report as a standalone printable
// HTML page: the localized date heading, the rooms-to-clean section per
// floor, and the assignment table ordered by maid then floor.
func RenderPrintable(rec *domain.AssignmentRecord, rep *FloorReport) ([]byte, error) {
	data := printData{Date: formatDay(rec.RegistrationTime)}

	for _, fr := range rep.RoomsByFloor {
		data.Floors = append(data.Floors, printFloor{
			Floor: fr.Floor,
			Rooms: joinRooms(fr.Rooms),
		})
	}

	for _, maid := range rep.AssignmentsByMaid {
		for _, fr := range maid.Floors {
			data.Rows = append(data.Rows, printRow{
				Maid:  maid.Maid,
				Floor: fr.Floor,
				Rooms: joinRooms(fr.Rooms),
			})
		}
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render printable report: %w", err)
	}
	return buf.Bytes(), nil
}

// formatDay turns a registration timestamp into the "Dia DD/MM/YYYY"
// heading. An unparseable timestamp is shown raw rather than failing the
// whole report.
func formatDay(registrationTime string) string {
	t, err := time.Parse(domain.TimeLayout, registrationTime)
	if err != nil {
		return "Dia " + registrationTime
	}
	return t.Format("Dia 02/01/2006")
}

func joinRooms(rooms []int) string {
	return joinRoomsWith(rooms, ", ")
}
