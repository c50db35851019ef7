package report

import "fmt"

// FloorLabel derives the presentation floor for a room number from its
// hundreds digit. Pure and total: any integer yields a well-defined label,
// room-number validity is not this package's concern.
func FloorLabel(room int) string {
	return fmt.Sprintf("%dº Andar", room/100+1)
}
