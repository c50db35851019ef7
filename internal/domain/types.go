package domain

// TimeLayout is the ISO-8601 layout used for AssignmentRecord.RegistrationTime
// on the wire and in the store (no zone, matching the original records).
const TimeLayout = "2006-01-02T15:04:05"

// AssignmentRecord is one day's cleaning plan as held by the store. Clients
// treat it as a read-only snapshot; all mutation goes through the API.
type AssignmentRecord struct {
	ID               int64    `json:"id"`
	RegistrationTime string   `json:"registrationTime"`
	Maids            []string `json:"maids"`
	RoomsToClean     []int    `json:"roomsToClean"`
	Assignments      []string `json:"assignments"`
}

// NewRecordInput carries validated form input for create and update. The
// excluded-rooms string is passed through opaque; the roster service parses it.
type NewRecordInput struct {
	NumMaids      int
	MaidNames     []string
	ExcludedRooms string
}
