package roster

import (
	"strconv"
	"strings"
)

// floorRanges is the hotel's fixed room inventory, one inclusive range per
// block. Room 513 does not exist.
var floorRanges = [][2]int{
	{101, 122},
	{201, 219},
	{301, 314},
	{401, 416},
	{501, 512},
	{514, 516},
}

// AllRooms returns every room in the hotel in ascending order. The caller
// owns the returned slice.
func AllRooms() []int {
	var rooms []int
	for _, r := range floorRanges {
		for room := r[0]; room <= r[1]; room++ {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// ParseExcluded parses a comma-separated room list. Blank and non-numeric
// tokens are skipped so a sloppy form value never fails the whole request.
func ParseExcluded(s string) []int {
	excluded := make([]int, 0)
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		room, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		excluded = append(excluded, room)
	}
	return excluded
}

// RoomsToClean returns the inventory minus the excluded rooms, ascending.
func RoomsToClean(excluded []int) []int {
	skip := make(map[int]bool, len(excluded))
	for _, room := range excluded {
		skip[room] = true
	}

	rooms := make([]int, 0)
	for _, room := range AllRooms() {
		if !skip[room] {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// AssignRooms distributes rooms across maids round-robin and formats each
// maid's share as a "<maid>: <room>, <room>" assignment entry. Maids left
// with no rooms get no entry.
func AssignRooms(maids []string, rooms []int) []string {
	if len(maids) == 0 {
		return []string{}
	}

	perMaid := make([][]int, len(maids))
	for i, room := range rooms {
		perMaid[i%len(maids)] = append(perMaid[i%len(maids)], room)
	}

	assignments := make([]string, 0, len(maids))
	for i, maid := range maids {
		if len(perMaid[i]) == 0 {
			continue
		}
		parts := make([]string, len(perMaid[i]))
		for j, room := range perMaid[i] {
			parts[j] = strconv.Itoa(room)
		}
		assignments = append(assignments, maid+": "+strings.Join(parts, ", "))
	}
	return assignments
}
