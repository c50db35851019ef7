package report

import (
	"strconv"
	"strings"
)

// MaidRooms is one maid's parsed room list, in the order the rooms appeared.
type MaidRooms struct {
	Maid  string
	Rooms []int
}

// ParseAssignments parses wire-format assignment entries ("<maid>: <room>,
// <room>") into per-maid room lists, preserving the order each maid first
// appears. Malformed input degrades instead of failing: an entry without the
// ": " separator is kept whole as a maid with no rooms, and non-numeric room
// tokens are skipped, so one corrupt record never blocks a report.
func ParseAssignments(entries []string) []MaidRooms {
	parsed := make([]MaidRooms, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, entry := range entries {
		maid, roomsPart, ok := strings.Cut(entry, ": ")
		if !ok {
			maid, roomsPart = entry, ""
		}

		rooms := make([]int, 0)
		if roomsPart != "" {
			for _, token := range strings.Split(roomsPart, ", ") {
				room, err := strconv.Atoi(strings.TrimSpace(token))
				if err != nil {
					continue
				}
				rooms = append(rooms, room)
			}
		}

		if i, seen := index[maid]; seen {
			parsed[i].Rooms = append(parsed[i].Rooms, rooms...)
			continue
		}
		index[maid] = len(parsed)
		parsed = append(parsed, MaidRooms{Maid: maid, Rooms: rooms})
	}

	return parsed
}
