package report

import "sort"

// FloorRooms is one floor's room list, ascending.
type FloorRooms struct {
	Floor string
	Rooms []int
}

// MaidFloorRooms is one maid's assigned rooms grouped by floor.
type MaidFloorRooms struct {
	Maid   string
	Floors []FloorRooms
}

// FloorReport is the derived view of one record, recomputed per request and
// never cached.
//
// The two sections deliberately order floors differently: RoomsByFloor keeps
// the order floors are first encountered in the room list, while
// AssignmentsByMaid sorts maids and their floors alphabetically for the
// printed table.
type FloorReport struct {
	RoomsByFloor      []FloorRooms
	AssignmentsByMaid []MaidFloorRooms
}

// Aggregate groups the rooms to clean and each maid's assigned rooms by
// floor. Pure: inputs are never mutated and identical inputs always produce
// structurally identical output.
func Aggregate(roomsToClean []int, byMaid []MaidRooms) *FloorReport {
	return &FloorReport{
		RoomsByFloor:      groupByFloor(roomsToClean, false),
		AssignmentsByMaid: groupAssignments(byMaid),
	}
}

// groupByFloor buckets rooms by floor label and sorts each bucket ascending.
// Floor order is first-encounter order, or alphabetical when sorted is set.
func groupByFloor(rooms []int, sorted bool) []FloorRooms {
	floors := make([]FloorRooms, 0)
	index := make(map[string]int)

	for _, room := range rooms {
		label := FloorLabel(room)
		i, seen := index[label]
		if !seen {
			i = len(floors)
			index[label] = i
			floors = append(floors, FloorRooms{Floor: label})
		}
		floors[i].Rooms = append(floors[i].Rooms, room)
	}

	for i := range floors {
		sort.Ints(floors[i].Rooms)
	}
	if sorted {
		sort.Slice(floors, func(i, j int) bool { return floors[i].Floor < floors[j].Floor })
	}
	return floors
}

func groupAssignments(byMaid []MaidRooms) []MaidFloorRooms {
	out := make([]MaidFloorRooms, 0, len(byMaid))
	for _, mr := range byMaid {
		out = append(out, MaidFloorRooms{
			Maid:   mr.Maid,
			Floors: groupByFloor(mr.Rooms, true),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Maid < out[j].Maid })
	return out
}
