package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRoomsInventory(t *testing.T) {
	rooms := AllRooms()

	// 22 + 19 + 14 + 16 + 12 + 3
	assert.Len(t, rooms, 86)
	assert.Equal(t, 101, rooms[0])
	assert.Equal(t, 516, rooms[len(rooms)-1])

	assert.Contains(t, rooms, 122)
	assert.NotContains(t, rooms, 123)
	assert.NotContains(t, rooms, 513)
	assert.Contains(t, rooms, 514)
}

func TestParseExcluded(t *testing.T) {
	assert.Equal(t, []int{105, 210}, ParseExcluded("105,210"))
	assert.Equal(t, []int{105, 210}, ParseExcluded(" 105 , 210 "))
	assert.Empty(t, ParseExcluded(""))
	// Non-numeric tokens are skipped, not fatal.
	assert.Equal(t, []int{105}, ParseExcluded("105,abc,"))
}

func TestRoomsToClean(t *testing.T) {
	rooms := RoomsToClean([]int{101, 516})

	assert.Len(t, rooms, 84)
	assert.NotContains(t, rooms, 101)
	assert.NotContains(t, rooms, 516)
	assert.Equal(t, 102, rooms[0])
}

func TestRoomsToCleanNoExclusions(t *testing.T) {
	assert.Equal(t, AllRooms(), RoomsToClean(nil))
}

func TestAssignRoomsRoundRobin(t *testing.T) {
	got := AssignRooms([]string{"Ana", "Bea"}, []int{101, 102, 103, 104, 105})

	require.Len(t, got, 2)
	assert.Equal(t, "Ana: 101, 103, 105", got[0])
	assert.Equal(t, "Bea: 102, 104", got[1])
}

func TestAssignRoomsMoreMaidsThanRooms(t *testing.T) {
	got := AssignRooms([]string{"Ana", "Bea", "Carla"}, []int{101})

	// Maids without rooms get no assignment entry.
	require.Len(t, got, 1)
	assert.Equal(t, "Ana: 101", got[0])
}

func TestAssignRoomsNoMaids(t *testing.T) {
	assert.Empty(t, AssignRooms(nil, []int{101, 102}))
}
