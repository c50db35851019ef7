package roster

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msantanna/hotelclean/internal/db"
	"github.com/msantanna/hotelclean/internal/domain"
	"github.com/msantanna/hotelclean/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	svc := NewService(store.NewRecordStore(d), slog.Default())
	svc.now = func() time.Time {
		return time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceCreateRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateRecord(ctx, domain.NewRecordInput{
		NumMaids:      2,
		MaidNames:     []string{"Ana", "Bea"},
		ExcludedRooms: "105",
	})
	require.NoError(t, err)

	assert.NotZero(t, rec.ID)
	assert.Equal(t, "2025-08-15T09:30:00", rec.RegistrationTime)
	assert.Equal(t, []string{"Ana", "Bea"}, rec.Maids)
	assert.Len(t, rec.RoomsToClean, 85)
	assert.NotContains(t, rec.RoomsToClean, 105)
	require.Len(t, rec.Assignments, 2)
	assert.Contains(t, rec.Assignments[0], "Ana: ")
	assert.Contains(t, rec.Assignments[1], "Bea: ")
}

func TestServiceCreateRecordAssignmentsCoverRooms(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.CreateRecord(context.Background(), domain.NewRecordInput{
		NumMaids:  3,
		MaidNames: []string{"Ana", "Bea", "Carla"},
	})
	require.NoError(t, err)

	require.Len(t, rec.Assignments, 3)

	// Every room to clean appears in exactly one assignment entry.
	assigned := make([]int, 0, len(rec.RoomsToClean))
	for _, entry := range rec.Assignments {
		_, roomsPart, ok := strings.Cut(entry, ": ")
		require.True(t, ok)
		for _, token := range strings.Split(roomsPart, ", ") {
			room, err := strconv.Atoi(token)
			require.NoError(t, err)
			assigned = append(assigned, room)
		}
	}
	assert.ElementsMatch(t, rec.RoomsToClean, assigned)
}

func TestServiceUpdateRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, domain.NewRecordInput{
		NumMaids:  2,
		MaidNames: []string{"Ana", "Bea"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRecord(ctx, created.ID, domain.NewRecordInput{
		NumMaids:      1,
		MaidNames:     []string{"Carla"},
		ExcludedRooms: "101,102",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.RegistrationTime, updated.RegistrationTime)
	assert.Equal(t, []string{"Carla"}, updated.Maids)
	assert.Len(t, updated.RoomsToClean, 84)
	require.Len(t, updated.Assignments, 1)
}

func TestServiceUpdateRecordMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateRecord(context.Background(), 999, domain.NewRecordInput{
		NumMaids:  1,
		MaidNames: []string{"Ana"},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestServiceDeleteRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, domain.NewRecordInput{
		NumMaids:  1,
		MaidNames: []string{"Ana"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, created.ID))

	rec, err := svc.GetRecord(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestServiceListRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRecord(ctx, domain.NewRecordInput{NumMaids: 1, MaidNames: []string{"Ana"}})
	require.NoError(t, err)
	_, err = svc.CreateRecord(ctx, domain.NewRecordInput{NumMaids: 1, MaidNames: []string{"Bea"}})
	require.NoError(t, err)

	records, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
