package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/msantanna/hotelclean/internal/domain"
)

// ErrNotFound is returned by Update and Delete when no record has the given id.
var ErrNotFound = errors.New("record not found")

// RecordStore persists cleaning records. The maid, room, and assignment lists
// are stored as JSON text columns: they are opaque snapshots written and read
// whole, never queried by element.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) Create(ctx context.Context, rec *domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
	maids, rooms, assignments, err := marshalLists(rec)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO cleaning_records (registration_time, maids, rooms_to_clean, assignments)
		VALUES (?, ?, ?, ?)
	`, rec.RegistrationTime, maids, rooms, assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *RecordStore) GetByID(ctx context.Context, id int64) (*domain.AssignmentRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, registration_time, maids, rooms_to_clean, assignments
		FROM cleaning_records WHERE id = ?
	`, id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

func (s *RecordStore) List(ctx context.Context) ([]*domain.AssignmentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, registration_time, maids, rooms_to_clean, assignments
		FROM cleaning_records ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*domain.AssignmentRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// Update overwrites the maid, room, and assignment lists of an existing
// record. The registration time and id never change after creation.
func (s *RecordStore) Update(ctx context.Context, rec *domain.AssignmentRecord) error {
	maids, rooms, assignments, err := marshalLists(rec)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE cleaning_records SET maids = ?, rooms_to_clean = ?, assignments = ?
		WHERE id = ?
	`, maids, rooms, assignments, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *RecordStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM cleaning_records WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func marshalLists(rec *domain.AssignmentRecord) (maids, rooms, assignments []byte, err error) {
	if maids, err = json.Marshal(rec.Maids); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal maids: %w", err)
	}
	if rooms, err = json.Marshal(rec.RoomsToClean); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal rooms: %w", err)
	}
	if assignments, err = json.Marshal(rec.Assignments); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal assignments: %w", err)
	}
	return maids, rooms, assignments, nil
}

func scanRecord(scan func(...any) error) (*domain.AssignmentRecord, error) {
	rec := &domain.AssignmentRecord{}
	var maids, rooms, assignments []byte

	if err := scan(&rec.ID, &rec.RegistrationTime, &maids, &rooms, &assignments); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(maids, &rec.Maids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal maids: %w", err)
	}
	if err := json.Unmarshal(rooms, &rec.RoomsToClean); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}
	if err := json.Unmarshal(assignments, &rec.Assignments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
	}
	return rec, nil
}
