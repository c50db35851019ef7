package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/msantanna/hotelclean/internal/domain"
	"github.com/msantanna/hotelclean/internal/store"
)

// recordStore is the subset of store.RecordStore that Service requires.
type recordStore interface {
	Create(ctx context.Context, rec *domain.AssignmentRecord) (*domain.AssignmentRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.AssignmentRecord, error)
	List(ctx context.Context) ([]*domain.AssignmentRecord, error)
	Update(ctx context.Context, rec *domain.AssignmentRecord) error
	Delete(ctx context.Context, id int64) error
}

// Service computes the day's cleaning plan from form input and persists it.
type Service struct {
	store  recordStore
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store recordStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateRecord computes rooms to clean and the maid assignment, then saves a
// new record stamped with the current time.
func (s *Service) CreateRecord(ctx context.Context, in domain.NewRecordInput) (*domain.AssignmentRecord, error) {
	rooms := RoomsToClean(ParseExcluded(in.ExcludedRooms))
	assignments := AssignRooms(in.MaidNames, rooms)

	rec := &domain.AssignmentRecord{
		RegistrationTime: s.now().Format(domain.TimeLayout),
		Maids:            in.MaidNames,
		RoomsToClean:     rooms,
		Assignments:      assignments,
	}

	created, err := s.store.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.logger.Info("record created",
		"id", created.ID,
		"maids", len(created.Maids),
		"rooms", len(created.RoomsToClean),
	)
	return created, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]*domain.AssignmentRecord, error) {
	return s.store.List(ctx)
}

func (s *Service) GetRecord(ctx context.Context, id int64) (*domain.AssignmentRecord, error) {
	return s.store.GetByID(ctx, id)
}

// UpdateRecord recomputes the plan from new input and overwrites the stored
// lists. The record keeps its id and original registration time.
func (s *Service) UpdateRecord(ctx context.Context, id int64, in domain.NewRecordInput) (*domain.AssignmentRecord, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if rec == nil {
		return nil, store.ErrNotFound
	}

	rooms := RoomsToClean(ParseExcluded(in.ExcludedRooms))
	rec.Maids = in.MaidNames
	rec.RoomsToClean = rooms
	rec.Assignments = AssignRooms(in.MaidNames, rooms)

	if err := s.store.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	s.logger.Info("record updated", "id", id, "maids", len(rec.Maids))
	return rec, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("record deleted", "id", id)
	return nil
}
