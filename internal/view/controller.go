// Package view keeps a client-side list of cleaning records synchronized
// with the remote store and drives report generation from it.
package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/msantanna/hotelclean/internal/domain"
	"github.com/msantanna/hotelclean/internal/report"
	"github.com/msantanna/hotelclean/internal/reportsink"
)

// ErrMutationInFlight is returned when a mutation targets a record that
// already has one in flight; callers retry after the first one settles.
var ErrMutationInFlight = errors.New("mutation already in flight for this record")

// repository is the subset of client.Client that Controller requires.
type repository interface {
	Create(ctx context.Context, in domain.NewRecordInput) error
	ListAll(ctx context.Context) ([]domain.AssignmentRecord, error)
	GetOne(ctx context.Context, id int64) (*domain.AssignmentRecord, error)
	Update(ctx context.Context, id int64, in domain.NewRecordInput) error
	Remove(ctx context.Context, id int64) error
}

// Controller owns the local record view. The view is only ever replaced
// whole after a successful refresh; a failed call leaves it untouched.
type Controller struct {
	repo   repository
	sink   reportsink.Sink
	logger *slog.Logger

	mu         sync.Mutex
	records    []domain.AssignmentRecord
	refreshGen uint64
	inFlight   map[int64]bool
}

func NewController(repo repository, sink reportsink.Sink, logger *slog.Logger) *Controller {
	return &Controller{
		repo:     repo,
		sink:     sink,
		logger:   logger,
		inFlight: make(map[int64]bool),
	}
}

// Records returns a copy of the current view.
func (c *Controller) Records() []domain.AssignmentRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.AssignmentRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Refresh replaces the whole view with a fresh store snapshot. Overlapping
// refreshes are resolved by generation: a response belonging to a refresh
// that has since been superseded is discarded, so a slow early response can
// never clobber a newer one.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshGen++
	gen := c.refreshGen
	c.mu.Unlock()

	records, err := c.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh records: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.refreshGen {
		c.logger.Debug("discarding stale refresh response", "generation", gen)
		return nil
	}
	c.records = records
	return nil
}

// CreateThenRefresh creates a record and, only once the create has settled
// successfully, refreshes the view. On failure the view stays as it was.
func (c *Controller) CreateThenRefresh(ctx context.Context, in domain.NewRecordInput) error {
	if err := c.repo.Create(ctx, in); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// UpdateThenRefresh updates a record and then refreshes the view. Only one
// mutation per record id may be in flight at a time.
func (c *Controller) UpdateThenRefresh(ctx context.Context, id int64, in domain.NewRecordInput) error {
	if err := c.beginMutation(id); err != nil {
		return err
	}
	defer c.endMutation(id)

	if err := c.repo.Update(ctx, id, in); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// RemoveThenRefresh deletes a record. The record leaves the local view the
// moment the delete succeeds, before the confirming refresh.
func (c *Controller) RemoveThenRefresh(ctx context.Context, id int64) error {
	if err := c.beginMutation(id); err != nil {
		return err
	}
	defer c.endMutation(id)

	if err := c.repo.Remove(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.records[:0:0]
	for _, rec := range c.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	c.records = kept
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// BuildPrintable fetches one record, aggregates it into a floor report, and
// hands the rendered HTML to the sink. Returns the saved location.
func (c *Controller) BuildPrintable(ctx context.Context, id int64) (string, error) {
	rec, err := c.repo.GetOne(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to fetch record %d: %w", id, err)
	}

	rep := report.Aggregate(rec.RoomsToClean, report.ParseAssignments(rec.Assignments))
	payload, err := report.RenderPrintable(rec, rep)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("registro_%d.html", id)
	location, err := c.sink.Save(ctx, name, "text/html; charset=utf-8", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to deliver printable report: %w", err)
	}

	c.logger.Info("printable report built", "id", id, "location", location)
	return location, nil
}

// BuildCSVExport serializes every record to the fixed CSV format and hands
// the file to the sink. Returns the saved location.
func (c *Controller) BuildCSVExport(ctx context.Context) (string, error) {
	records, err := c.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch records: %w", err)
	}

	payload := report.ExportCSV(records)
	location, err := c.sink.Save(ctx, report.CSVFileName, "text/csv; charset=utf-8", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to deliver CSV export: %w", err)
	}

	c.logger.Info("csv export built", "records", len(records), "location", location)
	return location, nil
}

// BuildExcelExport serializes every record to an XLSX workbook and hands the
// file to the sink. Returns the saved location.
func (c *Controller) BuildExcelExport(ctx context.Context) (string, error) {
	records, err := c.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch records: %w", err)
	}

	payload, err := report.ExportExcel(records)
	if err != nil {
		return "", err
	}
	location, err := c.sink.Save(ctx, report.ExcelFileName, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to deliver spreadsheet export: %w", err)
	}

	c.logger.Info("spreadsheet export built", "records", len(records), "location", location)
	return location, nil
}

func (c *Controller) beginMutation(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[id] {
		return fmt.Errorf("%w: id %d", ErrMutationInFlight, id)
	}
	c.inFlight[id] = true
	return nil
}

func (c *Controller) endMutation(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}
