package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/msantanna/hotelclean/internal/domain"
	"github.com/msantanna/hotelclean/internal/store"
)

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	input, err := readRecordInput(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.service.CreateRecord(r.Context(), input)
	if err != nil {
		http.Error(w, "failed to create record", http.StatusInternalServerError)
		s.logger.Error("create record", "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.ListRecords(r.Context())
	if err != nil {
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		s.logger.Error("list records", "error", err)
		return
	}
	if records == nil {
		records = []*domain.AssignmentRecord{}
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	rec, err := s.service.GetRecord(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		s.logger.Error("get record", "id", id, "error", err)
		return
	}
	if rec == nil {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	input, err := readRecordInput(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.service.UpdateRecord(r.Context(), id, input)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to update record", http.StatusInternalServerError)
		s.logger.Error("update record", "id", id, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	err = s.service.DeleteRecord(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		s.logger.Error("delete record", "id", id, "error", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

const maxMaids = 100

// readRecordInput decodes the form-encoded create/update body. Maid names
// may arrive as repeated params or as one comma-joined value; both forms are
// accepted, matching what browsers send for array values.
func readRecordInput(r *http.Request) (domain.NewRecordInput, error) {
	if err := r.ParseForm(); err != nil {
		return domain.NewRecordInput{}, fmt.Errorf("malformed form body")
	}

	numMaids, err := strconv.Atoi(r.FormValue("numMaids"))
	if err != nil || numMaids <= 0 {
		return domain.NewRecordInput{}, fmt.Errorf("numMaids must be a positive integer")
	}
	if numMaids > maxMaids {
		return domain.NewRecordInput{}, fmt.Errorf("numMaids too large")
	}

	var maidNames []string
	for _, value := range r.Form["maidNames"] {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				maidNames = append(maidNames, name)
			}
		}
	}
	if len(maidNames) == 0 {
		return domain.NewRecordInput{}, fmt.Errorf("at least one maid name is required")
	}

	return domain.NewRecordInput{
		NumMaids:      numMaids,
		MaidNames:     maidNames,
		ExcludedRooms: r.FormValue("excludedRooms"),
	}, nil
}
