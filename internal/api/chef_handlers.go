package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"chefbook/internal/database"
	"chefbook/internal/models"
)

// handleChefs is the public listing: active chefs only, with optional
// search and specialty filters.
func (s *HTTPServer) handleChefs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	specialty := strings.TrimSpace(r.URL.Query().Get("specialty"))

	all := s.chefs.Chefs()
	filtered := make([]*models.Chef, 0, len(all))
	for _, chef := range all {
		if chef.Status != models.ChefActive {
			continue
		}
		if specialty != "" && chef.Specialty != specialty {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(chef.Name), search) &&
			!strings.Contains(strings.ToLower(chef.Location), search) {
			continue
		}
		filtered = append(filtered, chef)
	}

	writeJSON(w, http.StatusOK, map[string]any{"chefs": filtered})
}

func (s *HTTPServer) handleAdminChefs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"chefs": s.chefs.Chefs()})
	case http.MethodPost:
		s.createChef(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createChef(w http.ResponseWriter, r *http.Request) {
	var data models.CreateChefData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(data.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(data.Email) == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if strings.TrimSpace(data.Specialty) == "" {
		writeError(w, http.StatusBadRequest, "specialty is required")
		return
	}
	if !s.validSpecialty(data.Specialty) {
		writeError(w, http.StatusBadRequest, "specialty is not in the configured list")
		return
	}
	if data.Status != "" {
		if _, err := models.ParseChefStatus(string(data.Status)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	chef, err := s.chefs.Add(r.Context(), data)
	if err != nil {
		s.logger.Error().Err(err).Msg("create chef")
		writeError(w, http.StatusInternalServerError, "failed to create chef")
		return
	}
	writeJSON(w, http.StatusCreated, chef)
}

// validSpecialty checks the value against the configured picklist, the same
// list /api/v1/specialties serves to the booking form.
func (s *HTTPServer) validSpecialty(specialty string) bool {
	for _, known := range s.cfg.Specialties {
		if specialty == known {
			return true
		}
	}
	return false
}

// handleAdminChef routes /api/v1/admin/chefs/{id} and {id}/status.
func (s *HTTPServer) handleAdminChef(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/admin/chefs/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch {
	case action == "status" && r.Method == http.MethodPatch:
		s.patchChefStatus(w, r, id)
	case action == "" && r.Method == http.MethodPatch:
		s.patchChef(w, r, id)
	case action == "" && r.Method == http.MethodDelete:
		s.deleteChef(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) patchChef(w http.ResponseWriter, r *http.Request, id string) {
	var patch models.ChefPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if patch.Status != nil {
		if _, err := models.ParseChefStatus(string(*patch.Status)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if patch.Specialty != nil && !s.validSpecialty(*patch.Specialty) {
		writeError(w, http.StatusBadRequest, "specialty is not in the configured list")
		return
	}

	chef, err := s.chefs.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "chef not found")
			return
		}
		s.logger.Error().Err(err).Str("chef_id", id).Msg("update chef")
		writeError(w, http.StatusInternalServerError, "failed to update chef")
		return
	}
	writeJSON(w, http.StatusOK, chef)
}

func (s *HTTPServer) patchChefStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	status, err := models.ParseChefStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	chef, err := s.chefs.UpdateStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "chef not found")
			return
		}
		s.logger.Error().Err(err).Str("chef_id", id).Msg("update chef status")
		writeError(w, http.StatusInternalServerError, "failed to update chef status")
		return
	}
	writeJSON(w, http.StatusOK, chef)
}

func (s *HTTPServer) deleteChef(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.chefs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "chef not found")
			return
		}
		s.logger.Error().Err(err).Str("chef_id", id).Msg("delete chef")
		writeError(w, http.StatusInternalServerError, "failed to delete chef")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
