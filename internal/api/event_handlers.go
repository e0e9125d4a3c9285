package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"chefbook/internal/database"
	"chefbook/internal/models"
)

type bookingRequest struct {
	models.CreateEventData
	Notes string `json:"notes,omitempty"`
}

// handleBookings accepts a public booking submission. Required fields are
// checked before any store access; the link to the submitting user's
// bookings is scheduled asynchronously when a session is present.
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if msg, ok := validateBooking(body.CreateEventData); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var userID string
	if claims, ok := s.maybeAuthenticate(r); ok {
		userID = claims.UserID
	}

	event, err := s.events.Submit(r.Context(), body.CreateEventData, userID, body.Notes)
	if err != nil {
		s.logger.Error().Err(err).Msg("submit booking")
		writeError(w, http.StatusInternalServerError, "failed to submit booking")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func validateBooking(data models.CreateEventData) (string, bool) {
	switch {
	case strings.TrimSpace(data.ChefID) == "":
		return "chef_id is required", false
	case strings.TrimSpace(data.Type) == "":
		return "type is required", false
	case strings.TrimSpace(data.Date) == "":
		return "date is required", false
	case strings.TrimSpace(data.ClientName) == "":
		return "client_name is required", false
	case strings.TrimSpace(data.ClientEmail) == "":
		return "client_email is required", false
	}
	return "", true
}

func (s *HTTPServer) handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": s.events.Events()})
}

// handleAdminEvent routes /api/v1/admin/events/{id} and {id}/status.
func (s *HTTPServer) handleAdminEvent(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/admin/events/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch {
	case action == "status" && r.Method == http.MethodPatch:
		s.patchEventStatus(w, r, id)
	case action == "" && r.Method == http.MethodPatch:
		s.patchEvent(w, r, id)
	case action == "" && r.Method == http.MethodDelete:
		s.deleteEvent(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) patchEvent(w http.ResponseWriter, r *http.Request, id string) {
	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	event, err := s.events.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		s.logger.Error().Err(err).Str("event_id", id).Msg("update event")
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *HTTPServer) patchEventStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	status, err := models.ParseEventStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := s.events.UpdateStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			writeError(w, http.StatusNotFound, "event not found")
		case errors.Is(err, database.ErrInvalidTransition):
			writeError(w, http.StatusConflict, err.Error())
		default:
			s.logger.Error().Err(err).Str("event_id", id).Msg("update event status")
			writeError(w, http.StatusInternalServerError, "failed to update event status")
		}
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *HTTPServer) deleteEvent(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.events.Delete(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		s.logger.Error().Err(err).Str("event_id", id).Msg("delete event")
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
