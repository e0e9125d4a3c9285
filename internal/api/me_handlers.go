package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"chefbook/internal/database"
	"chefbook/internal/models"
)

func (s *HTTPServer) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	claims, _ := claimsFromContext(r.Context())
	bookings, err := s.bookings.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("list my bookings")
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// handleMyBooking patches the rating/review on one of the user's bookings.
func (s *HTTPServer) handleMyBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/me/bookings/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var body struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Rating < models.MinReviewRating || body.Rating > models.MaxReviewRating {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	claims, _ := claimsFromContext(r.Context())
	booking, err := s.bookings.UpdateReview(r.Context(), claims.UserID, id, body.Rating, body.Review)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		s.logger.Error().Err(err).Str("booking_id", id).Msg("update review")
		writeError(w, http.StatusInternalServerError, "failed to update review")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *HTTPServer) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		profile, err := s.profiles.Get(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				writeError(w, http.StatusNotFound, "profile not found")
				return
			}
			s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("get profile")
			writeError(w, http.StatusInternalServerError, "failed to load profile")
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodPut, http.MethodPatch:
		var patch models.ProfilePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		profile, err := s.profiles.Update(r.Context(), claims.UserID, patch)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				writeError(w, http.StatusNotFound, "profile not found")
				return
			}
			s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("update profile")
			writeError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
