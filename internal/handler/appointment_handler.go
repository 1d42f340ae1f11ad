package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"serenity-api/internal/model"
	"serenity-api/internal/schedule"
)

type bookingRequest struct {
	Email      string        `json:"email"`
	FullName   string        `json:"fullName"`
	Date       string        `json:"date"`
	StartTime  string        `json:"startTime"`
	Duration   model.Minutes `json:"duration"`
	Concern    string        `json:"concern"`
	Mode       string        `json:"mode"`
	Counsellor string        `json:"counsellor"`
}

// BookAppointment normalizes a raw booking submission and hands it to
// storage. The record always starts with completed=false and a fresh
// createdAt; the storage collaborator assigns the id.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	apt := &model.Appointment{
		Email:      req.Email,
		FullName:   req.FullName,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Duration:   req.Duration,
		Concern:    req.Concern,
		Mode:       req.Mode,
		Counsellor: req.Counsellor,
		Completed:  false,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := h.store.CreateAppointment(r.Context(), apt)
	if err != nil {
		log.Printf("book appointment: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to book appointment. Please try again later.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":       "Appointment booked successfully!",
		"appointmentId": id,
	})
}

// ListAppointments returns one identity's appointments split into
// upcoming and previous, classified against the current time.
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		errorJSON(w, http.StatusBadRequest, "email is required")
		return
	}

	appts, err := h.store.AppointmentsByEmail(r.Context(), email)
	if err != nil {
		log.Printf("list appointments: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	upcoming, previous := schedule.Partition(appts, time.Now())
	if upcoming == nil {
		upcoming = []model.Appointment{}
	}
	if previous == nil {
		previous = []model.Appointment{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"upcoming": upcoming,
		"previous": previous,
	})
}

// BookingOptions serves the booking form's choice lists.
func (h *Handler) BookingOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}
