package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/shift"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
	loc          *time.Location
}

func NewShiftHandler(shiftService shift.ShiftService, loc *time.Location) ShiftHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ShiftHandlerImpl{shiftService: shiftService, loc: loc}
}

// List implements ShiftHandler. The range is a pair of dates; the end date is
// inclusive, covering its whole day.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		response.BadRequest(w, "Query parameters 'start' and 'end' are required", nil)
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startParam, h.loc)
	if err != nil {
		response.BadRequest(w, "start must be YYYY-MM-DD", nil)
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endParam, h.loc)
	if err != nil {
		response.BadRequest(w, "end must be YYYY-MM-DD", nil)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "end must not precede start", nil)
		return
	}
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	shifts, err := h.shiftService.ListForRange(r.Context(), start, end)
	if err != nil {
		slog.Error("Failed to list shifts", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create shift", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	found, err := h.shiftService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.shiftService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update shift", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete shift", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
