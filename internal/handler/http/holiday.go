package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/holiday"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CloneYear(w http.ResponseWriter, r *http.Request)
	Years(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler. Defaults to the current year.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayService.ListForYear(r.Context(), year)
	if err != nil {
		slog.Error("Failed to list public holidays", "error", err, "year", year)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create public holiday", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created successfully", created)
}

// Get implements HolidayHandler.
func (h *HolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	found, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.holidayService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update public holiday", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to deactivate public holiday", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deactivated", nil)
}

// CloneYear implements HolidayHandler.
func (h *HolidayHandlerImpl) CloneYear(w http.ResponseWriter, r *http.Request) {
	var req holiday.CloneYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cloned, err := h.holidayService.CloneYear(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clone holiday year", "error", err,
			"source_year", req.SourceYear, "target_year", req.TargetYear)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday year cloned successfully", cloned)
}

// Years implements HolidayHandler.
func (h *HolidayHandlerImpl) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.holidayService.AvailableYears(r.Context())
	if err != nil {
		slog.Error("Failed to list holiday years", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, years)
}
