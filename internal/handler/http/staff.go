package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/staff"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)
	DeleteRate(w http.ResponseWriter, r *http.Request)

	CreateInstruction(w http.ResponseWriter, r *http.Request)
	ListInstructions(w http.ResponseWriter, r *http.Request)
	UpdateInstruction(w http.ResponseWriter, r *http.Request)
	DeleteInstruction(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	members, err := h.staffService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("Failed to list staff", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create staff", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", member)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	member, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	member, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update staff", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to deactivate staff", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deactivated", nil)
}

// CreateRate implements StaffHandler.
func (h *StaffHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = staffID

	rate, err := h.staffService.CreateRate(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create staff rate", "error", err, "staff_id", staffID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff rate created successfully", rate)
}

// ListRates implements StaffHandler.
func (h *StaffHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	rates, err := h.staffService.ListRates(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// DeleteRate implements StaffHandler.
func (h *StaffHandlerImpl) DeleteRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "rateID")
	if rateID == "" {
		response.BadRequest(w, "Rate ID is required", nil)
		return
	}

	if err := h.staffService.DeleteRate(r.Context(), rateID); err != nil {
		slog.Error("Failed to delete staff rate", "error", err, "id", rateID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff rate deleted", nil)
}

// CreateInstruction implements StaffHandler.
func (h *StaffHandlerImpl) CreateInstruction(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.CreateInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = staffID

	ins, err := h.staffService.CreateInstruction(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payment instruction", "error", err, "staff_id", staffID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment instruction created successfully", ins)
}

// ListInstructions implements StaffHandler.
func (h *StaffHandlerImpl) ListInstructions(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	instructions, err := h.staffService.ListInstructions(r.Context(), staffID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, instructions)
}

// UpdateInstruction implements StaffHandler.
func (h *StaffHandlerImpl) UpdateInstruction(w http.ResponseWriter, r *http.Request) {
	insID := chi.URLParam(r, "instructionID")
	if insID == "" {
		response.BadRequest(w, "Instruction ID is required", nil)
		return
	}

	var req staff.UpdateInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = insID

	ins, err := h.staffService.UpdateInstruction(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update payment instruction", "error", err, "id", insID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ins)
}

// DeleteInstruction implements StaffHandler.
func (h *StaffHandlerImpl) DeleteInstruction(w http.ResponseWriter, r *http.Request) {
	insID := chi.URLParam(r, "instructionID")
	if insID == "" {
		response.BadRequest(w, "Instruction ID is required", nil)
		return
	}

	if err := h.staffService.DeleteInstruction(r.Context(), insID); err != nil {
		slog.Error("Failed to delete payment instruction", "error", err, "id", insID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment instruction deleted", nil)
}
