package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	MarkAsPaid(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService wage.PaymentService
}

func NewPaymentHandler(paymentService wage.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// MarkAsPaid implements PaymentHandler. A repeat call for the same staff week
// answers 409 and leaves the stored snapshot untouched.
func (h *PaymentHandlerImpl) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	var req wage.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	paid, err := h.paymentService.MarkAsPaid(r.Context(), req)
	if err != nil {
		slog.Error("Failed to mark week as paid", "error", err,
			"staff_id", req.StaffID, "week_start", req.WeekStart)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Week marked as paid", paid)
}

// List implements PaymentHandler.
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := wage.RangeRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	payments, err := h.paymentService.ListPaid(r.Context(), req)
	if err != nil {
		slog.Error("Failed to list wage payments", "error", err, "start", req.Start, "end", req.End)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// Get implements PaymentHandler.
func (h *PaymentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.paymentService.GetPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payment)
}
