package http

import (
	"log/slog"
	"net/http"

	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/domain/wage"
	"github.com/Pappa-s-Ocean-Catch/my-small-business-sub001/internal/handler/http/response"
)

type ReportHandler interface {
	WeeklyGrid(w http.ResponseWriter, r *http.Request)
	FlatReport(w http.ResponseWriter, r *http.Request)
	PaymentReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService wage.ReportService
}

func NewReportHandler(reportService wage.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// WeeklyGrid implements ReportHandler. Accepts any date inside the wanted
// week; the service snaps it back to Monday.
func (h *ReportHandlerImpl) WeeklyGrid(w http.ResponseWriter, r *http.Request) {
	req := wage.WeekRequest{Week: r.URL.Query().Get("week")}

	grid, err := h.reportService.WeeklyGrid(r.Context(), req)
	if err != nil {
		slog.Error("Failed to build weekly grid", "error", err, "week", req.Week)
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// FlatReport implements ReportHandler.
func (h *ReportHandlerImpl) FlatReport(w http.ResponseWriter, r *http.Request) {
	req := wage.RangeRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	report, err := h.reportService.FlatReport(r.Context(), req)
	if err != nil {
		slog.Error("Failed to build flat report", "error", err, "start", req.Start, "end", req.End)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// PaymentReport implements ReportHandler.
func (h *ReportHandlerImpl) PaymentReport(w http.ResponseWriter, r *http.Request) {
	req := wage.WeekRequest{Week: r.URL.Query().Get("week")}

	report, err := h.reportService.PaymentReport(r.Context(), req)
	if err != nil {
		slog.Error("Failed to build payment report", "error", err, "week", req.Week)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
