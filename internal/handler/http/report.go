package http

import (
	"fmt"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/report"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlySummaryRequest{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.reportService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthly implements ReportHandler. Streams the summary as an .xlsx
// attachment instead of the JSON envelope.
func (h *reportHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlySummaryRequest{
		Month: r.URL.Query().Get("month"),
	}

	data, err := h.reportService.ExportMonthlyXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-summary-%s.xlsx", req.Month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
