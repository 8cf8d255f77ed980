package report

import (
	"context"
)

// Service defines business logic for attendance reporting.
type Service interface {
	// MonthlySummary aggregates attendance per employee for a month.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// ExportMonthlyXLSX renders the monthly summary as a spreadsheet and
	// returns the serialized file. Nothing is written to disk.
	ExportMonthlyXLSX(ctx context.Context, req MonthlySummaryRequest) ([]byte, error)
}
