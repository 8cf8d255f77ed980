package report

import (
	"context"
	"time"
)

// Repository aggregates attendance and leave data for reporting.
type Repository interface {
	// MonthlySummary returns one row per active employee for the month
	// starting at the given date.
	MonthlySummary(ctx context.Context, monthStart time.Time) ([]MonthlySummaryRow, error)
}
