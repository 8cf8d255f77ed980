package report

import (
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

// MonthlySummaryRow aggregates one employee's attendance for one month.
type MonthlySummaryRow struct {
	EmployeeID        string `json:"employee_id"`
	EmployeeName      string `json:"employee_name"`
	DaysPresent       int    `json:"days_present"`
	DaysOutOfOffice   int    `json:"days_out_of_office"`
	DaysAbsent        int    `json:"days_absent"`
	DaysLate          int    `json:"days_late"`
	DaysHalfDay       int    `json:"days_half_day"`
	ApprovedLeaveDays int    `json:"approved_leave_days"`
}

type MonthlySummaryRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlySummaryResponse struct {
	Month string              `json:"month"`
	Rows  []MonthlySummaryRow `json:"rows"`
}
