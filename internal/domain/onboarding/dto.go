package onboarding

import (
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type StartRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *StartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type ProgressResponse struct {
	EmployeeID  string         `json:"employee_id"`
	TotalTasks  int            `json:"total_tasks"`
	ClosedTasks int            `json:"closed_tasks"`
	Completed   bool           `json:"completed"`
	Tasks       []TaskResponse `json:"tasks"`
}
