package expense

import (
	"strings"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID  string `json:"employee_id"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	ExpenseDate string `json:"expense_date"` // YYYY-MM-DD
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Category, ValidCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(ValidCategories, ", "),
		})
	}

	if r.AmountCents <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount_cents",
			Message: "amount_cents must be greater than zero",
		})
	}

	if len(r.Currency) != 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must be a 3-letter ISO code",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if _, valid := validator.IsValidDate(r.ExpenseDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_date",
			Message: "expense_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	ID         string  `json:"-"`
	ReviewerID string  `json:"reviewer_id"`
	Reason     *string `json:"reason,omitempty"` // required on reject
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reviewer_id",
			Message: "reviewer_id is required",
		})
	}

	r.Reason = validator.OptionalString(r.Reason)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Category        string  `json:"category"`
	AmountCents     int64   `json:"amount_cents"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description"`
	ExpenseDate     string  `json:"expense_date"`
	Status          string  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Category   *string `json:"category,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Category != nil && !validator.IsInSlice(*f.Category, ValidCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(ValidCategories, ", "),
		})
	}

	if f.Status != nil {
		validStatuses := []string{StatusSubmitted, StatusApproved, StatusRejected, StatusReimbursed}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: " + strings.Join(validStatuses, ", "),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
	Claims     []Response `json:"claims"`
}
