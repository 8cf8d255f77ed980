package employee

import (
	"strings"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	JoinDate   string  `json:"join_date"` // YYYY-MM-DD
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if _, valid := validator.IsValidDate(r.JoinDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	r.Phone = validator.OptionalString(r.Phone)
	r.Position = validator.OptionalString(r.Position)
	r.Department = validator.OptionalString(r.Department)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	r.Phone = validator.OptionalString(r.Phone)
	r.Position = validator.OptionalString(r.Position)
	r.Department = validator.OptionalString(r.Department)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     string  `json:"status"`
	JoinDate   string  `json:"join_date"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type Filter struct {
	Search     *string `json:"search,omitempty"` // matches name or email
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // full_name, join_date, department
	SortOrder string `json:"sort_order"` // asc, desc
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

	if f.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive), string(StatusOnboarding)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive, onboarding",
			})
		}
	}

	validSortFields := []string{"full_name", "join_date", "department"}
	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: " + strings.Join(validSortFields, ", "),
			})
		}
	} else {
		f.SortBy = "full_name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
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
	Employees  []Response `json:"employees"`
}
