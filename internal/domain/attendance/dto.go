package attendance

import (
	"strings"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

// CheckInRequest carries a check-in attempt. Coordinates are optional: a
// request without them skips the geofence evaluation entirely and is accepted
// as present.
type CheckInRequest struct {
	UserID       string   `json:"user_id"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationName *string  `json:"location_name,omitempty"`
	Reason       *string  `json:"reason,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	// Collapse empty strings to the single canonical absent value.
	r.LocationName = validator.OptionalString(r.LocationName)
	r.Reason = validator.OptionalString(r.Reason)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasCoordinates reports whether the request opted into geofence evaluation.
func (r *CheckInRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// CheckOutRequest mirrors CheckInRequest for the closing half of the day.
type CheckOutRequest struct {
	UserID       string   `json:"user_id"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationName *string  `json:"location_name,omitempty"`
	Reason       *string  `json:"reason,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	r.LocationName = validator.OptionalString(r.LocationName)
	r.Reason = validator.OptionalString(r.Reason)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CheckOutRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// RecordResponse is the wire shape of an attendance record.
type RecordResponse struct {
	ID                         string   `json:"id"`
	UserID                     string   `json:"user_id"`
	UserName                   *string  `json:"user_name,omitempty"`
	Date                       string   `json:"date"`
	CheckInTime                *string  `json:"check_in_time,omitempty"`
	CheckOutTime               *string  `json:"check_out_time,omitempty"`
	Status                     string   `json:"status"`
	LocationName               *string  `json:"location_name,omitempty"`
	Latitude                   *float64 `json:"latitude,omitempty"`
	Longitude                  *float64 `json:"longitude,omitempty"`
	Reason                     *string  `json:"reason,omitempty"`
	CheckOutLatitude           *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude          *float64 `json:"check_out_longitude,omitempty"`
	CheckOutReason             *string  `json:"check_out_reason,omitempty"`
	IsOutOfOffice              bool     `json:"is_out_of_office"`
	IsOutOfOfficeCheckOut      bool     `json:"is_out_of_office_check_out"`
	DistanceFromOffice         *int     `json:"distance_from_office,omitempty"`
	CheckOutDistanceFromOffice *int     `json:"check_out_distance_from_office,omitempty"`
	CreatedAt                  string   `json:"created_at"`
	UpdatedAt                  string   `json:"updated_at"`
}

// ========================================
// STATUS DTOs
// ========================================

// Derived today-status values reported by GetStatus. Distinct from record
// statuses: they describe where the user sits in the daily state machine.
const (
	TodayNotCheckedIn = "not_checked_in"
	TodayCheckedOut   = "checked_out"
)

// StatusResponse is a pure projection of the user's today-record.
type StatusResponse struct {
	IsCheckedIn  bool    `json:"is_checked_in"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	TodayStatus  string  `json:"today_status"`
}

// ========================================
// LIST / FILTER DTOs
// ========================================

type Filter struct {
	// Search & Filter
	UserID    *string `json:"user_id,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
	Date      *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, user_name, check_in_time, check_out_time, status
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

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(ValidStatuses, ", "),
		})
	}

	for field, value := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	validSortFields := []string{"date", "user_name", "check_in_time", "check_out_time", "status"}
	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: " + strings.Join(validSortFields, ", "),
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// UpdateRequest lets admins fix wrong attendance data: forgotten check-outs,
// status corrections to late or half_day, and so on.
type UpdateRequest struct {
	ID           string  `json:"-"`
	Status       *string `json:"status,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`  // RFC3339
	CheckOutTime *string `json:"check_out_time,omitempty"` // RFC3339
	Reason       *string `json:"reason,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(ValidStatuses, ", "),
		})
	}

	r.Reason = validator.OptionalString(r.Reason)

	if len(errs) > 0 {
		return errs
	}

	return nil
}
