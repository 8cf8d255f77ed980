package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/employee"
	"github.com/fieldhr/hrms-backend-go/internal/domain/expense"
	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/domain/onboarding"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Out-of-geofence check-in without a reason. The distance travels in the
	// error details so clients can show it.
	var reasonErr *attendance.ReasonRequiredError
	if errors.As(err, &reasonErr) {
		BadRequest(w, reasonErr.Error(), map[string]string{
			"distance_meters": strconv.Itoa(reasonErr.DistanceMeters),
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrInsufficientQuota):
		BadRequest(w, "Insufficient leave quota", nil)
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Expense domain errors
	case errors.Is(err, expense.ErrClaimNotFound):
		NotFound(w, "Expense claim not found")
	case errors.Is(err, expense.ErrClaimAlreadyProcessed):
		Conflict(w, "Expense claim already processed")
	case errors.Is(err, expense.ErrClaimNotApproved):
		BadRequest(w, "Expense claim is not approved", nil)

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")
	case errors.Is(err, onboarding.ErrTaskAlreadyClosed):
		Conflict(w, "Onboarding task already closed")
	case errors.Is(err, onboarding.ErrOnboardingAlreadyStarted):
		Conflict(w, "Onboarding already started for this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
