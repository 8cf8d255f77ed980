package expense

import (
	"time"
)

// Claim statuses
const (
	StatusSubmitted  = "submitted"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusReimbursed = "reimbursed"
)

// Claim categories
const (
	CategoryTravel        = "travel"
	CategoryMeals         = "meals"
	CategoryAccommodation = "accommodation"
	CategoryEquipment     = "equipment"
	CategoryOther         = "other"
)

// ValidCategories lists every category a claim may carry.
var ValidCategories = []string{CategoryTravel, CategoryMeals, CategoryAccommodation, CategoryEquipment, CategoryOther}

// Claim is an expense reimbursement request. Amounts are stored in minor
// units (cents) to avoid floating-point money.
type Claim struct {
	ID          string
	EmployeeID  string
	Category    string
	AmountCents int64
	Currency    string
	Description string
	ExpenseDate time.Time
	Status      string

	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}
