package employee

import (
	"time"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnboarding Status = "onboarding"
)

type Employee struct {
	ID         string
	FullName   string
	Email      string
	Phone      *string
	Position   *string
	Department *string
	Status     Status
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
