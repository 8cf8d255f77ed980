package onboarding

import (
	"time"
)

// Task statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusSkipped    = "skipped"
)

// Task is one item of a new employee's onboarding checklist.
type Task struct {
	ID          string
	EmployeeID  string
	Title       string
	Description *string
	DueDate     *time.Time
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Closed reports whether the task no longer counts as open work.
func (t Task) Closed() bool {
	return t.Status == StatusDone || t.Status == StatusSkipped
}

// DefaultTask is a checklist template entry applied when onboarding starts.
type DefaultTask struct {
	Title       string
	Description string
	DueInDays   int
}

// DefaultChecklist is the task set created for every new employee.
var DefaultChecklist = []DefaultTask{
	{Title: "Sign employment contract", Description: "Return the signed contract to HR", DueInDays: 3},
	{Title: "Complete personal details", Description: "Fill in contact, bank and emergency information", DueInDays: 3},
	{Title: "Set up workstation", Description: "Collect laptop and access badge from IT", DueInDays: 5},
	{Title: "Meet your team", Description: "Introduction session with the team lead", DueInDays: 7},
	{Title: "Finish compliance training", Description: "Complete the mandatory online courses", DueInDays: 14},
}
