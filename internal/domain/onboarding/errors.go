package onboarding

import "errors"

var (
	ErrTaskNotFound             = errors.New("onboarding task not found")
	ErrTaskAlreadyClosed        = errors.New("onboarding task already closed")
	ErrOnboardingAlreadyStarted = errors.New("onboarding already started for this employee")
)
