package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
