package expense

import "errors"

var (
	ErrClaimNotFound         = errors.New("expense claim not found")
	ErrClaimAlreadyProcessed = errors.New("expense claim already processed")
	ErrClaimNotApproved      = errors.New("expense claim is not approved")
)
