package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrOverlappingLeave = errors.New("an approved or pending leave already covers this period")
	ErrNotOwner         = errors.New("leave request belongs to another user")
)
