package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnknownSlot     = errors.New("unknown clock-in slot: must be morning, midday or evening")
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this user and date")
)
