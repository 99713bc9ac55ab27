package attendance

import (
	"strings"
	"time"
)

// Slot is one of the three daily clock-in events.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotMidday  Slot = "midday"
	SlotEvening Slot = "evening"
)

// ParseSlot normalizes a caller-supplied slot name. Unknown names are an
// input error and must never reach the evaluator.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotMorning:
		return SlotMorning, nil
	case SlotMidday:
		return SlotMidday, nil
	case SlotEvening:
		return SlotEvening, nil
	}
	return "", ErrUnknownSlot
}

// Record is one user's attendance for one calendar day. A slot timestamp,
// once set, is never overwritten; Status is always derived by Evaluate,
// never assigned directly by a caller.
type Record struct {
	ID        string
	UserID    string
	Date      time.Time // calendar day; the time part is not meaningful
	Morning   *time.Time
	Midday    *time.Time
	Evening   *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	UserName  *string
	WorkField *string
}

// SlotTime returns the stored timestamp for a slot, or nil when unfilled.
func (r *Record) SlotTime(slot Slot) *time.Time {
	switch slot {
	case SlotMorning:
		return r.Morning
	case SlotMidday:
		return r.Midday
	case SlotEvening:
		return r.Evening
	}
	return nil
}

// Fill sets a slot timestamp and reports whether it was set. A slot that
// already holds a value is left untouched and Fill returns false.
func (r *Record) Fill(slot Slot, t time.Time) bool {
	if r.SlotTime(slot) != nil {
		return false
	}
	switch slot {
	case SlotMorning:
		r.Morning = &t
	case SlotMidday:
		r.Midday = &t
	case SlotEvening:
		r.Evening = &t
	default:
		return false
	}
	return true
}
