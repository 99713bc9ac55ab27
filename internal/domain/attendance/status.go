package attendance

import "time"

// Status is the derived verdict for one day's record.
type Status string

const (
	// StatusPending means the day is still in progress: required slots are
	// missing but the daily cutoff has not passed yet.
	StatusPending Status = "Pending"
	// StatusValid means every required slot was filled inside its window.
	StatusValid Status = "Valid"
	// StatusInvalid means the day is finalized as late, incomplete, or fell
	// on a day with no expected attendance.
	StatusInvalid Status = "Invalid"
)

// TimeOfDay is a wall-clock time within a day, to minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60
}

// Window is the inclusive [start, end] time-of-day range within which a
// slot's timestamp counts as on time.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether the time-of-day of t falls inside the window,
// inclusive of both ends.
func (w Window) Contains(t time.Time) bool {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sec >= w.Start.seconds() && sec <= w.End.seconds()
}

// DailyCutoff is the fixed time after which an incomplete day's status is
// finalized as Invalid instead of staying Pending. It is a policy constant,
// not derived from the slot windows.
var DailyCutoff = TimeOfDay{Hour: 21, Minute: 0}

var slotWindows = map[Slot]Window{
	SlotMorning: {Start: TimeOfDay{7, 30}, End: TimeOfDay{8, 15}},
	SlotMidday:  {Start: TimeOfDay{12, 0}, End: TimeOfDay{13, 30}},
	SlotEvening: {Start: TimeOfDay{16, 0}, End: TimeOfDay{21, 0}},
}

// WindowFor returns the tolerance window for a slot.
func WindowFor(slot Slot) Window {
	return slotWindows[slot]
}

// RequiredSlots returns the slots a record must fill for the given
// day-of-week. Saturday drops the evening slot; Sunday expects nothing.
func RequiredSlots(day time.Weekday) []Slot {
	switch day {
	case time.Sunday:
		return nil
	case time.Saturday:
		return []Slot{SlotMorning, SlotMidday}
	default:
		return []Slot{SlotMorning, SlotMidday, SlotEvening}
	}
}

// IsWorkingDay reports whether attendance is expected on the given day.
func IsWorkingDay(day time.Weekday) bool {
	return day != time.Sunday
}

// SameDate reports whether a and b fall on the same calendar date,
// ignoring location and time of day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateBefore reports whether a's calendar date is strictly before b's.
func DateBefore(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}

func beforeCutoff(now time.Time) bool {
	sec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	return sec < DailyCutoff.seconds()
}

// Evaluate derives a record's status from its slot values, the day-of-week
// requirement, and the current moment. It is total over any combination of
// slots and dates, and order-independent: only final slot values matter.
func Evaluate(rec Record, now time.Time) Status {
	day := rec.Date.Weekday()
	if day == time.Sunday {
		return StatusInvalid
	}

	required := RequiredSlots(day)
	filled := 0
	for _, slot := range required {
		if rec.SlotTime(slot) != nil {
			filled++
		}
	}

	if filled < len(required) {
		// Today is provisional until the cutoff passes.
		if SameDate(rec.Date, now) && beforeCutoff(now) {
			return StatusPending
		}
		return StatusInvalid
	}

	for _, slot := range required {
		if !WindowFor(slot).Contains(*rec.SlotTime(slot)) {
			return StatusInvalid
		}
	}
	return StatusValid
}

// Slot timeliness labels, computed at presentation time and never stored.
const (
	TimelinessOnTime      = "on_time"
	TimelinessLate        = "late"
	TimelinessMissing     = "missing"
	TimelinessNotRequired = "not_required"
)

// SlotTimeliness classifies a single slot of a record for display.
func SlotTimeliness(rec Record, slot Slot) string {
	required := false
	for _, s := range RequiredSlots(rec.Date.Weekday()) {
		if s == slot {
			required = true
			break
		}
	}
	if !required {
		return TimelinessNotRequired
	}
	t := rec.SlotTime(slot)
	if t == nil {
		return TimelinessMissing
	}
	if WindowFor(slot).Contains(*t) {
		return TimelinessOnTime
	}
	return TimelinessLate
}
