package clock

import "time"

// DefaultTimezone is the canonical timezone for all attendance policy.
// Every "today" and cutoff decision in the system is made in this zone,
// never in the caller's local time.
const DefaultTimezone = "Asia/Jakarta"

// Clock yields the current moment in the system's canonical timezone.
// Services take a Clock instead of calling time.Now so the cutoff and
// "today" logic is deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a Clock backed by the wall clock in the given timezone.
// An unknown timezone falls back to UTC.
func NewSystem(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

func (f Fixed) Location() *time.Location {
	return f.T.Location()
}

// Today returns the calendar date of now with the time part zeroed,
// in the clock's location.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location())
}
