package leave

import "time"

type RequestType string

const (
	TypeSick     RequestType = "sick"
	TypePersonal RequestType = "personal"
	TypeOfficial RequestType = "official" // off-site assignment
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusCanceled RequestStatus = "canceled"
)

type Request struct {
	ID             string
	UserID         string
	Type           RequestType
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	AttachmentPath *string
	Status         RequestStatus
	DecidedBy      *string
	DecisionNote   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	UserName *string
}

func ValidType(s string) bool {
	switch RequestType(s) {
	case TypeSick, TypePersonal, TypeOfficial:
		return true
	}
	return false
}

// Covers reports whether the request's date span includes the given date.
func (r *Request) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}
