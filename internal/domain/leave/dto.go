package leave

import (
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: sick, personal, official",
		})
	}

	start, startErr := time.Parse("2006-01-02", r.StartDate)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endErr := time.Parse("2006-01-02", r.EndDate)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the parsed date span. Call only after Validate.
func (r *CreateRequestRequest) Bounds() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

type RejectRequestRequest struct {
	Note string `json:"note"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       *string `json:"user_name,omitempty"`
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Reason         string  `json:"reason"`
	AttachmentPath *string `json:"attachment_path,omitempty"`
	Status         string  `json:"status"`
	DecisionNote   *string `json:"decision_note,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func NewRequestResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:             req.ID,
		UserID:         req.UserID,
		UserName:       req.UserName,
		Type:           string(req.Type),
		StartDate:      req.StartDate.Format("2006-01-02"),
		EndDate:        req.EndDate.Format("2006-01-02"),
		Reason:         req.Reason,
		AttachmentPath: req.AttachmentPath,
		Status:         string(req.Status),
		DecisionNote:   req.DecisionNote,
		CreatedAt:      req.CreatedAt.Format(time.RFC3339),
	}
}

// ListFilter narrows admin request listings; zero values match everything.
type ListFilter struct {
	Status string
	UserID string
}
