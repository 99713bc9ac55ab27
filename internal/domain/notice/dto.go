package notice

import (
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type CreateNoticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateNoticeRequest updates notice fields; nil fields are left unchanged.
type UpdateNoticeRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (r *UpdateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot be empty",
		})
	}
	if r.Body != nil && validator.IsEmpty(*r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoticeResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	AuthorID    string  `json:"author_id"`
	AuthorName  *string `json:"author_name,omitempty"`
	PublishedAt string  `json:"published_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func NewNoticeResponse(n Notice) NoticeResponse {
	return NoticeResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		AuthorID:    n.AuthorID,
		AuthorName:  n.AuthorName,
		PublishedAt: n.PublishedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}
