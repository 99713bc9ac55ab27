package attendance

import (
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Slot string `json:"slot"`
}

// Validate checks presence only; slot validity is ParseSlot's job, so an
// unknown slot surfaces as ErrUnknownSlot.
func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Slot) {
		errs = append(errs, validator.ValidationError{
			Field:   "slot",
			Message: "slot is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      *string `json:"user_name,omitempty"`
	WorkField     *string `json:"work_field,omitempty"`
	Date          string  `json:"date"`
	Day           string  `json:"day"`
	MorningTime   *string `json:"morning_time,omitempty"`
	MorningStatus string  `json:"morning_status"`
	MiddayTime    *string `json:"midday_time,omitempty"`
	MiddayStatus  string  `json:"midday_status"`
	EveningTime   *string `json:"evening_time,omitempty"`
	EveningStatus string  `json:"evening_status"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ClockInResponse wraps a record with whether the event actually changed it.
// A re-submission for a filled slot returns the record unchanged with
// Accepted=false.
type ClockInResponse struct {
	Accepted bool           `json:"accepted"`
	Record   RecordResponse `json:"record"`
}

// RangeFilter is a closed date range in YYYY-MM-DD form.
type RangeFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the parsed range. Validate must have passed.
func (f *RangeFilter) Bounds() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", f.StartDate)
	end, _ := time.Parse("2006-01-02", f.EndDate)
	return start, end
}

// NewRecordResponse maps an entity to its response form, deriving the
// per-slot timeliness labels on the fly.
func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:            rec.ID,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		WorkField:     rec.WorkField,
		Date:          rec.Date.Format("2006-01-02"),
		Day:           rec.Date.Weekday().String(),
		MorningTime:   formatSlotTime(rec.Morning),
		MorningStatus: SlotTimeliness(rec, SlotMorning),
		MiddayTime:    formatSlotTime(rec.Midday),
		MiddayStatus:  SlotTimeliness(rec, SlotMidday),
		EveningTime:   formatSlotTime(rec.Evening),
		EveningStatus: SlotTimeliness(rec, SlotEvening),
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatSlotTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
