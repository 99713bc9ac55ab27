package report

import (
	"fmt"
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

// Reporting periods are bounded statically so validation never consults the
// wall clock; time-of-day policy always goes through the injected Clock.
const (
	minReportYear = 2020
	maxReportYear = 2100
)

// ========================================
// WEEKLY REPORT
// ========================================

type WeeklyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Week  int `json:"week"`
}

func (r *WeeklyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < minReportYear || r.Year > maxReportYear {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", minReportYear, maxReportYear),
		})
	}

	if r.Week < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week must be 1 or greater",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// MONTHLY REPORT
// ========================================

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < minReportYear || r.Year > maxReportYear {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", minReportYear, maxReportYear),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Summary is one user's attendance tally over a reporting period.
type Summary struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	WorkField *string `json:"work_field"`
	Period    string  `json:"period"`
	OnTime    int     `json:"on_time"`
	Late      int     `json:"late"`
	Absent    int     `json:"absent"`
}

// StatusCounts tallies finalized daily statuses over a period.
type StatusCounts struct {
	Period  string `json:"period"`
	Valid   int    `json:"valid"`
	Invalid int    `json:"invalid"`
	Pending int    `json:"pending"`
}

// WeekLabel names a weekly period, e.g. "Week 2".
func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

// MonthLabel names a monthly period, e.g. "Month March".
func MonthLabel(month time.Month) string {
	return fmt.Sprintf("Month %s", month.String())
}
