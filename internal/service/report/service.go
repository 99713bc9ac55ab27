package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/report"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type ReportServiceImpl struct {
	records attendance.Repository
	users   user.Repository
	clock   clock.Clock
}

func NewReportService(
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	clk clock.Clock,
) report.Service {
	return &ReportServiceImpl{
		records: attendanceRepo,
		users:   userRepo,
		clock:   clk,
	}
}

// weekBounds computes the span of a week within a month. Weeks start at the
// first of the month and advance in fixed 7-day steps; the end is clamped to
// the month so weeks never spill into the next one. ok is false when the
// start falls past the month's last day.
func weekBounds(year int, month time.Month, week int) (start, end time.Time, ok bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start = first.AddDate(0, 0, 7*(week-1))
	if start.Month() != month || start.Year() != year {
		return time.Time{}, time.Time{}, false
	}
	end = start.AddDate(0, 0, 6)
	lastDay := first.AddDate(0, 1, -1)
	if end.After(lastDay) {
		end = lastDay
	}
	return start, end, true
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// tally walks the working days of [start, end] and buckets each one.
// Pending records and days not yet reached are left out entirely; a missing
// record counts as absent only once the day is strictly in the past.
func tally(recs []attendance.Record, start, end, today time.Time) (onTime, late, absent int) {
	byDate := make(map[string]attendance.Record, len(recs))
	for _, rec := range recs {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	for d := start; !attendance.DateBefore(end, d); d = d.AddDate(0, 0, 1) {
		if !attendance.IsWorkingDay(d.Weekday()) {
			continue
		}
		rec, found := byDate[d.Format("2006-01-02")]
		if !found {
			if attendance.DateBefore(d, today) {
				absent++
			}
			continue
		}
		switch rec.Status {
		case attendance.StatusValid:
			onTime++
		case attendance.StatusInvalid:
			late++
		}
	}
	return onTime, late, absent
}

func (r *ReportServiceImpl) summarizeUser(ctx context.Context, u user.User, start, end time.Time, label string) (report.Summary, error) {
	recs, err := r.records.ListByUserAndDateRange(ctx, u.ID, start, end)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list records for user %s: %w", u.ID, err)
	}

	onTime, late, absent := tally(recs, start, end, clock.Today(r.clock))
	return report.Summary{
		UserID:    u.ID,
		UserName:  u.Name,
		WorkField: u.WorkField,
		Period:    label,
		OnTime:    onTime,
		Late:      late,
		Absent:    absent,
	}, nil
}

// UserWeekly implements report.Service.
func (r *ReportServiceImpl) UserWeekly(ctx context.Context, userID string, req report.WeeklyReportRequest) (report.Summary, error) {
	if err := req.Validate(); err != nil {
		return report.Summary{}, err
	}

	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return report.Summary{}, report.ErrUserNotFound
		}
		return report.Summary{}, fmt.Errorf("failed to load user: %w", err)
	}

	label := report.WeekLabel(req.Week)
	start, end, ok := weekBounds(req.Year, time.Month(req.Month), req.Week)
	if !ok {
		// A week index past the month's end reports empty rather than erroring.
		return report.Summary{
			UserID:    u.ID,
			UserName:  u.Name,
			WorkField: u.WorkField,
			Period:    label,
		}, nil
	}
	return r.summarizeUser(ctx, u, start, end, label)
}

// UserMonthly implements report.Service.
func (r *ReportServiceImpl) UserMonthly(ctx context.Context, userID string, req report.MonthlyReportRequest) (report.Summary, error) {
	if err := req.Validate(); err != nil {
		return report.Summary{}, err
	}

	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return report.Summary{}, report.ErrUserNotFound
		}
		return report.Summary{}, fmt.Errorf("failed to load user: %w", err)
	}

	start, end := monthBounds(req.Year, time.Month(req.Month))
	return r.summarizeUser(ctx, u, start, end, report.MonthLabel(time.Month(req.Month)))
}

// AllUsersWeekly implements report.Service.
func (r *ReportServiceImpl) AllUsersWeekly(ctx context.Context, req report.WeeklyReportRequest) ([]report.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	users, err := r.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	label := report.WeekLabel(req.Week)
	start, end, ok := weekBounds(req.Year, time.Month(req.Month), req.Week)

	out := make([]report.Summary, 0, len(users))
	for _, u := range users {
		if !ok {
			out = append(out, report.Summary{
				UserID:    u.ID,
				UserName:  u.Name,
				WorkField: u.WorkField,
				Period:    label,
			})
			continue
		}
		summary, err := r.summarizeUser(ctx, u, start, end, label)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// AllUsersMonthly implements report.Service.
func (r *ReportServiceImpl) AllUsersMonthly(ctx context.Context, req report.MonthlyReportRequest) ([]report.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	users, err := r.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	start, end := monthBounds(req.Year, time.Month(req.Month))
	label := report.MonthLabel(time.Month(req.Month))

	out := make([]report.Summary, 0, len(users))
	for _, u := range users {
		summary, err := r.summarizeUser(ctx, u, start, end, label)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// TodayAttendance implements report.Service.
func (r *ReportServiceImpl) TodayAttendance(ctx context.Context) ([]report.DailyEntry, error) {
	recs, err := r.records.ListByDate(ctx, clock.Today(r.clock))
	if err != nil {
		return nil, fmt.Errorf("failed to list today's records: %w", err)
	}

	out := make([]report.DailyEntry, 0, len(recs))
	for _, rec := range recs {
		resp := attendance.NewRecordResponse(rec)
		name := ""
		if rec.UserName != nil {
			name = *rec.UserName
		}
		out = append(out, report.DailyEntry{
			UserID:    rec.UserID,
			UserName:  name,
			WorkField: rec.WorkField,
			Date:      resp.Date,
			Morning:   resp.MorningTime,
			Midday:    resp.MiddayTime,
			Evening:   resp.EveningTime,
			Status:    resp.Status,
		})
	}
	return out, nil
}

func (r *ReportServiceImpl) statusCounts(ctx context.Context, start, end time.Time, label string) (report.StatusCounts, error) {
	recs, err := r.records.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.StatusCounts{}, fmt.Errorf("failed to list records: %w", err)
	}

	counts := report.StatusCounts{Period: label}
	for _, rec := range recs {
		switch rec.Status {
		case attendance.StatusValid:
			counts.Valid++
		case attendance.StatusInvalid:
			counts.Invalid++
		case attendance.StatusPending:
			counts.Pending++
		}
	}
	return counts, nil
}

// WeeklyStatusCounts implements report.Service.
func (r *ReportServiceImpl) WeeklyStatusCounts(ctx context.Context, req report.WeeklyReportRequest) (report.StatusCounts, error) {
	if err := req.Validate(); err != nil {
		return report.StatusCounts{}, err
	}

	label := report.WeekLabel(req.Week)
	start, end, ok := weekBounds(req.Year, time.Month(req.Month), req.Week)
	if !ok {
		return report.StatusCounts{Period: label}, nil
	}
	return r.statusCounts(ctx, start, end, label)
}

// MonthlyStatusCounts implements report.Service.
func (r *ReportServiceImpl) MonthlyStatusCounts(ctx context.Context, req report.MonthlyReportRequest) (report.StatusCounts, error) {
	if err := req.Validate(); err != nil {
		return report.StatusCounts{}, err
	}

	start, end := monthBounds(req.Year, time.Month(req.Month))
	return r.statusCounts(ctx, start, end, report.MonthLabel(time.Month(req.Month)))
}
