package cron

import (
	"context"
	"log/slog"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

// AttendanceJobs settles attendance statuses after the daily cutoff.
type AttendanceJobs struct {
	attendanceService attendance.Service
	clock             clock.Clock
}

func NewAttendanceJobs(attendanceService attendance.Service, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		clock:             clk,
	}
}

// RegisterJobs schedules the settlement pass for the cutoff hour.
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("settle_attendance_statuses", attendance.DailyCutoff.Hour, j.SettleStatuses)
}

// SettleStatuses re-evaluates recent records so that days left Pending at
// the cutoff flip to their final status even if nobody queries them again.
func (j *AttendanceJobs) SettleStatuses(ctx context.Context) error {
	// A week back covers records that a restart or outage left unsettled.
	end := clock.Today(j.clock)
	start := end.AddDate(0, 0, -7)

	changed, err := j.attendanceService.RecomputeRange(ctx, attendance.RangeFilter{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: settled attendance statuses", "changed", changed)
	return nil
}
