package report

import "context"

// Service aggregates attendance records into per-user summaries.
type Service interface {
	// UserWeekly tallies one user over a week of a month. Weeks start on the
	// first of the month; a week index past the month's end yields zero tallies.
	UserWeekly(ctx context.Context, userID string, req WeeklyReportRequest) (Summary, error)

	// UserMonthly tallies one user over a full calendar month.
	UserMonthly(ctx context.Context, userID string, req MonthlyReportRequest) (Summary, error)

	// AllUsersWeekly tallies every active user over a week of a month.
	AllUsersWeekly(ctx context.Context, req WeeklyReportRequest) ([]Summary, error)

	// AllUsersMonthly tallies every active user over a full calendar month.
	AllUsersMonthly(ctx context.Context, req MonthlyReportRequest) ([]Summary, error)

	// TodayAttendance lists today's records for every user who has one.
	TodayAttendance(ctx context.Context) ([]DailyEntry, error)

	// WeeklyStatusCounts tallies finalized statuses across all users for a week.
	WeeklyStatusCounts(ctx context.Context, req WeeklyReportRequest) (StatusCounts, error)

	// MonthlyStatusCounts tallies finalized statuses across all users for a month.
	MonthlyStatusCounts(ctx context.Context, req MonthlyReportRequest) (StatusCounts, error)
}

// DailyEntry is one user's record in the all-users daily listing.
type DailyEntry struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	WorkField *string `json:"work_field"`
	Date      string  `json:"date"`
	Morning   *string `json:"morning"`
	Midday    *string `json:"midday"`
	Evening   *string `json:"evening"`
	Status    string  `json:"status"`
}
