package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/report"
)

type fakeReportService struct {
	lastUserID string
	lastWeekly report.WeeklyReportRequest
}

func (f *fakeReportService) UserWeekly(_ context.Context, userID string, req report.WeeklyReportRequest) (report.Summary, error) {
	f.lastUserID = userID
	f.lastWeekly = req
	return report.Summary{UserID: userID, Period: report.WeekLabel(req.Week), OnTime: 3}, nil
}

func (f *fakeReportService) UserMonthly(_ context.Context, userID string, req report.MonthlyReportRequest) (report.Summary, error) {
	f.lastUserID = userID
	return report.Summary{UserID: userID, OnTime: 12}, nil
}

func (f *fakeReportService) AllUsersWeekly(_ context.Context, _ report.WeeklyReportRequest) ([]report.Summary, error) {
	return nil, nil
}

func (f *fakeReportService) AllUsersMonthly(_ context.Context, _ report.MonthlyReportRequest) ([]report.Summary, error) {
	return nil, nil
}

func (f *fakeReportService) TodayAttendance(_ context.Context) ([]report.DailyEntry, error) {
	return nil, nil
}

func (f *fakeReportService) WeeklyStatusCounts(_ context.Context, _ report.WeeklyReportRequest) (report.StatusCounts, error) {
	return report.StatusCounts{}, nil
}

func (f *fakeReportService) MonthlyStatusCounts(_ context.Context, _ report.MonthlyReportRequest) (report.StatusCounts, error) {
	return report.StatusCounts{}, nil
}

func authenticatedRequest(t *testing.T, method, target, userID string) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)

	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func TestMyWeeklyResolvesUserFromToken(t *testing.T) {
	svc := &fakeReportService{}
	h := NewReportHandler(svc)

	r := authenticatedRequest(t, http.MethodGet, "/attendance/summary/weekly?month=3&year=2025&week=2", "u1")
	w := httptest.NewRecorder()
	h.MyWeekly(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.lastUserID)
	assert.Equal(t, report.WeeklyReportRequest{Month: 3, Year: 2025, Week: 2}, svc.lastWeekly)

	var body struct {
		Success bool           `json:"success"`
		Data    report.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "u1", body.Data.UserID)
	assert.Equal(t, 3, body.Data.OnTime)
}

func TestMyMonthlyResolvesUserFromToken(t *testing.T) {
	svc := &fakeReportService{}
	h := NewReportHandler(svc)

	r := authenticatedRequest(t, http.MethodGet, "/attendance/summary/monthly?month=3&year=2025", "u2")
	w := httptest.NewRecorder()
	h.MyMonthly(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u2", svc.lastUserID)
}

func TestMyWeeklyWithoutIdentity(t *testing.T) {
	h := NewReportHandler(&fakeReportService{})

	r := httptest.NewRequest(http.MethodGet, "/attendance/summary/weekly", nil)
	w := httptest.NewRecorder()
	h.MyWeekly(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
