package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/presensi-app/presensi-backend-go/internal/domain/report"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyWeekly(w http.ResponseWriter, r *http.Request)
	MyMonthly(w http.ResponseWriter, r *http.Request)

	// Admin endpoints.
	Today(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	UserWeekly(w http.ResponseWriter, r *http.Request)
	UserMonthly(w http.ResponseWriter, r *http.Request)
	WeeklyStatusCounts(w http.ResponseWriter, r *http.Request)
	MonthlyStatusCounts(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func weeklyRequest(r *http.Request) report.WeeklyReportRequest {
	q := r.URL.Query()
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))
	week, _ := strconv.Atoi(q.Get("week"))
	return report.WeeklyReportRequest{Month: month, Year: year, Week: week}
}

func monthlyRequest(r *http.Request) report.MonthlyReportRequest {
	q := r.URL.Query()
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))
	return report.MonthlyReportRequest{Month: month, Year: year}
}

// MyWeekly implements ReportHandler. The subject is the authenticated user.
func (h *reportHandlerImpl) MyWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	summary, err := h.reportService.UserWeekly(r.Context(), userID, weeklyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// MyMonthly implements ReportHandler. The subject is the authenticated user.
func (h *reportHandlerImpl) MyMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	summary, err := h.reportService.UserMonthly(r.Context(), userID, monthlyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Today implements ReportHandler.
func (h *reportHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reportService.TodayAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Weekly implements ReportHandler.
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.AllUsersWeekly(r.Context(), weeklyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.AllUsersMonthly(r.Context(), monthlyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// UserWeekly implements ReportHandler.
func (h *reportHandlerImpl) UserWeekly(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.UserWeekly(r.Context(), chi.URLParam(r, "id"), weeklyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// UserMonthly implements ReportHandler.
func (h *reportHandlerImpl) UserMonthly(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.UserMonthly(r.Context(), chi.URLParam(r, "id"), monthlyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// WeeklyStatusCounts implements ReportHandler.
func (h *reportHandlerImpl) WeeklyStatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.WeeklyStatusCounts(r.Context(), weeklyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}

// MonthlyStatusCounts implements ReportHandler.
func (h *reportHandlerImpl) MonthlyStatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.MonthlyStatusCounts(r.Context(), monthlyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}
