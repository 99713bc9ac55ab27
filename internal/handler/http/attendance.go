package http

import (
	"encoding/json"
	"net/http"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !result.Accepted {
		response.SuccessWithMessage(w, "Slot already recorded", result)
		return
	}
	response.Success(w, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	rec, err := h.attendanceService.TodayRecord(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// History implements AttendanceHandler. Without query parameters the full
// history is returned; with start_date/end_date only the span.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if startDate == "" && endDate == "" {
		records, err := h.attendanceService.History(r.Context(), userID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
		return
	}

	records, err := h.attendanceService.HistoryRange(r.Context(), userID, attendance.RangeFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Recompute implements AttendanceHandler. Admin only; re-evaluates every
// record in the requested span.
func (h *attendanceHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	var req attendance.RangeFilter
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	changed, err := h.attendanceService.RecomputeRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"changed": changed})
}
