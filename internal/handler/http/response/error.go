package response

import (
	"errors"
	"net/http"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/auth"
	"github.com/presensi-app/presensi-backend-go/internal/domain/leave"
	"github.com/presensi-app/presensi-backend-go/internal/domain/notice"
	"github.com/presensi-app/presensi-backend-go/internal/domain/report"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnknownSlot):
		BadRequest(w, "Unknown attendance slot", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Leave request belongs to another user")

	// Notice domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Notice not found")

	// Report domain errors
	case errors.Is(err, report.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid reporting period", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
