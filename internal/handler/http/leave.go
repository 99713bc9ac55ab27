package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presensi-app/presensi-backend-go/internal/domain/leave"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Attach(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	// Admin endpoints.
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateRequest(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request filed", created)
}

// Attach implements LeaveHandler.
func (h *leaveHandlerImpl) Attach(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err != nil {
		response.BadRequest(w, "Attachment file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.leaveService.AttachFile(r.Context(), userID, chi.URLParam(r, "id"), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListMy implements LeaveHandler.
func (h *leaveHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	requests, err := h.leaveService.ListMyRequests(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Cancel implements LeaveHandler.
func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.leaveService.CancelRequest(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request canceled", nil)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.ListFilter{
		Status: r.URL.Query().Get("status"),
		UserID: r.URL.Query().Get("user_id"),
	}

	requests, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.leaveService.ApproveRequest(r.Context(), adminID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.RejectRequest(r.Context(), adminID, chi.URLParam(r, "id"), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", nil)
}
