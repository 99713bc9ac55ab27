package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/presensi-app/presensi-backend-go/internal/domain/notice"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
)

type NoticeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)

	// Admin endpoints.
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type noticeHandlerImpl struct {
	noticeService notice.Service
}

func NewNoticeHandler(noticeService notice.Service) NoticeHandler {
	return &noticeHandlerImpl{
		noticeService: noticeService,
	}
}

// List implements NoticeHandler.
func (h *noticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	notices, total, err := h.noticeService.ListNotices(r.Context(), page, pageSize)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := (total + pageSize - 1) / pageSize
	response.SuccessWithMeta(w, notices, &response.Meta{
		Page:       page,
		Limit:      pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Get implements NoticeHandler.
func (h *noticeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.noticeService.GetNotice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements NoticeHandler.
func (h *noticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req notice.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.noticeService.CreateNotice(r.Context(), authorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Notice published", created)
}

// Update implements NoticeHandler.
func (h *noticeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req notice.UpdateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.noticeService.UpdateNotice(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements NoticeHandler.
func (h *noticeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.noticeService.DeleteNotice(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notice deleted", nil)
}
