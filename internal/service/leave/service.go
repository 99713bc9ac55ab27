package leave

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/presensi-app/presensi-backend-go/internal/domain/leave"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	requests    leave.Repository
	users       user.Repository
	fileService file.FileService
}

func NewLeaveService(
	leaveRepo leave.Repository,
	userRepo user.Repository,
	fileService file.FileService,
) leave.Service {
	return &LeaveServiceImpl{
		requests:    leaveRepo,
		users:       userRepo,
		fileService: fileService,
	}
}

// CreateRequest implements leave.Service.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, userID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	start, end := req.Bounds()

	overlap, err := s.requests.HasOverlap(ctx, userID, start, end)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if overlap {
		return leave.RequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.requests.Create(ctx, leave.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      leave.RequestType(req.Type),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.NewRequestResponse(created), nil
}

// AttachFile implements leave.Service.
func (s *LeaveServiceImpl) AttachFile(ctx context.Context, userID, requestID, filename string, fileReader io.Reader, size int64) (leave.RequestResponse, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, leave.ErrRequestNotFound) {
			return leave.RequestResponse{}, leave.ErrRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to load leave request: %w", err)
	}
	if req.UserID != userID {
		return leave.RequestResponse{}, leave.ErrNotOwner
	}
	if req.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	path, err := s.fileService.UploadLeaveAttachment(ctx, userID, fileReader, filename)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if req.AttachmentPath != nil {
		_ = s.fileService.DeleteFile(ctx, *req.AttachmentPath)
	}

	if err := s.requests.UpdateAttachmentPath(ctx, requestID, path); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to record attachment: %w", err)
	}

	req.AttachmentPath = &path
	return leave.NewRequestResponse(req), nil
}

// ListMyRequests implements leave.Service.
func (s *LeaveServiceImpl) ListMyRequests(ctx context.Context, userID string) ([]leave.RequestResponse, error) {
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// CancelRequest implements leave.Service. Only the owner may cancel, and only
// while the request is still pending.
func (s *LeaveServiceImpl) CancelRequest(ctx context.Context, userID, requestID string) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.UserID != userID {
		return leave.ErrNotOwner
	}

	ok, err := s.requests.UpdateStatus(ctx, requestID, leave.StatusCanceled, userID, nil)
	if err != nil {
		return fmt.Errorf("failed to cancel leave request: %w", err)
	}
	if !ok {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// ListRequests implements leave.Service.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ApproveRequest implements leave.Service.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, adminID, requestID string) error {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return err
	}

	ok, err := s.requests.UpdateStatus(ctx, requestID, leave.StatusApproved, adminID, nil)
	if err != nil {
		return fmt.Errorf("failed to approve leave request: %w", err)
	}
	if !ok {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// RejectRequest implements leave.Service.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, adminID, requestID string, req leave.RejectRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return err
	}

	ok, err := s.requests.UpdateStatus(ctx, requestID, leave.StatusRejected, adminID, &req.Note)
	if err != nil {
		return fmt.Errorf("failed to reject leave request: %w", err)
	}
	if !ok {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	out := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, leave.NewRequestResponse(req))
	}
	return out
}
