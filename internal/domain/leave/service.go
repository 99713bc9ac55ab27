package leave

import (
	"context"
	"io"
)

type Service interface {
	// CreateRequest files a leave request for the user, rejecting spans that
	// overlap an existing pending or approved request.
	CreateRequest(ctx context.Context, userID string, req CreateRequestRequest) (RequestResponse, error)

	// AttachFile stores a supporting document for the user's own request.
	AttachFile(ctx context.Context, userID, requestID, filename string, file io.Reader, size int64) (RequestResponse, error)

	ListMyRequests(ctx context.Context, userID string) ([]RequestResponse, error)
	CancelRequest(ctx context.Context, userID, requestID string) error

	// Admin operations.
	ListRequests(ctx context.Context, filter ListFilter) ([]RequestResponse, error)
	ApproveRequest(ctx context.Context, adminID, requestID string) error
	RejectRequest(ctx context.Context, adminID, requestID string, req RejectRequestRequest) error
}
