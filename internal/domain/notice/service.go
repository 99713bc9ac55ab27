package notice

import (
	"context"
)

type Service interface {
	ListNotices(ctx context.Context, page, pageSize int) ([]NoticeResponse, int, error)
	GetNotice(ctx context.Context, id string) (NoticeResponse, error)

	// Admin operations.
	CreateNotice(ctx context.Context, authorID string, req CreateNoticeRequest) (NoticeResponse, error)
	UpdateNotice(ctx context.Context, id string, req UpdateNoticeRequest) (NoticeResponse, error)
	DeleteNotice(ctx context.Context, id string) error
}
