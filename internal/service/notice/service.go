package notice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/presensi-app/presensi-backend-go/internal/domain/notice"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type NoticeServiceImpl struct {
	notices notice.Repository
	clock   clock.Clock
}

func NewNoticeService(noticeRepo notice.Repository, clk clock.Clock) notice.Service {
	return &NoticeServiceImpl{
		notices: noticeRepo,
		clock:   clk,
	}
}

// ListNotices implements notice.Service. Page numbering starts at 1.
func (s *NoticeServiceImpl) ListNotices(ctx context.Context, page, pageSize int) ([]notice.NoticeResponse, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notices, total, err := s.notices.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}

	out := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, notice.NewNoticeResponse(n))
	}
	return out, total, nil
}

// GetNotice implements notice.Service.
func (s *NoticeServiceImpl) GetNotice(ctx context.Context, id string) (notice.NoticeResponse, error) {
	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return notice.NoticeResponse{}, err
	}
	return notice.NewNoticeResponse(n), nil
}

// CreateNotice implements notice.Service.
func (s *NoticeServiceImpl) CreateNotice(ctx context.Context, authorID string, req notice.CreateNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	created, err := s.notices.Create(ctx, notice.Notice{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		PublishedAt: s.clock.Now(),
	})
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notice: %w", err)
	}
	return notice.NewNoticeResponse(created), nil
}

// UpdateNotice implements notice.Service.
func (s *NoticeServiceImpl) UpdateNotice(ctx context.Context, id string, req notice.UpdateNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	ok, err := s.notices.Update(ctx, id, req)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to update notice: %w", err)
	}
	if !ok {
		return notice.NoticeResponse{}, notice.ErrNoticeNotFound
	}
	return s.GetNotice(ctx, id)
}

// DeleteNotice implements notice.Service.
func (s *NoticeServiceImpl) DeleteNotice(ctx context.Context, id string) error {
	ok, err := s.notices.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if !ok {
		return notice.ErrNoticeNotFound
	}
	return nil
}
