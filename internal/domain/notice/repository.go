package notice

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, notice Notice) (Notice, error)
	GetByID(ctx context.Context, id string) (Notice, error)
	List(ctx context.Context, limit, offset int) ([]Notice, int, error)
	Update(ctx context.Context, id string, req UpdateNoticeRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
