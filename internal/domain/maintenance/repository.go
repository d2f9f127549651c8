package maintenance

import "context"

type RequestRepository interface {
	Create(ctx context.Context, request *Request) error
	Update(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	ListByRoom(ctx context.Context, roomID uint, offset, limit int) ([]*Request, int64, error)
	ListByStatus(ctx context.Context, status Status, offset, limit int) ([]*Request, int64, error)
	ListByResident(ctx context.Context, residentProfileID uint, offset, limit int) ([]*Request, int64, error)
}
