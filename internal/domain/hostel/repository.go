package hostel

import "context"

type HostelRepository interface {
	Create(ctx context.Context, hostel *Hostel) error
	Update(ctx context.Context, hostel *Hostel) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Hostel, error)
	List(ctx context.Context, offset, limit int) ([]*Hostel, int64, error)
}
