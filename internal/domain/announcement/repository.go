package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *Announcement) error
	Update(ctx context.Context, announcement *Announcement) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	ListPublished(ctx context.Context, hostelID *uint, offset, limit int) ([]*Announcement, int64, error)
	List(ctx context.Context, offset, limit int) ([]*Announcement, int64, error)
}
