package room

import "context"

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Room, error)
	GetByLabelAndHostel(ctx context.Context, label string, hostelID uint) (*Room, error)
	ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*Room, int64, error)
}
