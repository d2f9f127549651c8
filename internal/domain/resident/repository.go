package resident

import "context"

type ResidentProfileRepository interface {
	Create(ctx context.Context, profile *ResidentProfile) error
	Update(ctx context.Context, profile *ResidentProfile) error
	GetByID(ctx context.Context, id uint) (*ResidentProfile, error)
	GetByUserID(ctx context.Context, userID uint) (*ResidentProfile, error)
	GetByEmail(ctx context.Context, email string) (*ResidentProfile, error)
	GetActiveByRoomAndYear(ctx context.Context, roomID, calendarYearID uint) ([]*ResidentProfile, error)
	ListWithoutAccessCode(ctx context.Context) ([]*ResidentProfile, error)
	ListByHostel(ctx context.Context, hostelID uint, offset, limit int) ([]*ResidentProfile, int64, error)
}

type HistoricalResidentRepository interface {
	Create(ctx context.Context, record *HistoricalResident) error
	GetByID(ctx context.Context, id uint) (*HistoricalResident, error)
	GetByEmail(ctx context.Context, email string) (*HistoricalResident, error)
	GetByRoomAndYear(ctx context.Context, roomID, calendarYearID uint) ([]*HistoricalResident, error)
	List(ctx context.Context, offset, limit int) ([]*HistoricalResident, int64, error)
}
