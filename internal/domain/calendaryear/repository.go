package calendaryear

import "context"

type CalendarYearRepository interface {
	Create(ctx context.Context, year *CalendarYear) error
	Update(ctx context.Context, year *CalendarYear) error
	GetByID(ctx context.Context, id uint) (*CalendarYear, error)
	GetActive(ctx context.Context) (*CalendarYear, error)
	// DeactivateAll clears the active flag on every year. Used inside the
	// activation transaction so at most one year stays active.
	DeactivateAll(ctx context.Context) error
	List(ctx context.Context, offset, limit int) ([]*CalendarYear, int64, error)
}
