package calendaryear

import (
	"fmt"
	"time"

	"hostelhub/internal/shared/biztime"
)

// CalendarYear is a booking period, e.g. "2026/2027". Exactly one year is
// active at a time; activation deactivates the rest.
type CalendarYear struct {
	id        uint
	name      string
	startDate time.Time
	endDate   time.Time
	active    bool

	createdAt time.Time
	updatedAt time.Time
}

func NewCalendarYear(name string, startDate, endDate time.Time) (*CalendarYear, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := biztime.NowUTC()

	return &CalendarYear{
		name:      name,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (c *CalendarYear) Activate() {
	c.active = true
	c.updatedAt = biztime.NowUTC()
}

func (c *CalendarYear) Deactivate() {
	c.active = false
	c.updatedAt = biztime.NowUTC()
}

func (c *CalendarYear) Contains(t time.Time) bool {
	return !t.Before(c.startDate) && !t.After(c.endDate)
}

func (c *CalendarYear) SetID(id uint) {
	c.id = id
}

func (c *CalendarYear) ID() uint {
	return c.id
}

func (c *CalendarYear) Name() string {
	return c.name
}

func (c *CalendarYear) StartDate() time.Time {
	return c.startDate
}

func (c *CalendarYear) EndDate() time.Time {
	return c.endDate
}

func (c *CalendarYear) IsActive() bool {
	return c.active
}

func (c *CalendarYear) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CalendarYear) UpdatedAt() time.Time {
	return c.updatedAt
}

func ReconstructCalendarYear(
	id uint,
	name string,
	startDate, endDate time.Time,
	active bool,
	createdAt, updatedAt time.Time,
) *CalendarYear {
	return &CalendarYear{
		id:        id,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}
