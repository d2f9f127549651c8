package room

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "hostelhub/internal/domain/room/valueobjects"
	"hostelhub/internal/shared/biztime"
)

// Room is a bookable unit inside a hostel. Occupancy is tracked as a count
// against maxCapacity; status flips to occupied when the count reaches it.
type Room struct {
	id            uint
	hostelID      uint
	label         string
	price         decimal.Decimal
	maxCapacity   int
	residentCount int
	status        vo.RoomStatus

	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(hostelID uint, label string, price decimal.Decimal, maxCapacity int) (*Room, error) {
	if hostelID == 0 {
		return nil, fmt.Errorf("hostel ID is required")
	}
	if label == "" {
		return nil, fmt.Errorf("label is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive")
	}
	if maxCapacity < 1 {
		return nil, fmt.Errorf("max capacity must be at least 1")
	}

	now := biztime.NowUTC()

	return &Room{
		hostelID:    hostelID,
		label:       label,
		price:       price.Round(2),
		maxCapacity: maxCapacity,
		status:      vo.RoomStatusAvailable,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// AddResident bumps the occupancy count. The room flips to occupied when it
// reaches max capacity.
func (r *Room) AddResident() error {
	if r.status == vo.RoomStatusMaintenance {
		return fmt.Errorf("room %s is under maintenance", r.label)
	}
	if r.residentCount >= r.maxCapacity {
		return fmt.Errorf("room %s is full", r.label)
	}

	r.residentCount++
	if r.residentCount >= r.maxCapacity {
		r.status = vo.RoomStatusOccupied
	}
	r.updatedAt = biztime.NowUTC()

	return nil
}

// RemoveResident decrements the occupancy count and reopens the room when
// it drops below capacity.
func (r *Room) RemoveResident() error {
	if r.residentCount <= 0 {
		return fmt.Errorf("room %s has no residents", r.label)
	}

	r.residentCount--
	if r.status == vo.RoomStatusOccupied && r.residentCount < r.maxCapacity {
		r.status = vo.RoomStatusAvailable
	}
	r.updatedAt = biztime.NowUTC()

	return nil
}

func (r *Room) StartMaintenance() error {
	if r.residentCount > 0 {
		return fmt.Errorf("room %s still has residents", r.label)
	}
	r.status = vo.RoomStatusMaintenance
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Room) EndMaintenance() {
	if r.status != vo.RoomStatusMaintenance {
		return
	}
	if r.residentCount >= r.maxCapacity {
		r.status = vo.RoomStatusOccupied
	} else {
		r.status = vo.RoomStatusAvailable
	}
	r.updatedAt = biztime.NowUTC()
}

func (r *Room) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive")
	}
	r.price = price.Round(2)
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Room) IsFull() bool {
	return r.residentCount >= r.maxCapacity
}

func (r *Room) IsBookable() bool {
	return r.status == vo.RoomStatusAvailable && !r.IsFull()
}

func (r *Room) SetID(id uint) {
	r.id = id
}

func (r *Room) ID() uint {
	return r.id
}

func (r *Room) HostelID() uint {
	return r.hostelID
}

func (r *Room) Label() string {
	return r.label
}

func (r *Room) Price() decimal.Decimal {
	return r.price
}

func (r *Room) MaxCapacity() int {
	return r.maxCapacity
}

func (r *Room) ResidentCount() int {
	return r.residentCount
}

func (r *Room) Status() vo.RoomStatus {
	return r.status
}

func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Room) UpdatedAt() time.Time {
	return r.updatedAt
}

func ReconstructRoom(
	id, hostelID uint,
	label string,
	price decimal.Decimal,
	maxCapacity, residentCount int,
	status vo.RoomStatus,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		hostelID:      hostelID,
		label:         label,
		price:         price,
		maxCapacity:   maxCapacity,
		residentCount: residentCount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
