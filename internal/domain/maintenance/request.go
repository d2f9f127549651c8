package maintenance

import (
	"fmt"
	"time"

	"hostelhub/internal/shared/biztime"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsClosed() bool {
	return s == StatusResolved || s == StatusRejected
}

type Category string

const (
	CategoryElectrical Category = "electrical"
	CategoryPlumbing   Category = "plumbing"
	CategoryFurniture  Category = "furniture"
	CategoryOther      Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryFurniture, CategoryOther:
		return true
	default:
		return false
	}
}

// Request is a maintenance issue raised by a resident against their room.
type Request struct {
	id                uint
	roomID            uint
	residentProfileID uint
	category          Category
	description       string
	status            Status
	resolutionNote    *string
	resolvedAt        *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewRequest(roomID, residentProfileID uint, category Category, description string) (*Request, error) {
	if roomID == 0 {
		return nil, fmt.Errorf("room ID is required")
	}
	if residentProfileID == 0 {
		return nil, fmt.Errorf("resident profile ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	now := biztime.NowUTC()

	return &Request{
		roomID:            roomID,
		residentProfileID: residentProfileID,
		category:          category,
		description:       description,
		status:            StatusOpen,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func (r *Request) Start() error {
	if r.status != StatusOpen {
		return fmt.Errorf("cannot start request with status %s", r.status)
	}
	r.status = StatusInProgress
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Request) Resolve(note string) error {
	if r.status.IsClosed() {
		return fmt.Errorf("request is already closed")
	}
	now := biztime.NowUTC()
	r.status = StatusResolved
	r.resolutionNote = &note
	r.resolvedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Request) Reject(note string) error {
	if r.status.IsClosed() {
		return fmt.Errorf("request is already closed")
	}
	now := biztime.NowUTC()
	r.status = StatusRejected
	r.resolutionNote = &note
	r.resolvedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Request) SetID(id uint) {
	r.id = id
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) RoomID() uint {
	return r.roomID
}

func (r *Request) ResidentProfileID() uint {
	return r.residentProfileID
}

func (r *Request) Category() Category {
	return r.category
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ResolutionNote() *string {
	return r.resolutionNote
}

func (r *Request) ResolvedAt() *time.Time {
	return r.resolvedAt
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func ReconstructRequest(
	id, roomID, residentProfileID uint,
	category Category,
	description string,
	status Status,
	resolutionNote *string,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                id,
		roomID:            roomID,
		residentProfileID: residentProfileID,
		category:          category,
		description:       description,
		status:            status,
		resolutionNote:    resolutionNote,
		resolvedAt:        resolvedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}
