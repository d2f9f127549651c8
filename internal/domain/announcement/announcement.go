package announcement

import (
	"fmt"
	"time"

	"hostelhub/internal/shared/biztime"
)

type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceResidents Audience = "residents"
	AudienceAdmins    Audience = "admins"
)

func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceResidents, AudienceAdmins:
		return true
	default:
		return false
	}
}

// Announcement is a notice posted by an admin. The body is markdown;
// renderedBody holds the sanitized HTML produced at save time.
type Announcement struct {
	id           uint
	hostelID     *uint
	authorID     uint
	title        string
	body         string
	renderedBody string
	audience     Audience
	publishedAt  *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewAnnouncement(authorID uint, hostelID *uint, title, body, renderedBody string, audience Audience) (*Announcement, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}
	if !audience.IsValid() {
		return nil, fmt.Errorf("invalid audience: %s", audience)
	}

	now := biztime.NowUTC()

	return &Announcement{
		hostelID:     hostelID,
		authorID:     authorID,
		title:        title,
		body:         body,
		renderedBody: renderedBody,
		audience:     audience,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (a *Announcement) Publish() {
	if a.publishedAt != nil {
		return
	}
	now := biztime.NowUTC()
	a.publishedAt = &now
	a.updatedAt = now
}

func (a *Announcement) Unpublish() {
	a.publishedAt = nil
	a.updatedAt = biztime.NowUTC()
}

func (a *Announcement) UpdateContent(title, body, renderedBody string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if body == "" {
		return fmt.Errorf("body is required")
	}
	a.title = title
	a.body = body
	a.renderedBody = renderedBody
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Announcement) IsPublished() bool {
	return a.publishedAt != nil
}

func (a *Announcement) SetID(id uint) {
	a.id = id
}

func (a *Announcement) ID() uint {
	return a.id
}

func (a *Announcement) HostelID() *uint {
	return a.hostelID
}

func (a *Announcement) AuthorID() uint {
	return a.authorID
}

func (a *Announcement) Title() string {
	return a.title
}

func (a *Announcement) Body() string {
	return a.body
}

func (a *Announcement) RenderedBody() string {
	return a.renderedBody
}

func (a *Announcement) Audience() Audience {
	return a.audience
}

func (a *Announcement) PublishedAt() *time.Time {
	return a.publishedAt
}

func (a *Announcement) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Announcement) UpdatedAt() time.Time {
	return a.updatedAt
}

func ReconstructAnnouncement(
	id uint,
	hostelID *uint,
	authorID uint,
	title, body, renderedBody string,
	audience Audience,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Announcement {
	return &Announcement{
		id:           id,
		hostelID:     hostelID,
		authorID:     authorID,
		title:        title,
		body:         body,
		renderedBody: renderedBody,
		audience:     audience,
		publishedAt:  publishedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
