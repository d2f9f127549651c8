package resident

import (
	"time"

	"hostelhub/internal/shared/biztime"
)

// HistoricalResident is the immutable archive row written at check-out.
// Reconciliation matches stray payments against these by email, so the
// snapshot keeps contact details rather than referencing the user table.
type HistoricalResident struct {
	ID             uint
	ProfileID      uint
	UserID         uint
	FullName       string
	Email          string
	Phone          string
	RoomID         uint
	HostelID       uint
	CalendarYearID uint
	CheckedInAt    *time.Time
	CheckedOutAt   time.Time
	ArchivedAt     time.Time
}

// ArchiveResident snapshots a checked-out profile into a historical record.
func ArchiveResident(profile *ResidentProfile, checkedOutAt time.Time) *HistoricalResident {
	h := &HistoricalResident{
		ProfileID:    profile.ID(),
		UserID:       profile.UserID(),
		FullName:     profile.FullName(),
		Email:        profile.Email(),
		Phone:        profile.Phone(),
		CheckedInAt:  profile.CheckedInAt(),
		CheckedOutAt: checkedOutAt,
		ArchivedAt:   biztime.NowUTC(),
	}
	if profile.RoomID() != nil {
		h.RoomID = *profile.RoomID()
	}
	if profile.HostelID() != nil {
		h.HostelID = *profile.HostelID()
	}
	if profile.CalendarYearID() != nil {
		h.CalendarYearID = *profile.CalendarYearID()
	}
	return h
}
