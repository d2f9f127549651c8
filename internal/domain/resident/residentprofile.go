package resident

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	vo "hostelhub/internal/domain/resident/valueobjects"
	"hostelhub/internal/shared/biztime"
)

// ResidentProfile tracks one person's stay for a calendar year, from
// registration through room assignment, check-in and check-out.
type ResidentProfile struct {
	id       uint
	userID   uint
	fullName string
	email    string
	phone    string
	gender   string

	roomID         *uint
	hostelID       *uint
	calendarYearID *uint

	accessCode          *string
	accessCodeExpiresAt *time.Time

	status     vo.ResidentStatus
	checkedIn  *time.Time
	checkedOut *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewResidentProfile(userID uint, fullName, email, phone, gender string) (*ResidentProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()

	return &ResidentProfile{
		userID:    userID,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		gender:    gender,
		status:    vo.ResidentStatusRegistered,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AssignRoom attaches the resident to a room once their booking payment is
// confirmed and issues the check-in access code.
func (r *ResidentProfile) AssignRoom(roomID, hostelID, calendarYearID uint, accessCode string, codeExpiresAt time.Time) error {
	if r.status == vo.ResidentStatusCheckedOut {
		return fmt.Errorf("cannot assign room to checked-out resident")
	}
	if roomID == 0 || hostelID == 0 || calendarYearID == 0 {
		return fmt.Errorf("room, hostel and calendar year IDs are required")
	}
	if accessCode == "" {
		return fmt.Errorf("access code is required")
	}

	r.roomID = &roomID
	r.hostelID = &hostelID
	r.calendarYearID = &calendarYearID
	r.accessCode = &accessCode
	r.accessCodeExpiresAt = &codeExpiresAt
	if r.status == vo.ResidentStatusRegistered {
		r.status = vo.ResidentStatusAssigned
	}
	r.updatedAt = biztime.NowUTC()

	return nil
}

// SetAccessCode replaces the access code without touching the assignment.
// Used by the backfill job for residents assigned before codes existed.
func (r *ResidentProfile) SetAccessCode(accessCode string, expiresAt time.Time) error {
	if accessCode == "" {
		return fmt.Errorf("access code is required")
	}
	r.accessCode = &accessCode
	r.accessCodeExpiresAt = &expiresAt
	r.updatedAt = biztime.NowUTC()
	return nil
}

// CheckIn validates the presented access code and marks the resident as
// physically present. Codes compare in constant time.
func (r *ResidentProfile) CheckIn(presentedCode string, now time.Time) error {
	if r.status == vo.ResidentStatusCheckedIn {
		return fmt.Errorf("resident is already checked in")
	}
	if r.status != vo.ResidentStatusAssigned {
		return fmt.Errorf("resident has no room assignment")
	}
	if r.accessCode == nil {
		return fmt.Errorf("no access code issued")
	}
	if r.accessCodeExpiresAt != nil && now.After(*r.accessCodeExpiresAt) {
		return fmt.Errorf("access code has expired")
	}
	if subtle.ConstantTimeCompare([]byte(*r.accessCode), []byte(strings.ToUpper(strings.TrimSpace(presentedCode)))) != 1 {
		return fmt.Errorf("invalid access code")
	}

	r.status = vo.ResidentStatusCheckedIn
	r.checkedIn = &now
	r.updatedAt = biztime.NowUTC()

	return nil
}

// CheckOut closes the stay. The caller archives the profile into the
// historical residents table and releases the room slot.
func (r *ResidentProfile) CheckOut(now time.Time) error {
	if r.status != vo.ResidentStatusCheckedIn && r.status != vo.ResidentStatusAssigned {
		return fmt.Errorf("resident is not currently staying")
	}

	r.status = vo.ResidentStatusCheckedOut
	r.checkedOut = &now
	r.accessCode = nil
	r.accessCodeExpiresAt = nil
	r.updatedAt = biztime.NowUTC()

	return nil
}

func (r *ResidentProfile) HasAccessCode() bool {
	return r.accessCode != nil && *r.accessCode != ""
}

func (r *ResidentProfile) SetID(id uint) {
	r.id = id
}

func (r *ResidentProfile) ID() uint {
	return r.id
}

func (r *ResidentProfile) UserID() uint {
	return r.userID
}

func (r *ResidentProfile) FullName() string {
	return r.fullName
}

func (r *ResidentProfile) Email() string {
	return r.email
}

func (r *ResidentProfile) Phone() string {
	return r.phone
}

func (r *ResidentProfile) Gender() string {
	return r.gender
}

func (r *ResidentProfile) RoomID() *uint {
	return r.roomID
}

func (r *ResidentProfile) HostelID() *uint {
	return r.hostelID
}

func (r *ResidentProfile) CalendarYearID() *uint {
	return r.calendarYearID
}

func (r *ResidentProfile) AccessCode() *string {
	return r.accessCode
}

func (r *ResidentProfile) AccessCodeExpiresAt() *time.Time {
	return r.accessCodeExpiresAt
}

func (r *ResidentProfile) Status() vo.ResidentStatus {
	return r.status
}

func (r *ResidentProfile) CheckedInAt() *time.Time {
	return r.checkedIn
}

func (r *ResidentProfile) CheckedOutAt() *time.Time {
	return r.checkedOut
}

func (r *ResidentProfile) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ResidentProfile) UpdatedAt() time.Time {
	return r.updatedAt
}

func ReconstructResidentProfile(
	id, userID uint,
	fullName, email, phone, gender string,
	roomID, hostelID, calendarYearID *uint,
	accessCode *string,
	accessCodeExpiresAt *time.Time,
	status vo.ResidentStatus,
	checkedIn, checkedOut *time.Time,
	createdAt, updatedAt time.Time,
) *ResidentProfile {
	return &ResidentProfile{
		id:                  id,
		userID:              userID,
		fullName:            fullName,
		email:               email,
		phone:               phone,
		gender:              gender,
		roomID:              roomID,
		hostelID:            hostelID,
		calendarYearID:      calendarYearID,
		accessCode:          accessCode,
		accessCodeExpiresAt: accessCodeExpiresAt,
		status:              status,
		checkedIn:           checkedIn,
		checkedOut:          checkedOut,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}
