package user

import (
	"fmt"
	"strings"
	"time"

	"hostelhub/internal/shared/biztime"
	"hostelhub/internal/shared/constants"
)

// User is an account that can sign in. Residents additionally get a
// resident profile per stay; admins manage hostels.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	phone        string
	role         string
	active       bool

	lastLoginAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(email, passwordHash, name, phone, role string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if role != constants.RoleAdmin && role != constants.RoleResident {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()

	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UpdateProfile(name, phone string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.phone = phone
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) IsAdmin() bool {
	return u.role == constants.RoleAdmin
}

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() string {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func ReconstructUser(
	id uint,
	email, passwordHash, name, phone, role string,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
