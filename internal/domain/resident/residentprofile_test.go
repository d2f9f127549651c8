package resident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "hostelhub/internal/domain/resident/valueobjects"
)

func newAssignedProfile(t *testing.T, code string, expiresAt time.Time) *ResidentProfile {
	p, err := NewResidentProfile(1, "Ada Obi", "Ada@Example.com", "+2348000000000", "female")
	require.NoError(t, err)
	require.NoError(t, p.AssignRoom(10, 2, 3, code, expiresAt))
	return p
}

func TestNewResidentProfile(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		p, err := NewResidentProfile(1, "Ada Obi", " Ada@Example.com ", "", "female")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", p.Email())
		assert.Equal(t, vo.ResidentStatusRegistered, p.Status())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewResidentProfile(0, "Ada", "a@b.c", "", "")
		assert.Error(t, err)

		_, err = NewResidentProfile(1, "", "a@b.c", "", "")
		assert.Error(t, err)

		_, err = NewResidentProfile(1, "Ada", "", "", "")
		assert.Error(t, err)
	})
}

func TestResidentCheckIn(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(14 * 24 * time.Hour)

	t.Run("valid code checks in", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", expiry)
		require.NoError(t, p.CheckIn("ABCDEFGH23", now))
		assert.Equal(t, vo.ResidentStatusCheckedIn, p.Status())
		require.NotNil(t, p.CheckedInAt())
	})

	t.Run("code comparison ignores case and whitespace", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", expiry)
		require.NoError(t, p.CheckIn(" abcdefgh23 ", now))
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", expiry)
		assert.Error(t, p.CheckIn("WRONGCODE9", now))
		assert.Equal(t, vo.ResidentStatusAssigned, p.Status())
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", expiry)
		assert.Error(t, p.CheckIn("ABCDEFGH23", expiry.Add(time.Minute)))
	})

	t.Run("cannot check in without assignment", func(t *testing.T) {
		p, err := NewResidentProfile(1, "Ada Obi", "ada@example.com", "", "female")
		require.NoError(t, err)
		assert.Error(t, p.CheckIn("ABCDEFGH23", now))
	})

	t.Run("double check-in is rejected", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", expiry)
		require.NoError(t, p.CheckIn("ABCDEFGH23", now))
		assert.Error(t, p.CheckIn("ABCDEFGH23", now))
	})
}

func TestResidentCheckOut(t *testing.T) {
	now := time.Date(2027, 6, 30, 9, 0, 0, 0, time.UTC)

	t.Run("checked-in resident checks out and loses code", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", now.Add(time.Hour))
		require.NoError(t, p.CheckIn("ABCDEFGH23", now))
		require.NoError(t, p.CheckOut(now.Add(time.Minute)))

		assert.Equal(t, vo.ResidentStatusCheckedOut, p.Status())
		assert.Nil(t, p.AccessCode())
		assert.False(t, p.HasAccessCode())
	})

	t.Run("registered resident cannot check out", func(t *testing.T) {
		p, err := NewResidentProfile(1, "Ada Obi", "ada@example.com", "", "female")
		require.NoError(t, err)
		assert.Error(t, p.CheckOut(now))
	})

	t.Run("checked-out profile cannot be reassigned", func(t *testing.T) {
		p := newAssignedProfile(t, "ABCDEFGH23", now.Add(time.Hour))
		require.NoError(t, p.CheckOut(now))
		assert.Error(t, p.AssignRoom(11, 2, 3, "NEWCODE234", now.Add(time.Hour)))
	})
}

func TestArchiveResident(t *testing.T) {
	now := time.Date(2027, 6, 30, 9, 0, 0, 0, time.UTC)

	p := newAssignedProfile(t, "ABCDEFGH23", now.Add(time.Hour))
	p.SetID(55)
	require.NoError(t, p.CheckIn("ABCDEFGH23", now.Add(-time.Hour)))
	require.NoError(t, p.CheckOut(now))

	h := ArchiveResident(p, now)
	assert.Equal(t, uint(55), h.ProfileID)
	assert.Equal(t, uint(1), h.UserID)
	assert.Equal(t, "ada@example.com", h.Email)
	assert.Equal(t, uint(10), h.RoomID)
	assert.Equal(t, uint(2), h.HostelID)
	assert.Equal(t, uint(3), h.CalendarYearID)
	assert.Equal(t, now, h.CheckedOutAt)
	require.NotNil(t, h.CheckedInAt)
}
