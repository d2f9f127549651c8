package room

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "hostelhub/internal/domain/room/valueobjects"
)

func newTestRoom(t *testing.T, capacity int) *Room {
	r, err := NewRoom(1, "A-101", decimal.NewFromInt(150000), capacity)
	require.NoError(t, err)
	return r
}

func TestNewRoom(t *testing.T) {
	t.Run("creates available room", func(t *testing.T) {
		r := newTestRoom(t, 4)
		assert.Equal(t, vo.RoomStatusAvailable, r.Status())
		assert.Equal(t, 0, r.ResidentCount())
		assert.True(t, r.IsBookable())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewRoom(0, "A-101", decimal.NewFromInt(100), 4)
		assert.Error(t, err)

		_, err = NewRoom(1, "", decimal.NewFromInt(100), 4)
		assert.Error(t, err)

		_, err = NewRoom(1, "A-101", decimal.Zero, 4)
		assert.Error(t, err)

		_, err = NewRoom(1, "A-101", decimal.NewFromInt(100), 0)
		assert.Error(t, err)
	})
}

func TestRoomOccupancy(t *testing.T) {
	t.Run("flips to occupied at max capacity", func(t *testing.T) {
		r := newTestRoom(t, 2)

		require.NoError(t, r.AddResident())
		assert.Equal(t, vo.RoomStatusAvailable, r.Status())
		assert.True(t, r.IsBookable())

		require.NoError(t, r.AddResident())
		assert.Equal(t, vo.RoomStatusOccupied, r.Status())
		assert.True(t, r.IsFull())
		assert.False(t, r.IsBookable())
	})

	t.Run("rejects adding beyond capacity", func(t *testing.T) {
		r := newTestRoom(t, 1)
		require.NoError(t, r.AddResident())
		assert.Error(t, r.AddResident())
	})

	t.Run("reopens when a resident leaves", func(t *testing.T) {
		r := newTestRoom(t, 2)
		require.NoError(t, r.AddResident())
		require.NoError(t, r.AddResident())
		require.Equal(t, vo.RoomStatusOccupied, r.Status())

		require.NoError(t, r.RemoveResident())
		assert.Equal(t, vo.RoomStatusAvailable, r.Status())
		assert.Equal(t, 1, r.ResidentCount())
	})

	t.Run("rejects removing from empty room", func(t *testing.T) {
		r := newTestRoom(t, 2)
		assert.Error(t, r.RemoveResident())
	})
}

func TestRoomMaintenance(t *testing.T) {
	t.Run("maintenance blocks new residents", func(t *testing.T) {
		r := newTestRoom(t, 2)
		require.NoError(t, r.StartMaintenance())
		assert.Error(t, r.AddResident())
		assert.False(t, r.IsBookable())
	})

	t.Run("cannot start with residents inside", func(t *testing.T) {
		r := newTestRoom(t, 2)
		require.NoError(t, r.AddResident())
		assert.Error(t, r.StartMaintenance())
	})

	t.Run("ending maintenance restores availability", func(t *testing.T) {
		r := newTestRoom(t, 2)
		require.NoError(t, r.StartMaintenance())
		r.EndMaintenance()
		assert.Equal(t, vo.RoomStatusAvailable, r.Status())
	})
}
