package mappers

import (
	"fmt"

	"hostelhub/internal/domain/room"
	vo "hostelhub/internal/domain/room/valueobjects"
	"hostelhub/internal/infrastructure/persistence/models"
)

func RoomToModel(r *room.Room) *models.RoomModel {
	return &models.RoomModel{
		ID:            r.ID(),
		HostelID:      r.HostelID(),
		Label:         r.Label(),
		Price:         r.Price(),
		MaxCapacity:   r.MaxCapacity(),
		ResidentCount: r.ResidentCount(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func RoomToDomain(model *models.RoomModel) (*room.Room, error) {
	status := vo.RoomStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid room status: %s", model.Status)
	}

	return room.ReconstructRoom(
		model.ID, model.HostelID,
		model.Label,
		model.Price,
		model.MaxCapacity, model.ResidentCount,
		status,
		model.CreatedAt, model.UpdatedAt,
	), nil
}
