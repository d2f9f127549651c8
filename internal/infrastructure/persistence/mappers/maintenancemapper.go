package mappers

import (
	"fmt"

	"hostelhub/internal/domain/maintenance"
	"hostelhub/internal/infrastructure/persistence/models"
)

func MaintenanceRequestToModel(r *maintenance.Request) *models.MaintenanceRequestModel {
	return &models.MaintenanceRequestModel{
		ID:                r.ID(),
		RoomID:            r.RoomID(),
		ResidentProfileID: r.ResidentProfileID(),
		Category:          string(r.Category()),
		Description:       r.Description(),
		Status:            string(r.Status()),
		ResolutionNote:    r.ResolutionNote(),
		ResolvedAt:        r.ResolvedAt(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func MaintenanceRequestToDomain(model *models.MaintenanceRequestModel) (*maintenance.Request, error) {
	status := maintenance.Status(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid maintenance status: %s", model.Status)
	}
	category := maintenance.Category(model.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid maintenance category: %s", model.Category)
	}

	return maintenance.ReconstructRequest(
		model.ID, model.RoomID, model.ResidentProfileID,
		category,
		model.Description,
		status,
		model.ResolutionNote,
		model.ResolvedAt,
		model.CreatedAt, model.UpdatedAt,
	), nil
}
