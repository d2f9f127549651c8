package mappers

import (
	"fmt"

	"hostelhub/internal/domain/hostel"
	"hostelhub/internal/infrastructure/persistence/models"
)

func HostelToModel(h *hostel.Hostel) *models.HostelModel {
	return &models.HostelModel{
		ID:                       h.ID(),
		Name:                     h.Name(),
		Address:                  h.Address(),
		Gender:                   string(h.Gender()),
		AllowPartialPayment:      h.AllowPartialPayment(),
		PartialPaymentPercentage: h.PartialPaymentPercentage(),
		CreatedAt:                h.CreatedAt(),
		UpdatedAt:                h.UpdatedAt(),
	}
}

func HostelToDomain(model *models.HostelModel) (*hostel.Hostel, error) {
	gender := hostel.Gender(model.Gender)
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid hostel gender: %s", model.Gender)
	}

	return hostel.ReconstructHostel(
		model.ID,
		model.Name, model.Address,
		gender,
		model.AllowPartialPayment,
		model.PartialPaymentPercentage,
		model.CreatedAt, model.UpdatedAt,
	), nil
}
