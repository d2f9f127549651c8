package mappers

import (
	"hostelhub/internal/domain/calendaryear"
	"hostelhub/internal/infrastructure/persistence/models"
)

func CalendarYearToModel(c *calendaryear.CalendarYear) *models.CalendarYearModel {
	return &models.CalendarYearModel{
		ID:        c.ID(),
		Name:      c.Name(),
		StartDate: c.StartDate(),
		EndDate:   c.EndDate(),
		Active:    c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func CalendarYearToDomain(model *models.CalendarYearModel) *calendaryear.CalendarYear {
	return calendaryear.ReconstructCalendarYear(
		model.ID,
		model.Name,
		model.StartDate, model.EndDate,
		model.Active,
		model.CreatedAt, model.UpdatedAt,
	)
}
