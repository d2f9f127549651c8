package migration

import (
	"hostelhub/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.HostelModel{},
		&models.CalendarYearModel{},
		&models.RoomModel{},
		&models.ResidentProfileModel{},
		&models.HistoricalResidentModel{},
		&models.PaymentModel{},
		&models.WebhookEventModel{},
		&models.AnnouncementModel{},
		&models.MaintenanceRequestModel{},
	}
}
