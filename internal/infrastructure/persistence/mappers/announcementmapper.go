package mappers

import (
	"fmt"

	"hostelhub/internal/domain/announcement"
	"hostelhub/internal/infrastructure/persistence/models"
)

func AnnouncementToModel(a *announcement.Announcement) *models.AnnouncementModel {
	return &models.AnnouncementModel{
		ID:           a.ID(),
		HostelID:     a.HostelID(),
		AuthorID:     a.AuthorID(),
		Title:        a.Title(),
		Body:         a.Body(),
		RenderedBody: a.RenderedBody(),
		Audience:     string(a.Audience()),
		PublishedAt:  a.PublishedAt(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func AnnouncementToDomain(model *models.AnnouncementModel) (*announcement.Announcement, error) {
	audience := announcement.Audience(model.Audience)
	if !audience.IsValid() {
		return nil, fmt.Errorf("invalid announcement audience: %s", model.Audience)
	}

	return announcement.ReconstructAnnouncement(
		model.ID,
		model.HostelID,
		model.AuthorID,
		model.Title, model.Body, model.RenderedBody,
		audience,
		model.PublishedAt,
		model.CreatedAt, model.UpdatedAt,
	), nil
}
