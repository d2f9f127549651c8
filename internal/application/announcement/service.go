// Package announcement implements admin notices shown on the resident
// portal. Markdown bodies are rendered and sanitized at save time.
package announcement

import (
	"context"

	"hostelhub/internal/domain/announcement"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/services/markdown"
)

type Service struct {
	announcementRepo announcement.AnnouncementRepository
	markdown         markdown.Service
	logger           logger.Interface
}

func NewService(announcementRepo announcement.AnnouncementRepository, md markdown.Service, logger logger.Interface) *Service {
	return &Service{
		announcementRepo: announcementRepo,
		markdown:         md,
		logger:           logger,
	}
}

type CreateAnnouncementCommand struct {
	AuthorID uint
	HostelID *uint
	Title    string
	Body     string
	Audience string
	Publish  bool
}

func (s *Service) Create(ctx context.Context, cmd CreateAnnouncementCommand) (*announcement.Announcement, error) {
	rendered, err := s.markdown.ToHTMLSanitized(cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to render announcement body", err.Error())
	}

	a, err := announcement.NewAnnouncement(cmd.AuthorID, cmd.HostelID, cmd.Title, cmd.Body, rendered, announcement.Audience(cmd.Audience))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Publish {
		a.Publish()
	}

	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, apperrors.NewInternalError("failed to create announcement", err.Error())
	}

	s.logger.Infow("announcement created", "announcement_id", a.ID(), "published", a.IsPublished())
	return a, nil
}

type UpdateAnnouncementCommand struct {
	AnnouncementID uint
	Title          string
	Body           string
}

func (s *Service) Update(ctx context.Context, cmd UpdateAnnouncementCommand) (*announcement.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, cmd.AnnouncementID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("announcement not found")
	}

	rendered, err := s.markdown.ToHTMLSanitized(cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to render announcement body", err.Error())
	}
	if err := a.UpdateContent(cmd.Title, cmd.Body, rendered); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, apperrors.NewInternalError("failed to update announcement", err.Error())
	}
	return a, nil
}

func (s *Service) Publish(ctx context.Context, id uint) (*announcement.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("announcement not found")
	}
	a.Publish()
	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, apperrors.NewInternalError("failed to publish announcement", err.Error())
	}
	return a, nil
}

func (s *Service) Unpublish(ctx context.Context, id uint) (*announcement.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("announcement not found")
	}
	a.Unpublish()
	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, apperrors.NewInternalError("failed to unpublish announcement", err.Error())
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.announcementRepo.GetByID(ctx, id); err != nil {
		return apperrors.NewNotFoundError("announcement not found")
	}
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError("failed to delete announcement", err.Error())
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*announcement.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("announcement not found")
	}
	return a, nil
}

func (s *Service) ListPublished(ctx context.Context, hostelID *uint, offset, limit int) ([]*announcement.Announcement, int64, error) {
	items, total, err := s.announcementRepo.ListPublished(ctx, hostelID, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list announcements", err.Error())
	}
	return items, total, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*announcement.Announcement, int64, error) {
	items, total, err := s.announcementRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list announcements", err.Error())
	}
	return items, total, nil
}
