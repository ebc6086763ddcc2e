package mock

import (
	"context"

	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.AnnouncementService = (*AnnouncementService)(nil)

// AnnouncementService is a mock implementation of patchnotes.AnnouncementService.
type AnnouncementService struct {
	CreateAnnouncementFn    func(ctx context.Context, a *patchnotes.Announcement) error
	FindAnnouncementByURLFn func(ctx context.Context, url string) (*patchnotes.Announcement, error)
	FindAnnouncementsFn     func(ctx context.Context, filter patchnotes.AnnouncementFilter) ([]*patchnotes.Announcement, error)
	UpdateAnnouncementFn    func(ctx context.Context, id string, upd patchnotes.AnnouncementUpdate) (*patchnotes.Announcement, error)
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, a *patchnotes.Announcement) error {
	return s.CreateAnnouncementFn(ctx, a)
}

func (s *AnnouncementService) FindAnnouncementByURL(ctx context.Context, url string) (*patchnotes.Announcement, error) {
	return s.FindAnnouncementByURLFn(ctx, url)
}

func (s *AnnouncementService) FindAnnouncements(ctx context.Context, filter patchnotes.AnnouncementFilter) ([]*patchnotes.Announcement, error) {
	return s.FindAnnouncementsFn(ctx, filter)
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id string, upd patchnotes.AnnouncementUpdate) (*patchnotes.Announcement, error) {
	return s.UpdateAnnouncementFn(ctx, id, upd)
}
