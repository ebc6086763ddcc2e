package patchnotes

import (
	"context"
	"time"
)

// Announcement records a patch-notes thread seen by a previous fetch.
type Announcement struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Markdown    string    `json:"markdown"`
	FirstSeenAt time.Time `json:"firstSeenAt"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// Validate returns an error if the announcement contains invalid fields.
func (a *Announcement) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "announcement URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "announcement title required")
	}
	return nil
}

// AnnouncementService represents a service for managing seen announcements.
type AnnouncementService interface {
	// CreateAnnouncement records a newly seen announcement.
	CreateAnnouncement(ctx context.Context, a *Announcement) error

	// FindAnnouncementByURL retrieves an announcement by thread URL.
	// Returns ENOTFOUND if the announcement does not exist.
	FindAnnouncementByURL(ctx context.Context, url string) (*Announcement, error)

	// FindAnnouncements retrieves announcements, most recently seen first.
	FindAnnouncements(ctx context.Context, filter AnnouncementFilter) ([]*Announcement, error)

	// UpdateAnnouncement updates an existing announcement.
	// Returns ENOTFOUND if the announcement does not exist.
	UpdateAnnouncement(ctx context.Context, id string, upd AnnouncementUpdate) (*Announcement, error)
}

// AnnouncementFilter represents a filter for FindAnnouncements.
type AnnouncementFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AnnouncementUpdate represents fields that can be updated on an announcement.
type AnnouncementUpdate struct {
	Title       *string `json:"title"`
	ContentHash *string `json:"contentHash"`
	Markdown    *string `json:"markdown"`
}
