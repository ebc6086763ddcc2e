package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/patchnotes"
	"github.com/google/uuid"
)

var _ patchnotes.AnnouncementService = (*AnnouncementService)(nil)

const announcementColumns = "id, url, title, content_hash, markdown, first_seen_at, last_seen_at"

// AnnouncementService implements patchnotes.AnnouncementService using SQLite.
type AnnouncementService struct {
	db  *DB
	now func() time.Time
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(db *DB) *AnnouncementService {
	return &AnnouncementService{db: db, now: time.Now}
}

// CreateAnnouncement records a newly seen announcement.
// Returns EINVALID if the URL is already recorded.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, a *patchnotes.Announcement) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if _, err := s.FindAnnouncementByURL(ctx, a.URL); err == nil {
		return patchnotes.Errorf(patchnotes.EINVALID, "announcement already recorded: %s", a.URL)
	} else if patchnotes.ErrorCode(err) != patchnotes.ENOTFOUND {
		return err
	}

	a.ID = uuid.New().String()
	now := s.now().UTC()
	a.FirstSeenAt = now
	a.LastSeenAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO announcements (`+announcementColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.URL, a.Title, a.ContentHash, a.Markdown,
		formatTime(a.FirstSeenAt), formatTime(a.LastSeenAt))

	return err
}

// FindAnnouncementByURL retrieves an announcement by thread URL.
func (s *AnnouncementService) FindAnnouncementByURL(ctx context.Context, url string) (*patchnotes.Announcement, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE url = ?
	`, url)

	a, err := scanAnnouncement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, patchnotes.Errorf(patchnotes.ENOTFOUND, "announcement not found")
	}
	return a, err
}

// FindAnnouncements retrieves announcements, most recently seen first.
func (s *AnnouncementService) FindAnnouncements(ctx context.Context, filter patchnotes.AnnouncementFilter) ([]*patchnotes.Announcement, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + announcementColumns + " FROM announcements WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY last_seen_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*patchnotes.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// UpdateAnnouncement applies upd and marks the announcement as seen now.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id string, upd patchnotes.AnnouncementUpdate) (*patchnotes.Announcement, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE id = ?
	`, id)
	a, err := scanAnnouncement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, patchnotes.Errorf(patchnotes.ENOTFOUND, "announcement not found")
	}
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.ContentHash != nil {
		a.ContentHash = *upd.ContentHash
	}
	if upd.Markdown != nil {
		a.Markdown = *upd.Markdown
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	a.LastSeenAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE announcements
		SET title = ?, content_hash = ?, markdown = ?, last_seen_at = ?
		WHERE id = ?
	`, a.Title, a.ContentHash, a.Markdown, formatTime(a.LastSeenAt), id)
	if err != nil {
		return nil, err
	}

	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnnouncement(row scanner) (*patchnotes.Announcement, error) {
	var a patchnotes.Announcement
	var firstSeenAt, lastSeenAt string

	if err := row.Scan(&a.ID, &a.URL, &a.Title, &a.ContentHash, &a.Markdown, &firstSeenAt, &lastSeenAt); err != nil {
		return nil, err
	}

	var err error
	if a.FirstSeenAt, err = parseTime(firstSeenAt, "first_seen_at"); err != nil {
		return nil, err
	}
	if a.LastSeenAt, err = parseTime(lastSeenAt, "last_seen_at"); err != nil {
		return nil, err
	}

	return &a, nil
}
