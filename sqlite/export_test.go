package sqlite

import "time"

// SetNow replaces the clock used for seen timestamps.
func (s *AnnouncementService) SetNow(now func() time.Time) {
	s.now = now
}
