package fs

import "time"

// SetNow replaces the clock used for the fetched date.
func (e *Exporter) SetNow(now func() time.Time) {
	e.now = now
}
