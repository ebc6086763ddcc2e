package main

import (
	"fmt"

	"github.com/fwojciec/patchnotes"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	announcements, err := deps.Announcements.FindAnnouncements(deps.Ctx, patchnotes.AnnouncementFilter{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(announcements) == 0 {
		fmt.Fprintln(deps.Stdout, "No patch notes recorded. Use 'patchnotes check' to record some.")
		return nil
	}

	for _, a := range announcements {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.LastSeenAt.Local().Format("2006-01-02 15:04"), a.Title, a.URL)
	}
	return nil
}
