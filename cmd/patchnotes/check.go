package main

import (
	"fmt"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/crawl"
)

// Check outcomes.
const (
	StatusNew       = "new"
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	notes := deps.Crawler.FetchLatestPatchNotes(deps.Ctx, deps.RootURL)
	if notes.Fallback {
		return patchnotes.Errorf(patchnotes.EUNAVAILABLE, "could not fetch patch notes from %s", deps.RootURL)
	}

	status, err := record(deps, notes, crawl.ComputeHash(notes))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %s\n  %s\n", status, notes.Title, notes.SourceURL)
	return nil
}

// record stores notes in the history and reports how they compare to the
// previously seen version of the same thread.
func record(deps *Dependencies, notes *patchnotes.PatchNotes, hash string) (string, error) {
	existing, err := deps.Announcements.FindAnnouncementByURL(deps.Ctx, notes.SourceURL)
	if patchnotes.ErrorCode(err) == patchnotes.ENOTFOUND {
		err = deps.Announcements.CreateAnnouncement(deps.Ctx, &patchnotes.Announcement{
			URL:         notes.SourceURL,
			Title:       notes.Title,
			ContentHash: hash,
			Markdown:    notes.Markdown,
		})
		if err != nil {
			return "", err
		}
		return StatusNew, nil
	} else if err != nil {
		return "", err
	}

	if existing.ContentHash == hash {
		// An empty update only bumps last seen.
		if _, err := deps.Announcements.UpdateAnnouncement(deps.Ctx, existing.ID, patchnotes.AnnouncementUpdate{}); err != nil {
			return "", err
		}
		return StatusUnchanged, nil
	}

	_, err = deps.Announcements.UpdateAnnouncement(deps.Ctx, existing.ID, patchnotes.AnnouncementUpdate{
		Title:       &notes.Title,
		ContentHash: &hash,
		Markdown:    &notes.Markdown,
	})
	if err != nil {
		return "", err
	}
	return StatusChanged, nil
}
