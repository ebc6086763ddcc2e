package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/crawl"
	"github.com/fwojciec/patchnotes/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	notes := deps.Crawler.FetchLatestPatchNotes(deps.Ctx, deps.RootURL)
	if notes.Fallback {
		return patchnotes.Errorf(patchnotes.EUNAVAILABLE, "could not fetch patch notes from %s", deps.RootURL)
	}

	exp := fs.NewExporter(c.Dir, c.Name)
	written, err := c.write(deps, exp, notes)
	if err != nil {
		_ = exp.Abort()
		return err
	}
	if err := exp.Commit(); err != nil {
		_ = exp.Abort()
		return fmt.Errorf("commit export: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %q to %s (%d images)\n", notes.Title, filepath.Join(c.Dir, c.Name), written)
	return nil
}

func (c *ExportCmd) write(deps *Dependencies, exp *fs.Exporter, notes *patchnotes.PatchNotes) (int, error) {
	if err := exp.WriteNotes(notes, crawl.ComputeHash(notes)); err != nil {
		return 0, fmt.Errorf("write notes: %w", err)
	}
	if c.NoImages {
		return 0, nil
	}

	written := 0
	for _, r := range crawl.PrefetchImages(deps.Ctx, deps.Images, notes.Images(), c.Concurrency) {
		if r.Err != nil {
			deps.Logger.Warn("skip image", "url", r.URL, "error", r.Err)
			continue
		}
		written++
		if _, err := exp.WriteImage(written, r.Image); err != nil {
			return 0, fmt.Errorf("write image %s: %w", r.URL, err)
		}
	}
	return written, nil
}
