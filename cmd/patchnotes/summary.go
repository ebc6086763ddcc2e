package main

import (
	"fmt"
	"strings"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	notes, err := deps.Crawler.FetchLatestPatchNotesAsync(deps.Ctx, deps.RootURL).Wait(deps.Ctx)
	if err != nil {
		return err
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, notes)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n%s\n", notes.Title, strings.TrimSpace(summary))
	return nil
}
