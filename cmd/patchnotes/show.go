package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/markdown"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	notes := deps.Crawler.FetchLatestPatchNotes(deps.Ctx, deps.RootURL)

	switch c.Format {
	case "legacy":
		for _, line := range patchnotes.LegacyLines(notes) {
			fmt.Fprintln(deps.Stdout, line)
		}
		return nil
	case "markdown":
		return markdown.Render(deps.Stdout, notes)
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	default:
		writeText(deps.Stdout, notes, c.Color)
		return nil
	}
}

// writeText prints the legacy line stream for a terminal.
func writeText(w io.Writer, notes *patchnotes.PatchNotes, color bool) {
	for _, line := range patchnotes.LegacyLines(notes) {
		if src, ok := imageSource(line); ok {
			fmt.Fprintln(w, "[image] "+src)
			continue
		}
		if color {
			fmt.Fprintln(w, patchnotes.ANSI(line))
		} else {
			fmt.Fprintln(w, patchnotes.StripCodes(line))
		}
	}
}

func imageSource(line string) (string, bool) {
	const prefix, suffix = `<img src="`, `">`
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, suffix) {
		return "", false
	}
	return line[len(prefix) : len(line)-len(suffix)], true
}
