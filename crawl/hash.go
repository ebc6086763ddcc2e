package crawl

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/patchnotes"
)

// ComputeHash returns an xxhash digest of the title, source, header image
// and blocks. Markdown is not included, so the digest only changes when the
// displayed content does.
func ComputeHash(notes *patchnotes.PatchNotes) string {
	d := xxhash.New()
	field := func(s string) {
		_, _ = d.WriteString(strconv.Itoa(len(s)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(s)
	}

	field(notes.Title)
	field(notes.SourceURL)
	field(notes.HeaderImageURL)
	for _, b := range notes.Blocks {
		field(strconv.Itoa(int(b.Kind)))
		field(b.Style.String())
		field(b.Text)
		field(b.URL)
	}
	return fmt.Sprintf("%x", d.Sum64())
}
