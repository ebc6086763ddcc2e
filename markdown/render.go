// Package markdown renders patch notes blocks as a Markdown document.
package markdown

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/fwojciec/patchnotes"
)

// listBullet is stripped from list item text; Markdown supplies its own.
const listBullet = "•"

// Render writes notes to w as Markdown. Consecutive plain lines are joined
// into one paragraph, consecutive list items into one list.
func Render(w io.Writer, notes *patchnotes.PatchNotes) error {
	doc := md.NewMarkdown(w)
	r := &renderer{doc: doc}

	doc.H1(notes.Title)
	doc.PlainText("")
	if notes.SourceURL != "" && !notes.Fallback {
		doc.PlainText("Source: " + md.Link(notes.SourceURL, notes.SourceURL))
		doc.PlainText("")
	}

	for _, b := range notes.Blocks {
		r.block(b)
	}
	r.flush()

	return doc.Build()
}

// renderer buffers paragraph lines and list items until a block of another
// kind ends them.
type renderer struct {
	doc       *md.Markdown
	paragraph []string
	items     []string
}

func (r *renderer) block(b patchnotes.Block) {
	if b.Kind == patchnotes.BlockImage {
		r.flush()
		r.doc.PlainText(md.Image("", b.URL))
		r.doc.PlainText("")
		return
	}
	if b.IsBlank() {
		r.flush()
		return
	}

	switch b.Style {
	case patchnotes.StylePlain:
		r.flushList()
		r.paragraph = append(r.paragraph, b.Text)
	case patchnotes.StyleListItem:
		r.flushParagraph()
		item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(b.Text), listBullet))
		r.items = append(r.items, item)
	case patchnotes.StyleHeader:
		r.flush()
		r.doc.H2(b.Text)
		r.doc.PlainText("")
	case patchnotes.StyleBold:
		r.flush()
		r.doc.PlainText(md.Bold(b.Text))
		r.doc.PlainText("")
	case patchnotes.StyleLink:
		r.flush()
		r.doc.PlainText(md.Link(b.Text, b.Text))
		r.doc.PlainText("")
	case patchnotes.StyleError:
		r.flush()
		r.doc.Caution(b.Text)
		r.doc.PlainText("")
	}
}

func (r *renderer) flush() {
	r.flushParagraph()
	r.flushList()
}

func (r *renderer) flushParagraph() {
	if len(r.paragraph) == 0 {
		return
	}
	r.doc.PlainText(strings.Join(r.paragraph, " "))
	r.doc.PlainText("")
	r.paragraph = nil
}

func (r *renderer) flushList() {
	if len(r.items) == 0 {
		return
	}
	r.doc.BulletList(r.items...)
	r.doc.PlainText("")
	r.items = nil
}
