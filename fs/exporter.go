// Package fs exports patch notes to a directory on disk.
package fs

import (
	"bytes"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/markdown"
)

// File names inside an export directory.
const (
	NotesFile = "notes.md"
	PostFile  = "post.md"
	ImagesDir = "images"
)

// Exporter writes one export with atomic update semantics.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
type Exporter struct {
	baseDir string
	name    string
	now     func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
		now:     time.Now,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Frontmatter is the YAML header of exported Markdown files.
type Frontmatter struct {
	Title   string `yaml:"title"`
	Source  string `yaml:"source,omitempty"`
	Header  string `yaml:"header_image,omitempty"`
	Hash    string `yaml:"hash,omitempty"`
	Fetched string `yaml:"fetched"`
}

// WriteNotes writes the rendered block sequence to notes.md and, when
// present, the converted post body to post.md.
func (e *Exporter) WriteNotes(notes *patchnotes.PatchNotes, hash string) error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}

	fm := Frontmatter{
		Title:   notes.Title,
		Source:  notes.SourceURL,
		Header:  notes.HeaderImageURL,
		Hash:    hash,
		Fetched: e.now().Format("2006-01-02"),
	}

	var body bytes.Buffer
	if err := markdown.Render(&body, notes); err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	if err := e.writeMarkdown(NotesFile, fm, body.Bytes()); err != nil {
		return err
	}

	if notes.Markdown == "" {
		return nil
	}
	return e.writeMarkdown(PostFile, fm, []byte(notes.Markdown+"\n"))
}

// WriteImage stores img under images/ and returns its path relative to
// the export directory.
func (e *Exporter) WriteImage(index int, img *patchnotes.Image) (string, error) {
	dir := filepath.Join(e.tempDir(), ImagesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%03d%s", index, imageExt(img))
	if err := os.WriteFile(filepath.Join(dir, name), img.Data, 0644); err != nil {
		return "", err
	}
	return path.Join(ImagesDir, name), nil
}

func (e *Exporter) writeMarkdown(name string, fm Frontmatter, body []byte) error {
	header, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.Write(body)

	return os.WriteFile(filepath.Join(e.tempDir(), name), b.Bytes(), 0644)
}

// Commit replaces baseDir/name with the written files.
func (e *Exporter) Commit() error {
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the written files.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// imageExt picks a file extension from the URL path, then the content type.
func imageExt(img *patchnotes.Image) string {
	if u, err := url.Parse(img.URL); err == nil {
		if ext := path.Ext(u.Path); ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(img.ContentType); err == nil {
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	return ".img"
}
