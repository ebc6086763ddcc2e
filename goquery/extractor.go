package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/patchnotes"
)

var _ patchnotes.Extractor = (*Extractor)(nil)

// Selectors for XenForo thread pages.
const (
	titleSelector = ".p-title-value"
	postSelector  = ".message-body .bbWrapper"
)

// listBullet prefixes every list item line.
const listBullet = "  • "

// Extractor converts the first post of a XenForo thread into display blocks.
type Extractor struct {
	imageHost string
	wrapWidth int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithImageHost sets the host that root-relative image paths resolve against.
// Defaults to patchnotes.DefaultImageHost.
func WithImageHost(host string) ExtractorOption {
	return func(e *Extractor) {
		e.imageHost = host
	}
}

// WithWrapWidth sets the paragraph wrap width.
// Defaults to patchnotes.DefaultWrapWidth.
func WithWrapWidth(width int) ExtractorOption {
	return func(e *Extractor) {
		e.wrapWidth = width
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		imageHost: patchnotes.DefaultImageHost,
		wrapWidth: patchnotes.DefaultWrapWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses a thread page. Only the direct children of the first post
// are classified; lists and paragraphs are the only elements whose nested
// structure is inspected.
func (e *Extractor) Extract(rawHTML string) (*patchnotes.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, patchnotes.Errorf(patchnotes.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, patchnotes.Errorf(patchnotes.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &patchnotes.ExtractResult{Title: patchnotes.DefaultTitle}
	if title := text(doc.Find(titleSelector).First()); title != "" {
		result.Title = title
	}

	post := doc.Find(postSelector).First()
	if post.Length() == 0 {
		result.Blocks = []patchnotes.Block{
			patchnotes.TextLine(patchnotes.StyleError, patchnotes.ContentErrorText),
		}
		return result, nil
	}

	post.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		result.HeaderImageURL = e.imageURL(img)
		return result.HeaderImageURL == ""
	})

	var blocks []patchnotes.Block
	post.Children().Each(func(_ int, sel *goquery.Selection) {
		blocks = e.appendElement(blocks, sel)
	})
	result.Blocks = blocks

	contentHTML, err := post.Html()
	if err != nil {
		return nil, patchnotes.Errorf(patchnotes.EINTERNAL, "failed to render post: %v", err)
	}
	result.ContentHTML = strings.TrimSpace(contentHTML)

	return result, nil
}

// appendElement classifies one direct child of the post body.
func (e *Extractor) appendElement(blocks []patchnotes.Block, sel *goquery.Selection) []patchnotes.Block {
	content := text(sel)

	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3":
		return append(blocks,
			patchnotes.BlankLine(),
			patchnotes.TextLine(patchnotes.StyleHeader, content),
			patchnotes.BlankLine(),
		)

	case "b", "strong":
		if content == "" && !hasImage(sel) {
			return blocks
		}
		return append(blocks, patchnotes.TextLine(patchnotes.StyleBold, content))

	case "ul", "ol":
		if content == "" && !hasImage(sel) {
			return blocks
		}
		sel.Find("li").Each(func(_ int, li *goquery.Selection) {
			blocks = append(blocks, patchnotes.TextLine(patchnotes.StyleListItem, listBullet+text(li)))
		})
		return append(blocks, patchnotes.BlankLine())

	case "img":
		if u := e.imageURL(sel); u != "" {
			blocks = append(blocks, patchnotes.ImageRef(u), patchnotes.BlankLine())
		}
		return blocks

	case "p":
		blocks = e.appendImages(blocks, sel)
		if content == "" {
			return blocks
		}
		for _, line := range patchnotes.WrapText(content, e.wrapWidth) {
			blocks = append(blocks, patchnotes.TextLine(patchnotes.StylePlain, line))
		}
		return append(blocks, patchnotes.BlankLine())

	default:
		blocks = e.appendImages(blocks, sel)
		if content == "" {
			return blocks
		}
		return append(blocks, patchnotes.TextLine(patchnotes.StylePlain, content))
	}
}

func hasImage(sel *goquery.Selection) bool {
	return sel.Find("img").Length() > 0
}

// appendImages emits every image inside sel, each followed by a blank line.
func (e *Extractor) appendImages(blocks []patchnotes.Block, sel *goquery.Selection) []patchnotes.Block {
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		if u := e.imageURL(img); u != "" {
			blocks = append(blocks, patchnotes.ImageRef(u), patchnotes.BlankLine())
		}
	})
	return blocks
}

// imageURL returns the normalized source of an img element. Lazy-loaded
// images carry a placeholder src and the real one in data-src.
func (e *Extractor) imageURL(img *goquery.Selection) string {
	src := strings.TrimSpace(img.AttrOr("src", ""))
	if src == "" || strings.HasPrefix(src, "data:") {
		if lazy := strings.TrimSpace(img.AttrOr("data-src", "")); lazy != "" {
			src = lazy
		}
	}
	if src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}
	return patchnotes.NormalizeImageURL(src, e.imageHost)
}
