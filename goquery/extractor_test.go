package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/patchnotes"
	"github.com/fwojciec/patchnotes/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadPage wraps a post body in the XenForo thread markup.
func threadPage(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	if title != "" {
		sb.WriteString(`<h1 class="p-title-value">` + title + `</h1>`)
	}
	sb.WriteString(`<article class="message-body"><div class="bbWrapper">`)
	sb.WriteString(body)
	sb.WriteString(`</div></article>`)
	sb.WriteString(`<article class="message-body"><div class="bbWrapper"><p>second post</p></div></article>`)
	sb.WriteString("</body></html>")
	return sb.String()
}

var (
	blank = patchnotes.BlankLine()
	plain = func(s string) patchnotes.Block { return patchnotes.TextLine(patchnotes.StylePlain, s) }
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps images out of paragraph text", func(t *testing.T) {
		t.Parallel()

		html := threadPage("SkyBlock 0.20", `<h2>Intro</h2><p>Hello <img src="/x.png"> world</p>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			blank,
			patchnotes.TextLine(patchnotes.StyleHeader, "Intro"),
			blank,
			patchnotes.ImageRef("https://hypixel.net/x.png"),
			blank,
			plain("Hello world"),
			blank,
		}, result.Blocks)
	})

	t.Run("extracts title and header image", func(t *testing.T) {
		t.Parallel()

		html := threadPage(" SkyBlock   0.20.1 ", `<p>text</p><div><img src="//cdn.example/banner.png"></div><p><img src="/second.png"></p>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "SkyBlock 0.20.1", result.Title)
		assert.Equal(t, "https://cdn.example/banner.png", result.HeaderImageURL)
	})

	t.Run("uses default title when the page has none", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(threadPage("", `<p>text</p>`))

		require.NoError(t, err)
		assert.Equal(t, patchnotes.DefaultTitle, result.Title)
		assert.Empty(t, result.HeaderImageURL)
	})

	t.Run("emits a single error block when the post is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 class="p-title-value">SkyBlock 0.20</h1><img src="/logo.png"></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "SkyBlock 0.20", result.Title)
		assert.Empty(t, result.HeaderImageURL)
		assert.Empty(t, result.ContentHTML)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.TextLine(patchnotes.StyleError, "Could not parse patch notes content"),
		}, result.Blocks)
	})

	t.Run("classifies bold and list elements", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<b> Important </b><strong>Also</strong><ul><li>One</li><li>Two <i>items</i></li></ul><ol><li>First</li></ol>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.TextLine(patchnotes.StyleBold, "Important"),
			patchnotes.TextLine(patchnotes.StyleBold, "Also"),
			patchnotes.TextLine(patchnotes.StyleListItem, "  • One"),
			patchnotes.TextLine(patchnotes.StyleListItem, "  • Two items"),
			blank,
			patchnotes.TextLine(patchnotes.StyleListItem, "  • First"),
			blank,
		}, result.Blocks)
	})

	t.Run("includes nested list items", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<ul><li>Outer<ul><li>Inner</li></ul></li></ul>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.TextLine(patchnotes.StyleListItem, "  • Outer Inner"),
			patchnotes.TextLine(patchnotes.StyleListItem, "  • Inner"),
			blank,
		}, result.Blocks)
	})

	t.Run("emits direct image children followed by a blank line", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<img src="https://cdn.example/a.png" alt="ignored alt">`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.ImageRef("https://cdn.example/a.png"),
			blank,
		}, result.Blocks)
	})

	t.Run("wraps paragraphs at eighty columns", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 30)
		html := threadPage("T", "<p>"+long+"</p>")

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.Blocks, 3)
		assert.Len(t, result.Blocks[0].Text, 79)
		assert.Len(t, result.Blocks[1].Text, 69)
		assert.True(t, result.Blocks[2].IsBlank())
	})

	t.Run("respects custom wrap width", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", "<p>aaaa bbbb cccc</p>")

		result, err := goquery.NewExtractor(goquery.WithWrapWidth(9)).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{plain("aaaa bbbb"), plain("cccc"), blank}, result.Blocks)
	})

	t.Run("emits other elements as one unwrapped line without separator", func(t *testing.T) {
		t.Parallel()

		long := strings.TrimSpace(strings.Repeat("word ", 30))
		html := threadPage("T", `<div>`+long+`<img src="/d.png"></div><span>after</span>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.ImageRef("https://hypixel.net/d.png"),
			blank,
			plain(long),
			plain("after"),
		}, result.Blocks)
	})

	t.Run("skips empty elements without images", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<p>  </p><br><div></div><b></b><ul><li> </li></ul><span>kept</span>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{plain("kept")}, result.Blocks)
	})

	t.Run("emits empty h1 to h3 but skips empty lower headings", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<h4></h4><h1></h1>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			blank,
			patchnotes.TextLine(patchnotes.StyleHeader, ""),
			blank,
		}, result.Blocks)
	})

	t.Run("keeps bold and list elements that hold only an image", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<strong><img src="/b.png"></strong><ul><li><img src="/a.png"></li></ul>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "https://hypixel.net/b.png", result.HeaderImageURL)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.TextLine(patchnotes.StyleBold, ""),
			patchnotes.TextLine(patchnotes.StyleListItem, "  • "),
			blank,
		}, result.Blocks)
	})

	t.Run("emits image-only paragraphs without a text line", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<p><img src="/a.png"><img src="/b.png"></p>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []patchnotes.Block{
			patchnotes.ImageRef("https://hypixel.net/a.png"),
			blank,
			patchnotes.ImageRef("https://hypixel.net/b.png"),
			blank,
		}, result.Blocks)
	})

	t.Run("reads lazy-loaded image sources", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<p><img src="data:image/gif;base64,R0lG" data-src="/lazy.png"></p>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "https://hypixel.net/lazy.png", result.HeaderImageURL)
		assert.Equal(t, patchnotes.ImageRef("https://hypixel.net/lazy.png"), result.Blocks[0])
	})

	t.Run("resolves root-relative images against a custom host", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<img src="/a.png">`)

		result, err := goquery.NewExtractor(goquery.WithImageHost("https://forum.example")).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "https://forum.example/a.png", result.HeaderImageURL)
	})

	t.Run("separates text across line breaks", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<p>first<br>second</p>`)

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, plain("first second"), result.Blocks[0])
	})

	t.Run("returns post body HTML", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(threadPage("T", `<p>Hello</p>`))

		require.NoError(t, err)
		assert.Equal(t, "<p>Hello</p>", result.ContentHTML)
	})

	t.Run("does not modify output across repeated calls", func(t *testing.T) {
		t.Parallel()

		html := threadPage("T", `<h2>Intro</h2><p>Hello <img src="/x.png"> world</p><ul><li>a</li></ul>`)
		extractor := goquery.NewExtractor()

		first, err := extractor.Extract(html)
		require.NoError(t, err)
		second, err := extractor.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("  ")

		require.Error(t, err)
		assert.Equal(t, patchnotes.EINVALID, patchnotes.ErrorCode(err))
	})
}
