package patchnotes_test

import (
	"testing"

	"github.com/fwojciec/patchnotes"
	"github.com/stretchr/testify/assert"
)

func TestLegacyLines(t *testing.T) {
	t.Parallel()

	t.Run("renders title, source and styled blocks", func(t *testing.T) {
		t.Parallel()

		notes := &patchnotes.PatchNotes{
			Title:     "SkyBlock 0.20.1",
			SourceURL: "https://hypixel.net/threads/1/",
			Blocks: []patchnotes.Block{
				patchnotes.TextLine(patchnotes.StyleHeader, "Garden"),
				patchnotes.TextLine(patchnotes.StyleBold, "Important"),
				patchnotes.TextLine(patchnotes.StyleListItem, "  • New crops"),
				patchnotes.ImageRef("https://hypixel.net/x.png"),
				patchnotes.BlankLine(),
				patchnotes.TextLine(patchnotes.StylePlain, "Hello world"),
			},
		}

		lines := patchnotes.LegacyLines(notes)

		assert.Equal(t, []string{
			"§6§lSkyBlock 0.20.1",
			"",
			"§7Source: §9§nhttps://hypixel.net/threads/1/",
			"",
			"§6§lGarden",
			"§lImportant",
			"§7  • New crops",
			`<img src="https://hypixel.net/x.png">`,
			"",
			"§7Hello world",
		}, lines)
	})

	t.Run("renders fallback with alert title and no source line", func(t *testing.T) {
		t.Parallel()

		lines := patchnotes.LegacyLines(patchnotes.Fallback(patchnotes.DefaultRootURL))

		assert.Equal(t, []string{
			"§c§lError Loading Patch Notes",
			"",
			"§cCould not fetch patch notes from Hypixel forums.",
			"§7Please check your internet connection and try again.",
			"",
			"§7You can view patch notes directly at:",
			"§9§nhttps://hypixel.net/forums/",
		}, lines)
	})
}

func TestANSI(t *testing.T) {
	t.Parallel()

	t.Run("leaves plain text untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain", patchnotes.ANSI("plain"))
	})

	t.Run("converts color and format codes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "\x1b[0;33m\x1b[1mTitle\x1b[0m", patchnotes.ANSI("§6§lTitle"))
	})

	t.Run("accepts upper case codes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "\x1b[0;91mErr\x1b[0m", patchnotes.ANSI("§CErr"))
	})

	t.Run("drops unknown codes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text", patchnotes.ANSI("§ztext"))
	})
}

func TestStripCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Source: https://x", patchnotes.StripCodes("§7Source: §9§nhttps://x"))
}
