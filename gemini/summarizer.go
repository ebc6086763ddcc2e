// Package gemini summarizes patch notes with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/patchnotes"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

var _ patchnotes.Summarizer = (*Summarizer)(nil)

// Summarizer implements patchnotes.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize returns a short bullet summary of notes.
func (s *Summarizer) Summarize(ctx context.Context, notes *patchnotes.PatchNotes) (string, error) {
	if notes == nil || notes.Fallback {
		return "", patchnotes.Errorf(patchnotes.EINVALID, "no patch notes to summarize")
	}
	if len(notes.Blocks) == 0 && notes.Markdown == "" {
		return "", patchnotes.Errorf(patchnotes.EINVALID, "patch notes have no content")
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(notes)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	if result == nil {
		return "", patchnotes.Errorf(patchnotes.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize Hypixel SkyBlock patch notes for players. Reply with at most eight short bullet points covering the most impactful changes. Use only the patch notes provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt wraps the patch notes in tags. The converted Markdown is
// preferred; otherwise the text blocks are used and images become references.
func BuildUserPrompt(notes *patchnotes.PatchNotes) string {
	var sb strings.Builder
	sb.WriteString("<patch_notes>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", notes.Title)
	if notes.SourceURL != "" {
		fmt.Fprintf(&sb, "<source>%s</source>\n", notes.SourceURL)
	}
	sb.WriteString("<content>\n")
	if notes.Markdown != "" {
		sb.WriteString(notes.Markdown)
		sb.WriteString("\n")
	} else {
		for _, b := range notes.Blocks {
			if b.Kind == patchnotes.BlockImage {
				fmt.Fprintf(&sb, "[image: %s]\n", b.URL)
				continue
			}
			sb.WriteString(b.Text)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("</content>\n")
	sb.WriteString("</patch_notes>\n\n")
	sb.WriteString("Summarize these patch notes.")
	return sb.String()
}
