package patchnotes

// Fallback titles and messages.
const (
	DefaultTitle  = "Hypixel SkyBlock Update"
	FallbackTitle = "Error Loading Patch Notes"

	// ContentErrorText is emitted when a thread page has no first post.
	ContentErrorText = "Could not parse patch notes content"
)

// PatchNotes is the result of one fetch: the thread title, where it came
// from, an optional header image and the ordered body blocks.
// A PatchNotes value is not modified after construction.
type PatchNotes struct {
	Title string `json:"title"`

	// SourceURL is the thread URL, or the forum root for a fallback result.
	SourceURL string `json:"sourceUrl,omitempty"`

	// HeaderImageURL is the first image in the post. Empty when the post has none.
	HeaderImageURL string `json:"headerImageUrl,omitempty"`

	Blocks []Block `json:"blocks"`

	// Markdown is an optional full-fidelity rendition of the first post.
	Markdown string `json:"markdown,omitempty"`

	// Fallback is true when the pipeline failed and this is the fixed error result.
	Fallback bool `json:"fallback,omitempty"`
}

// Images returns the URLs of all image blocks in display order.
func (n *PatchNotes) Images() []string {
	var urls []string
	for _, b := range n.Blocks {
		if b.Kind == BlockImage {
			urls = append(urls, b.URL)
		}
	}
	return urls
}

// Fallback returns the fixed result shown when any stage of the pipeline
// fails. It points the reader at rootURL directly.
func Fallback(rootURL string) *PatchNotes {
	return &PatchNotes{
		Title:     FallbackTitle,
		SourceURL: rootURL,
		Blocks: []Block{
			TextLine(StyleError, "Could not fetch patch notes from Hypixel forums."),
			TextLine(StylePlain, "Please check your internet connection and try again."),
			BlankLine(),
			TextLine(StylePlain, "You can view patch notes directly at:"),
			TextLine(StyleLink, rootURL),
		},
		Fallback: true,
	}
}

// ThreadReference points at a resolved announcement thread.
type ThreadReference struct {
	URL string
}
