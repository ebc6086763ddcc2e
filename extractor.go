package patchnotes

// ExtractResult holds the content extracted from a thread page.
type ExtractResult struct {
	// Title is the thread title, or DefaultTitle when the page has none.
	Title string

	// HeaderImageURL is the first image of the first post, normalized.
	HeaderImageURL string

	// Blocks is the first post converted to display blocks.
	Blocks []Block

	// ContentHTML is the first post body as HTML. Empty when no post was found.
	ContentHTML string
}

// Extractor converts a thread page into display blocks.
type Extractor interface {
	// Extract parses the thread page. A page without a first post is not an
	// error: the result holds a single error-styled block instead.
	Extract(html string) (*ExtractResult, error)
}
