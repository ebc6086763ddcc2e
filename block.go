package patchnotes

// Style tells the display surface how to emphasize a text line.
type Style int

// Text line styles.
const (
	StylePlain Style = iota
	StyleBold
	StyleHeader
	StyleListItem
	StyleLink
	StyleError
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleHeader:
		return "header"
	case StyleListItem:
		return "list_item"
	case StyleLink:
		return "link"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	for style := StylePlain; style <= StyleError; style++ {
		if style.String() == string(text) {
			*s = style
			return nil
		}
	}
	return Errorf(EINVALID, "unknown style %q", text)
}

// BlockKind distinguishes the variants of Block.
type BlockKind int

// Block kinds.
const (
	BlockText BlockKind = iota
	BlockImage
)

// MarshalText implements encoding.TextMarshaler.
func (k BlockKind) MarshalText() ([]byte, error) {
	if k == BlockImage {
		return []byte("image"), nil
	}
	return []byte("text"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *BlockKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*k = BlockText
	case "image":
		*k = BlockImage
	default:
		return Errorf(EINVALID, "unknown block kind %q", text)
	}
	return nil
}

// Block is one renderable unit of the patch-notes body: either a styled
// text line or an image reference. Order within a sequence is display order.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Text and Style are set for BlockText. Text never contains a newline.
	// An empty Text is an intentional blank separator line.
	Text  string `json:"text,omitempty"`
	Style Style  `json:"style"`

	// URL is the absolute image URL for BlockImage.
	URL string `json:"url,omitempty"`
}

// TextLine returns a text block with the given style.
func TextLine(style Style, text string) Block {
	return Block{Kind: BlockText, Style: style, Text: text}
}

// BlankLine returns an empty plain text block.
func BlankLine() Block {
	return Block{Kind: BlockText, Style: StylePlain}
}

// ImageRef returns an image block.
func ImageRef(url string) Block {
	return Block{Kind: BlockImage, URL: url}
}

// IsBlank reports whether the block is a blank separator line.
func (b Block) IsBlank() bool {
	return b.Kind == BlockText && b.Text == ""
}
