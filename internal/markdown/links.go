package markdown

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

type Link struct {
	Kind        LinkKind
	Destination string
	// Text is the rendered link text (alt text for images).
	Text string
}

// Heading is an ATX or setext heading with its plain text.
type Heading struct {
	Level int
	Text  string
}

// CodeBlock is a fenced code block.
type CodeBlock struct {
	Lang string
	Code string
	// Trail holds the texts of the enclosing headings, outermost first.
	Trail []string
}

// Under reports whether the block sits below a heading with the given text.
func (c CodeBlock) Under(heading string) bool {
	for _, h := range c.Trail {
		if h == heading {
			return true
		}
	}
	return false
}
