// Package richtext converts assistant reply text into a render-target-agnostic
// sequence of typed display blocks. Blocks carry structure and classification
// only, never presentation, so any consumer (terminal, markup, plain text) can
// render them deterministically.
package richtext

// BlockKind classifies one structural unit of a message.
type BlockKind int

const (
	// BlockParagraph is a regular line of text.
	BlockParagraph BlockKind = iota
	// BlockHeading is a line introduced by one or more '#' markers.
	BlockHeading
	// BlockListItem is a line introduced by '*', '-' or an ordinal like "1.".
	BlockListItem
	// BlockBlank is a whitespace-only line, kept for vertical rhythm.
	BlockBlank
)

// String returns the kind name for logs and test failures.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockListItem:
		return "listItem"
	case BlockBlank:
		return "blank"
	}
	return "unknown"
}

// SpanKind classifies one inline run of text within a block.
type SpanKind int

const (
	// SpanPlain is unstyled text.
	SpanPlain SpanKind = iota
	// SpanEmphasis is strong-emphasis text, delimiters already stripped.
	SpanEmphasis
	// SpanCurrency is a currency amount, matched text preserved verbatim.
	SpanCurrency
)

// String returns the kind name for logs and test failures.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanEmphasis:
		return "emphasis"
	case SpanCurrency:
		return "currency"
	}
	return "unknown"
}

// Span is one inline-styled run of text.
type Span struct {
	Kind SpanKind
	Text string
}

// Block is one display block. Headings carry Text; list items and paragraphs
// carry Spans; blank blocks carry neither.
type Block struct {
	Kind  BlockKind
	Text  string
	Spans []Span
}
