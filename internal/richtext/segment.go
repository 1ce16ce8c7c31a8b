package richtext

import (
	"regexp"
	"strings"
)

var (
	// listMarkerRe strips the leading list token from a trimmed line.
	listMarkerRe = regexp.MustCompile(`^([*\-]+|\d+\.)\s*`)
	// ordinalRe detects "1." style list lines.
	ordinalRe = regexp.MustCompile(`^\d+\.`)
	// emphasisRe matches a strong-emphasis pair; content is captured so the
	// delimiters can be stripped.
	emphasisRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	// currencyRe matches a 3-letter currency code followed by a grouped-digit
	// amount, e.g. "KES 1,200" or "USD 300". The leading word boundary keeps
	// it from firing inside longer uppercase words.
	currencyRe = regexp.MustCompile(`\b[A-Z]{3}\s?\d+(?:,\d+)*`)
)

// Segment splits reply text (entity markers already removed) into ordered
// display blocks. It never fails: unrecognized structure degrades to
// paragraphs of plain text.
func Segment(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockBlank})

		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{
				Kind: BlockHeading,
				Text: strings.TrimSpace(strings.TrimLeft(line, "#")),
			})

		case isListLine(trimmed):
			content := listMarkerRe.ReplaceAllString(trimmed, "")
			blocks = append(blocks, Block{
				Kind:  BlockListItem,
				Spans: ScanSpans(content),
			})

		default:
			blocks = append(blocks, Block{
				Kind:  BlockParagraph,
				Spans: ScanSpans(line),
			})
		}
	}
	return blocks
}

func isListLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "-") ||
		ordinalRe.MatchString(trimmed)
}

// ScanSpans performs a single left-to-right pass over line text, producing
// plain, emphasis and currency spans. Matches are non-overlapping; the
// pattern starting earliest wins, and emphasis wins when both start at the
// same offset. Text between matches becomes plain spans.
func ScanSpans(text string) []Span {
	var spans []Span
	rest := text

	for rest != "" {
		emph := emphasisRe.FindStringSubmatchIndex(rest)
		cur := currencyRe.FindStringIndex(rest)

		if emph == nil && cur == nil {
			spans = appendSpan(spans, SpanPlain, rest)
			break
		}

		// Pick whichever match starts earliest; emphasis takes the tie.
		useEmph := emph != nil && (cur == nil || emph[0] <= cur[0])

		if useEmph {
			spans = appendSpan(spans, SpanPlain, rest[:emph[0]])
			spans = appendSpan(spans, SpanEmphasis, rest[emph[2]:emph[3]])
			rest = rest[emph[1]:]
		} else {
			spans = appendSpan(spans, SpanPlain, rest[:cur[0]])
			spans = appendSpan(spans, SpanCurrency, rest[cur[0]:cur[1]])
			rest = rest[cur[1]:]
		}
	}
	return spans
}

// appendSpan drops empty runs so consumers never see zero-width spans.
func appendSpan(spans []Span, kind SpanKind, text string) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{Kind: kind, Text: text})
}

// PlainText flattens blocks back into unstyled text, one line per block.
// Used for logging and accessibility fallbacks.
func PlainText(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch b.Kind {
		case BlockHeading:
			sb.WriteString(b.Text)
		case BlockListItem, BlockParagraph:
			for _, s := range b.Spans {
				sb.WriteString(s.Text)
			}
		}
	}
	return sb.String()
}
