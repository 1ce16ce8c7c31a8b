package recommend

import (
	"keshomarket/internal/assistant"
)

// fallbackTitle is used when a grounding source arrives without one.
const fallbackTitle = "Source"

// Citation is one web source the assistant used to ground a claim.
type Citation struct {
	Title string
	URI   string
}

// ExtractCitations normalizes grounding chunks into citations. Chunks
// without a resolvable URI are dropped; order is preserved and duplicates
// are kept, since the gateway may legitimately return a source more than
// once. An empty result is returned as nil so messages can omit the field.
func ExtractCitations(chunks []assistant.GroundingChunk) []Citation {
	var citations []Citation
	for _, c := range chunks {
		if c.Web == nil || c.Web.URI == "" {
			continue
		}
		title := c.Web.Title
		if title == "" {
			title = fallbackTitle
		}
		citations = append(citations, Citation{Title: title, URI: c.Web.URI})
	}
	return citations
}
