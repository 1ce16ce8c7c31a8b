package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keshomarket/internal/assistant"
)

func TestExtractCitations_TitleFallback(t *testing.T) {
	chunks := []assistant.GroundingChunk{
		{Web: &assistant.WebSource{URI: "http://x"}},
	}

	got := ExtractCitations(chunks)

	assert.Equal(t, []Citation{{Title: "Source", URI: "http://x"}}, got)
}

func TestExtractCitations_DropsChunksWithoutURI(t *testing.T) {
	chunks := []assistant.GroundingChunk{
		{Web: &assistant.WebSource{Title: "no uri"}},
		{},
		{Web: &assistant.WebSource{Title: "Jumia", URI: "https://jumia.co.ke"}},
	}

	got := ExtractCitations(chunks)

	assert.Equal(t, []Citation{{Title: "Jumia", URI: "https://jumia.co.ke"}}, got)
}

func TestExtractCitations_OrderPreservedNoDedup(t *testing.T) {
	chunks := []assistant.GroundingChunk{
		{Web: &assistant.WebSource{Title: "A", URI: "http://a"}},
		{Web: &assistant.WebSource{Title: "B", URI: "http://b"}},
		{Web: &assistant.WebSource{Title: "A", URI: "http://a"}},
	}

	got := ExtractCitations(chunks)

	assert.Len(t, got, 3)
	assert.Equal(t, "http://a", got[0].URI)
	assert.Equal(t, "http://b", got[1].URI)
	assert.Equal(t, "http://a", got[2].URI)
}

func TestExtractCitations_EmptyYieldsNil(t *testing.T) {
	assert.Nil(t, ExtractCitations(nil))
	assert.Nil(t, ExtractCitations([]assistant.GroundingChunk{}))
}
