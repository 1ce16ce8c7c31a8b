// Package assistant defines the outbound boundary to the generative-AI
// backend. The rest of the engine sees only Request/Reply values; the wire
// format, grounding tools and retry policy live behind the Gateway interface.
package assistant

import (
	"context"
	"fmt"
)

// Request is one composed assistant call.
type Request struct {
	// UserText is the user's message, verbatim.
	UserText string
	// InventoryContext is the line-per-product catalog serialization built
	// fresh from the snapshot captured at submission time.
	InventoryContext string
	// SystemInstruction is the full persona prompt, inventory included.
	SystemInstruction string
	// EnableWebGrounding turns on the backend's web search tool.
	EnableWebGrounding bool
}

// WebSource is the web half of a grounding chunk.
type WebSource struct {
	Title string
	URI   string
}

// GroundingChunk is one opaque grounding-metadata entry from the backend.
// Only chunks with a Web part carrying a URI are usable; the citation
// extractor filters the rest.
type GroundingChunk struct {
	Web *WebSource
}

// Reply is a successful assistant response.
type Reply struct {
	Text   string
	Chunks []GroundingChunk
}

// Gateway sends one composed request and returns the reply or an error.
// Implementations must enforce their own timeout so a hung round trip
// surfaces as an error rather than blocking the conversation forever.
type Gateway interface {
	Generate(ctx context.Context, req Request) (*Reply, error)
}

// BuildSystemInstruction composes the KeshoMarket assistant persona around
// the serialized inventory. The [ID: ...] format instruction is what makes
// replies machine-extractable downstream.
func BuildSystemInstruction(inventoryContext string) string {
	return fmt.Sprintf(`You are the KeshoMarket Assistant for Nakuru and Egerton University.

CURRENT MARKET INVENTORY:
%s

MISSION:
- Help users find items in our Nakuru/Egerton inventory.
- If you recommend an item, YOU MUST USE THE FORMAT: [ID: product-id].
- If a user asks for something not in stock, use Google Search to find current market prices in Kenya or nearby shops.
- Be conversational, friendly, and helpful. Mention specific campus spots like Egerton Main, Njoro, or Nakuru CBD.
- Bold prices like **KES 1,200**.`, inventoryContext)
}
