// Package chat owns the conversation: the append-only message log, the
// Idle/Pending state machine, and the per-turn pipeline that turns a raw
// assistant reply into a structured, display-safe message.
package chat

import (
	"time"

	"keshomarket/internal/catalog"
	"keshomarket/internal/recommend"
	"keshomarket/internal/richtext"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation log. Messages are immutable once
// appended; Text always carries the raw original reply, while Blocks carry
// the display-safe segmented form with entity markers stripped.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time

	// Blocks is the segmented display representation. Only set on
	// assistant messages.
	Blocks []richtext.Block

	// Products are the resolved entity recommendations, first-seen order,
	// no duplicate IDs. Nil when the reply referenced nothing resolvable.
	Products []catalog.Product

	// Citations are the assistant's web grounding sources. Nil when the
	// reply carried none.
	Citations []recommend.Citation
}

// QuickReplies are the predefined hint strings offered on an empty
// transcript. They go through the exact same Submit path as typed input.
func QuickReplies() []string {
	return []string{
		"Check Phone Prices",
		"Laptops in Egerton",
		"Search Nakuru Shops",
	}
}
