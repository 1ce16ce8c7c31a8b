package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"keshomarket/internal/assistant"
	"keshomarket/internal/catalog"
	"keshomarket/internal/recommend"
	"keshomarket/internal/richtext"
)

// FallbackText is the fixed assistant apology appended when the gateway
// fails. Failure is never fatal: the user may retry immediately.
const FallbackText = "I encountered a slight issue connecting to the market brain. Please check your internet and try again."

// Config wires a Conversation to its collaborators.
type Config struct {
	Gateway assistant.Gateway
	Catalog catalog.Provider
	Logger  *zap.Logger

	// EnableWebGrounding is passed through on every gateway request.
	EnableWebGrounding bool
}

// Conversation is the single point of mutation for the message log and the
// pending flag. At most one gateway request is in flight at a time: a Submit
// while pending is a no-op. Settling (success or failure) appends the
// assistant message and resets the flag under one lock, so no observer can
// see an intermediate state.
type Conversation struct {
	gateway   assistant.Gateway
	catalog   catalog.Provider
	logger    *zap.Logger
	grounding bool

	mu       sync.Mutex
	messages []Message
	pending  bool
}

// New creates an empty conversation. There is no persistence: the log lives
// and dies with the process.
func New(cfg Config) (*Conversation, error) {
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("chat: gateway is required")
	}
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("chat: catalog provider is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Conversation{
		gateway:   cfg.Gateway,
		catalog:   cfg.Catalog,
		logger:    logger,
		grounding: cfg.EnableWebGrounding,
	}, nil
}

// Submit sends one user turn and blocks until the turn settles. It returns
// the settled assistant message and true, or nil and false when the input
// was rejected: blank text, or a request already pending. Rejection appends
// nothing and changes no state.
func (c *Conversation) Submit(ctx context.Context, text string) (*Message, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, false
	}
	c.pending = true
	c.messages = append(c.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	})
	c.mu.Unlock()

	// Snapshot the catalog at submission time so resolution is not affected
	// by refreshes that land mid-flight.
	snapshot, err := c.catalog.ListAll(ctx)
	if err != nil {
		c.logger.Warn("catalog snapshot failed, continuing with empty inventory", zap.Error(err))
		snapshot = nil
	}

	inventory := catalog.InventoryContext(snapshot)
	reply, err := c.gateway.Generate(ctx, assistant.Request{
		UserText:           text,
		InventoryContext:   inventory,
		SystemInstruction:  assistant.BuildSystemInstruction(inventory),
		EnableWebGrounding: c.grounding,
	})

	var msg Message
	if err != nil {
		c.logger.Warn("gateway failure, appending fallback", zap.Error(err))
		msg = Message{
			ID:        uuid.NewString(),
			Role:      RoleAssistant,
			Text:      FallbackText,
			Timestamp: time.Now(),
			Blocks:    richtext.Segment(FallbackText),
		}
	} else {
		msg = c.buildAssistantMessage(reply, snapshot)
	}

	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.pending = false
	c.mu.Unlock()

	return &msg, true
}

// buildAssistantMessage runs entity resolution and citation extraction in
// parallel over the same raw reply, segments the marker-stripped text, and
// merges all three into one immutable message.
func (c *Conversation) buildAssistantMessage(reply *assistant.Reply, snapshot []catalog.Product) Message {
	var (
		products  []catalog.Product
		citations []recommend.Citation
	)

	var g errgroup.Group
	g.Go(func() error {
		products = recommend.Resolve(recommend.ExtractReferences(reply.Text), snapshot)
		return nil
	})
	g.Go(func() error {
		citations = recommend.ExtractCitations(reply.Chunks)
		return nil
	})
	_ = g.Wait() // the pipeline stages are pure and never fail

	blocks := richtext.Segment(recommend.StripMarkers(reply.Text))

	c.logger.Debug("assistant turn settled",
		zap.Int("blocks", len(blocks)),
		zap.Int("products", len(products)),
		zap.Int("citations", len(citations)))

	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Text:      reply.Text,
		Timestamp: time.Now(),
		Blocks:    blocks,
		Products:  products,
		Citations: citations,
	}
}

// Messages returns a snapshot of the conversation log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Pending reports whether a gateway request is in flight.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}
