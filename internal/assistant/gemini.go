package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// emptyReplyText stands in when the backend returns a candidate with no text,
// so the conversation never shows a blank assistant bubble.
const emptyReplyText = "I'm looking that up for you. One moment."

// GeminiConfig configures the Gemini gateway.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		Model:   "gemini-3-flash-preview",
		Timeout: 60 * time.Second,
	}
}

// GeminiGateway implements Gateway on the Google GenAI API.
type GeminiGateway struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

// NewGeminiGateway creates a gateway client. The API key is required; model
// and timeout fall back to defaults when zero.
func NewGeminiGateway(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiGateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiConfig("").Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGeminiConfig("").Timeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGateway{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Generate sends one request and adapts the loose backend response into a
// Reply. A round trip that exceeds the configured timeout fails like any
// other gateway error.
func (g *GeminiGateway) Generate(ctx context.Context, req Request) (*Reply, error) {
	g.throttle()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}
	if req.EnableWebGrounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserText), cfg)
	if err != nil {
		g.logger.Warn("assistant request failed",
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		text = emptyReplyText
	}

	reply := &Reply{
		Text:   text,
		Chunks: adaptGroundingChunks(resp),
	}

	g.logger.Debug("assistant reply received",
		zap.String("model", g.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_len", len(reply.Text)),
		zap.Int("grounding_chunks", len(reply.Chunks)))
	return reply, nil
}

// adaptGroundingChunks is the narrow adapter between the SDK's loose
// grounding metadata and the engine's chunk type. Presence checks happen
// here so nothing else touches the external schema.
func adaptGroundingChunks(resp *genai.GenerateContentResponse) []GroundingChunk {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil
	}
	chunks := make([]GroundingChunk, 0, len(gm.GroundingChunks))
	for _, c := range gm.GroundingChunks {
		if c == nil || c.Web == nil {
			chunks = append(chunks, GroundingChunk{})
			continue
		}
		chunks = append(chunks, GroundingChunk{
			Web: &WebSource{Title: c.Web.Title, URI: c.Web.URI},
		})
	}
	return chunks
}

// throttle enforces a minimum gap between outbound requests.
func (g *GeminiGateway) throttle() {
	g.mu.Lock()
	defer g.mu.Unlock()
	const minGap = 500 * time.Millisecond
	if elapsed := time.Since(g.lastRequest); elapsed < minGap {
		time.Sleep(minGap - elapsed)
	}
	g.lastRequest = time.Now()
}
