package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"keshomarket/internal/catalog"
	"keshomarket/internal/chat"
	"keshomarket/internal/recommend"
	"keshomarket/internal/richtext"
)

// View renders the whole screen: transcript, pending indicator, input box.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.conv.Pending() {
		sb.WriteString(m.spin.View() + m.styles.Muted.Render(" Analyzing market...") + "\n")
	} else {
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n" + m.styles.Muted.Render("enter: send • esc: quit"))
	return sb.String()
}

func (m Model) renderTranscript() string {
	messages := m.conv.Messages()
	if len(messages) == 0 {
		return m.renderEmptyState()
	}

	var sb strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("You") + "\n")
			sb.WriteString(msg.Text + "\n\n")
		case chat.RoleAssistant:
			sb.WriteString(m.styles.AssistantLabel.Render("KeshoMarket Assistant") + "\n")
			sb.WriteString(m.renderBlocks(msg.Blocks))
			if len(msg.Citations) > 0 {
				sb.WriteString(m.renderCitations(msg.Citations))
			}
			if len(msg.Products) > 0 {
				sb.WriteString(m.renderProducts(msg.Products))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) renderEmptyState() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Heading.Render("KeshoMarket Assistant") + "\n\n")
	sb.WriteString("I help you navigate the local market. Ask me about gadgets,\n")
	sb.WriteString("prices in Nakuru, or what's currently in stock at Egerton.\n\n")
	for i, hint := range chat.QuickReplies() {
		sb.WriteString(m.styles.Hint.Render(fmt.Sprintf("/%d %s", i+1, hint)) + "\n")
	}
	return sb.String()
}

// renderBlocks maps display blocks onto terminal styling. The block kinds
// fully determine presentation; no reply text is re-parsed here.
func (m Model) renderBlocks(blocks []richtext.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case richtext.BlockBlank:
			sb.WriteString("\n")
		case richtext.BlockHeading:
			sb.WriteString(m.styles.Heading.Render(b.Text) + "\n")
		case richtext.BlockListItem:
			sb.WriteString(m.styles.Bullet.Render("• ") + m.renderSpans(b.Spans) + "\n")
		case richtext.BlockParagraph:
			sb.WriteString(m.renderSpans(b.Spans) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderSpans(spans []richtext.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case richtext.SpanEmphasis:
			sb.WriteString(m.styles.Emphasis.Render(s.Text))
		case richtext.SpanCurrency:
			sb.WriteString(m.styles.Currency.Render(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func (m Model) renderCitations(citations []recommend.Citation) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Muted.Render("Web citations:") + "\n")
	for _, c := range citations {
		sb.WriteString("  " + m.styles.Citation.Render(c.Title) + m.styles.Muted.Render(" — "+c.URI) + "\n")
	}
	return sb.String()
}

func (m Model) renderProducts(products []catalog.Product) string {
	cards := make([]string, 0, len(products))
	for _, p := range products {
		body := m.styles.CardTitle.Render(p.Name) + "\n" +
			m.styles.Currency.Render(fmt.Sprintf("KES %d", p.Price)) + "\n" +
			m.styles.Muted.Render(p.Location+" • "+string(p.Category))
		cards = append(cards, m.styles.Card.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}
