// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/util"
)

// chromeHeight is the vertical space taken by everything except the
// message viewport: header, banner line, input box, and status bar.
const chromeHeight = 9

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.state {
	case StateHistory:
		return m.viewHistoryList()
	case StateCards:
		return m.viewCardList()
	case StatePets:
		return m.viewPetList()
	}
	return m.viewChat()
}

// =============================================================================
// CHAT SURFACE
// =============================================================================

func (m Model) viewChat() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewBanner())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.viewInput())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())

	return b.String()
}

func (m Model) viewHeader() string {
	title := m.theme.HeaderTitle.Render(m.theme.Palette.Icon + " PawGuide")
	meta := ""
	if pet := m.ActivePet(); pet != nil {
		meta = m.theme.HeaderMeta.Render("  " + pet.Name + " · " + pet.Type)
	}
	return m.theme.Header.Width(m.width - 2).Render(title + meta)
}

func (m Model) viewBanner() string {
	if m.banner == "" {
		return ""
	}
	if m.bannerError {
		return m.theme.ErrorBanner.Render(m.banner)
	}
	return m.theme.InfoBanner.Render(m.banner)
}

func (m Model) viewInput() string {
	prompt := m.theme.InputPrompt.Render("> ")
	line := prompt + m.input.View()
	if m.waiting {
		line = m.spin.View() + " waiting for PawGuide..."
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(line)
}

func (m Model) viewStatusBar() string {
	shortcuts := []struct{ key, desc string }{
		{"Enter", "send"},
		{"Tab", "skip"},
		{"C-s", "save"},
		{"C-h", "history"},
		{"C-n", "new"},
		{"C-e", "export"},
		{"C-k", "card"},
		{"C-p", "pets"},
		{"C-t", "theme"},
		{"C-c", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts, m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// refreshViewport re-renders the conversation into the viewport and keeps
// it pinned to the newest message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

func (m Model) renderConversation() string {
	msgs := m.conv.Messages()
	if len(msgs) == 0 {
		return m.renderWelcome()
	}

	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		blocks = append(blocks, m.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderMessage(msg *model.Message) string {
	var b strings.Builder

	label := m.theme.AssistantLabel
	if msg.Role == model.RoleUser {
		label = m.theme.UserLabel
	}
	b.WriteString(label.Render(msg.Role.DisplayName()))
	if !msg.Timestamp.IsZero() {
		b.WriteString("  " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04")))
	}
	b.WriteString("\n")

	switch {
	case msg.Role == model.RoleUser:
		b.WriteString(m.theme.UserBubble.Render(msg.Content))
	case msg.IsRevealing:
		// Partial markdown renders unstably, so playback shows raw text
		// with a cursor block until the reveal finishes.
		b.WriteString(m.theme.AssistantText.Render(msg.Content + "▌"))
	default:
		b.WriteString(m.theme.AssistantText.Render(m.renderMarkdown(msg.Content)))
	}

	if len(msg.Keywords) > 0 && !msg.IsRevealing {
		tags := make([]string, 0, len(msg.Keywords))
		for _, kw := range msg.Keywords {
			tags = append(tags, m.theme.KeywordTag.Render(kw))
		}
		b.WriteString("\n" + strings.Join(tags, " "))
	}
	return b.String()
}

func (m Model) renderMarkdown(content string) string {
	if !m.cfg.UI.RenderMarkdown || m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

func (m Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderMeta.Render("Ask anything about feeding, grooming, health, or training."))
	b.WriteString("\n\n")

	if m.cfg.UI.ShowSuggestions {
		for i, s := range quickSuggestions {
			b.WriteString(m.theme.Suggestion.Render(fmt.Sprintf("%d. %s", i+1, s)))
			b.WriteString("\n")
		}
		b.WriteString("\n" + m.theme.HeaderMeta.Render("Press a number to pick a question."))
	}
	return b.String()
}

// =============================================================================
// OVERLAY LISTS
// =============================================================================

func (m Model) viewHistoryList() string {
	var b strings.Builder
	b.WriteString(m.theme.ListTitle.Render("Saved chats") + "\n\n")

	if len(m.histories) == 0 {
		b.WriteString(m.theme.ListMeta.Render("No saved chats yet. Press Esc to go back."))
		return b.String()
	}

	for i, h := range m.histories {
		line := fmt.Sprintf("%s  %s", h.Timestamp.Format("2006-01-02"), util.TruncateWidth(h.Title, 40))
		if h.PetContext != "" {
			line += "  " + m.theme.ListMeta.Render(h.PetContext)
		}
		b.WriteString(m.renderListLine(i, line))
		b.WriteString("\n" + m.theme.ListItem.Render(m.theme.ListMeta.Render(util.TruncateWidth(h.Preview, 60))) + "\n")
	}

	b.WriteString("\n" + m.listFooter("Enter open · Del delete · Esc back"))
	return b.String()
}

func (m Model) viewCardList() string {
	var b strings.Builder
	b.WriteString(m.theme.ListTitle.Render("Knowledge cards") + "\n\n")

	if len(m.cards) == 0 {
		b.WriteString(m.theme.ListMeta.Render("No saved cards yet. Press Esc to go back."))
		return b.String()
	}

	for i, c := range m.cards {
		line := util.TruncateWidth(c.Title, 50)
		if c.PetType != "" {
			line += "  " + m.theme.ListMeta.Render(c.PetType)
		}
		b.WriteString(m.renderListLine(i, line))
		b.WriteString("\n" + m.theme.ListItem.Render(util.TruncateWidth(util.Flatten(c.Content), 70)) + "\n")
	}

	b.WriteString("\n" + m.listFooter("Del delete · Esc back"))
	return b.String()
}

func (m Model) viewPetList() string {
	var b strings.Builder
	b.WriteString(m.theme.ListTitle.Render("Pet profiles") + "\n\n")

	if len(m.pets) == 0 {
		b.WriteString(m.theme.ListMeta.Render("No pet profiles yet. Add one with the pet command. Press Esc to go back."))
		return b.String()
	}

	for i, p := range m.pets {
		line := fmt.Sprintf("%s · %s", p.Name, p.Type)
		if p.Breed != "" {
			line += " · " + p.Breed
		}
		if i == m.activePet {
			line += "  " + m.theme.ListMeta.Render("(active)")
		}
		b.WriteString(m.renderListLine(i, line))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.listFooter("Enter select · Del delete · Esc back"))
	return b.String()
}

func (m Model) renderListLine(i int, line string) string {
	if i == m.selected {
		return m.theme.ListSelected.Render("> " + line)
	}
	return m.theme.ListItem.Render(line)
}

func (m Model) listFooter(help string) string {
	return m.theme.StatusBar.Render(help)
}
