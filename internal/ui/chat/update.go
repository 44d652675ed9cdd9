// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/engine"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/export"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/ui/styles"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TypingEventMsg:
		return m.handleTypingEvent(msg)

	case RoundResultMsg:
		return m.handleRoundResult(msg)

	case BannerClearMsg:
		if msg.Generation == m.bannerGen {
			m.banner = ""
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)

	case ConfigReloadErrorMsg:
		m.log.Warn("config reload failed", zap.Error(msg.Err))
		return m, m.setBanner("Config file change could not be loaded", true)

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.input.Width = msg.Width - 8

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	m.rebuildRenderer()
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// PLAYBACK AND REQUESTS
// =============================================================================

func (m Model) handleTypingEvent(msg TypingEventMsg) (tea.Model, tea.Cmd) {
	ev := msg.Event
	if ev.Done {
		m.conv.FinalizePlaceholder(ev.Content, ev.Keywords)
	} else {
		m.conv.Reveal(ev.Buffer)
	}
	m.refreshViewport()
	return m, waitForTyping(m.events)
}

func (m Model) handleRoundResult(msg RoundResultMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	var cmd tea.Cmd
	if err := m.orch.Complete(msg.Outcome); err != nil {
		var connErr *engine.ConnectivityError
		if errors.As(err, &connErr) {
			cmd = m.setBanner(engine.ConnectionBanner, true)
		}
	}
	m.refreshViewport()
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	round, err := m.orch.Begin(text, m.ActivePet())
	if err != nil {
		if errors.Is(err, engine.ErrBusy) {
			return m, m.setBanner("Still waiting for the previous answer...", false)
		}
		return m, nil
	}

	m.input.Reset()
	m.waiting = true
	m.refreshViewport()
	return m, tea.Batch(executeCmd(round), m.spin.Tick)
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	m.cfg = msg.Config
	if msg.Config.UI.Theme != m.themeName {
		m.themeName = msg.Config.UI.Theme
		m.theme = styles.NewTheme(m.themeName)
		m.theme.SetSize(m.width, m.height)
		m.refreshViewport()
	}
	return m, m.setBanner("Configuration reloaded", false)
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.state {
	case StateChat:
		return m.handleChatKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keys.Skip):
		m.orch.SkipPlayback()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.saveConversation()

	case key.Matches(msg, m.keys.NewChat):
		return m.startNewChat()

	case key.Matches(msg, m.keys.Export):
		return m.exportConversation()

	case key.Matches(msg, m.keys.SaveCard):
		return m.saveKnowledgeCard()

	case key.Matches(msg, m.keys.History):
		m.histories = m.store.Histories.List()
		m.state = StateHistory
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Cards):
		m.cards = m.store.Cards.List()
		m.state = StateCards
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Pets):
		m.pets = m.store.Profiles.List()
		m.state = StatePets
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.CyclePet):
		return m.cyclePet()

	case key.Matches(msg, m.keys.CycleTheme):
		m.themeName = styles.NextTheme(m.themeName)
		m.theme = styles.NewTheme(m.themeName)
		m.theme.SetSize(m.width, m.height)
		m.refreshViewport()
		return m, m.setBanner("Theme: "+m.themeName, false)

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Digit shortcuts fill the input from the quick suggestions while the
	// conversation is still empty.
	if m.cfg.UI.ShowSuggestions && m.conv.IsEmpty() && m.input.Value() == "" {
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(quickSuggestions) {
				m.input.SetValue(quickSuggestions[idx])
				m.input.CursorEnd()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// CHAT ACTIONS
// =============================================================================

func (m Model) saveConversation() (tea.Model, tea.Cmd) {
	snap := m.conv.Snapshot(m.petContextLabel())
	if snap == nil {
		return m, m.setBanner("Nothing to save yet", false)
	}
	if err := m.store.Histories.Save(snap); err != nil {
		m.log.Warn("failed to save chat", zap.Error(err))
		return m, m.setBanner("Could not save the chat", true)
	}
	return m, m.setBanner("Saved \""+snap.Title+"\"", false)
}

func (m Model) startNewChat() (tea.Model, tea.Cmd) {
	// The current chat is kept: it lands in history before the board is
	// wiped. An empty conversation snapshots to nil and nothing is written.
	var cmd tea.Cmd
	if snap := m.conv.Snapshot(m.petContextLabel()); snap != nil {
		if err := m.store.Histories.Save(snap); err != nil {
			m.log.Warn("failed to save chat before clearing", zap.Error(err))
		}
	}
	m.orch.CancelPlayback()
	m.conv.Clear()
	m.refreshViewport()
	cmd = m.setBanner("Started a new chat", false)
	return m, cmd
}

func (m Model) exportConversation() (tea.Model, tea.Cmd) {
	if m.conv.IsEmpty() {
		return m, m.setBanner("Nothing to export yet", false)
	}
	path, err := export.WriteToFile(m.conv.Messages(), export.NewTextExporter(), m.cfg.ResolveExportDir())
	if err != nil {
		m.log.Warn("export failed", zap.Error(err))
		return m, m.setBanner("Export failed", true)
	}
	return m, m.setBanner("Exported to "+path, false)
}

func (m Model) saveKnowledgeCard() (tea.Model, tea.Cmd) {
	answer := m.conv.LastFinalAssistant()
	if answer == nil {
		return m, m.setBanner("No answer to save yet", false)
	}

	title := model.SuggestedTitle(answer)
	if title == "" {
		title = "Pet care tip"
	}
	petType := ""
	if pet := m.ActivePet(); pet != nil {
		petType = pet.Type
	}

	card, err := model.NewKnowledgeCard(title, answer, petType)
	if err != nil {
		return m, m.setBanner("No answer to save yet", false)
	}
	if err := m.store.Cards.Save(card); err != nil {
		m.log.Warn("failed to save knowledge card", zap.Error(err))
		return m, m.setBanner("Could not save the card", true)
	}
	return m, m.setBanner("Saved card \""+card.Title+"\"", false)
}

func (m Model) cyclePet() (tea.Model, tea.Cmd) {
	if len(m.pets) == 0 {
		return m, m.setBanner("No pet profiles yet", false)
	}
	m.activePet = (m.activePet + 1) % len(m.pets)
	pet := m.pets[m.activePet]
	return m, m.setBanner(fmt.Sprintf("Talking about %s (%s)", pet.Name, pet.Type), false)
}

// petContextLabel describes the active pet for saved histories.
func (m *Model) petContextLabel() string {
	pet := m.ActivePet()
	if pet == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", pet.Name, pet.Type)
}

// =============================================================================
// OVERLAY LISTS
// =============================================================================

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateChat
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.listLen()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.selectListItem()

	case key.Matches(msg, m.keys.Delete):
		return m.deleteListItem()
	}
	return m, nil
}

func (m *Model) listLen() int {
	switch m.state {
	case StateHistory:
		return len(m.histories)
	case StateCards:
		return len(m.cards)
	case StatePets:
		return len(m.pets)
	}
	return 0
}

func (m Model) selectListItem() (tea.Model, tea.Cmd) {
	if m.selected >= m.listLen() {
		return m, nil
	}

	switch m.state {
	case StateHistory:
		h := m.histories[m.selected]
		m.orch.CancelPlayback()
		m.conv.Load(&h)
		m.state = StateChat
		m.refreshViewport()
		return m, m.setBanner("Loaded \""+h.Title+"\"", false)

	case StatePets:
		m.activePet = m.selected
		pet := m.pets[m.selected]
		m.state = StateChat
		return m, m.setBanner(fmt.Sprintf("Talking about %s (%s)", pet.Name, pet.Type), false)
	}

	// Cards are browsed in place.
	return m, nil
}

func (m Model) deleteListItem() (tea.Model, tea.Cmd) {
	if m.selected >= m.listLen() {
		return m, nil
	}

	var err error
	switch m.state {
	case StateHistory:
		err = m.store.Histories.Delete(m.histories[m.selected].ID)
		m.histories = m.store.Histories.List()
	case StateCards:
		err = m.store.Cards.Delete(m.cards[m.selected].ID)
		m.cards = m.store.Cards.List()
	case StatePets:
		deleted := m.pets[m.selected].ID
		err = m.store.Profiles.Delete(deleted)
		m.pets = m.store.Profiles.List()
		if m.activePet >= len(m.pets) {
			m.activePet = len(m.pets) - 1
		}
	}
	if err != nil {
		m.log.Warn("delete failed", zap.Error(err))
	}
	if m.selected >= m.listLen() && m.selected > 0 {
		m.selected--
	}
	return m, nil
}
