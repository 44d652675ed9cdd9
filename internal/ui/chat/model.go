// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational terminal interface: the message
// view with typing playback, the input line, and the overlays for saved
// chats, knowledge cards, and pet profiles.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/config"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/engine"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/storage"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/ui/styles"
)

// =============================================================================
// STATE
// =============================================================================

// State selects which surface is active.
type State int

const (
	// StateChat is the main conversation surface.
	StateChat State = iota
	// StateHistory shows the saved conversation list.
	StateHistory
	// StateCards shows the saved knowledge cards.
	StateCards
	// StatePets shows the pet profile list.
	StatePets
)

// quickSuggestions seed an empty conversation with tappable questions.
var quickSuggestions = []string{
	"What should I feed my dog?",
	"How often should I groom my cat?",
	"Why is my bird plucking its feathers?",
	"How do I keep my fish tank clean?",
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the chat interface.
type Model struct {
	theme     *styles.Theme
	themeName string
	cfg       *config.Config
	orch      *engine.Orchestrator
	conv      *model.Conversation
	store     *storage.Store
	log       *zap.Logger
	events    <-chan typing.Event

	keys     KeyMap
	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	state    State
	selected int

	histories []model.ChatHistory
	cards     []model.KnowledgeCard
	pets      []model.PetProfile
	activePet int

	waiting     bool
	banner      string
	bannerError bool
	bannerGen   int

	width  int
	height int
	ready  bool
}

// New creates the chat model. Typing playback events must arrive on the
// events channel; the model keeps a receive command armed for it.
func New(cfg *config.Config, orch *engine.Orchestrator, store *storage.Store, events <-chan typing.Event, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Ask about your pet's care..."
	input.CharLimit = 2000
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		themeName: cfg.UI.Theme,
		theme:     styles.NewTheme(cfg.UI.Theme),
		cfg:       cfg,
		orch:      orch,
		conv:      orch.Conversation(),
		store:     store,
		log:       log,
		events:    events,
		keys:      DefaultKeyMap(),
		input:     input,
		spin:      spin,
		activePet: -1,
	}
	m.pets = store.Profiles.List()
	if len(m.pets) > 0 {
		m.activePet = 0
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForTyping(m.events))
}

// ActivePet returns the selected pet profile, or nil when none is active.
func (m *Model) ActivePet() *model.PetProfile {
	if m.activePet < 0 || m.activePet >= len(m.pets) {
		return nil
	}
	return &m.pets[m.activePet]
}

// setBanner shows a transient banner and returns the command that clears
// it.
func (m *Model) setBanner(text string, isError bool) tea.Cmd {
	m.banner = text
	m.bannerError = isError
	m.bannerGen++
	return clearBannerCmd(m.bannerGen)
}

// rebuildRenderer creates the markdown renderer for the current width.
func (m *Model) rebuildRenderer() {
	wrap := m.width - 6
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.log.Warn("failed to build markdown renderer", zap.Error(err))
		m.renderer = nil
		return
	}
	m.renderer = r
}
