// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the PawGuide
// terminal interface. Each pet type carries its own accent palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// PET PALETTES
// =============================================================================

// Palette is the accent color set for one pet theme.
type Palette struct {
	Name      string
	Icon      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Subtle    lipgloss.Color
}

// palettes maps theme names to their colors. Keys match ui.theme config
// values.
var palettes = map[string]Palette{
	"dog":    {Name: "dog", Icon: "🐕", Primary: lipgloss.Color("#D97706"), Secondary: lipgloss.Color("#92400E"), Subtle: lipgloss.Color("#FDE68A")},
	"cat":    {Name: "cat", Icon: "🐈", Primary: lipgloss.Color("#7C3AED"), Secondary: lipgloss.Color("#4C1D95"), Subtle: lipgloss.Color("#DDD6FE")},
	"fish":   {Name: "fish", Icon: "🐠", Primary: lipgloss.Color("#0891B2"), Secondary: lipgloss.Color("#155E75"), Subtle: lipgloss.Color("#A5F3FC")},
	"bird":   {Name: "bird", Icon: "🦜", Primary: lipgloss.Color("#16A34A"), Secondary: lipgloss.Color("#14532D"), Subtle: lipgloss.Color("#BBF7D0")},
	"rabbit": {Name: "rabbit", Icon: "🐇", Primary: lipgloss.Color("#DB2777"), Secondary: lipgloss.Color("#831843"), Subtle: lipgloss.Color("#FBCFE8")},
}

// ThemeNames returns the available theme names in cycling order.
func ThemeNames() []string {
	return []string{"dog", "cat", "fish", "bird", "rabbit"}
}

// NextTheme returns the theme following name in cycling order.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the application.
type Theme struct {
	Palette      Palette
	ColorProfile termenv.Profile

	Width  int
	Height int

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style

	// Banner shown on connectivity trouble
	ErrorBanner lipgloss.Style
	InfoBanner  lipgloss.Style

	// Message rendering
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	UserBubble     lipgloss.Style
	AssistantText  lipgloss.Style
	KeywordTag     lipgloss.Style
	Timestamp      lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// Suggestions
	Suggestion lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Overlay lists (history, cards, pets)
	ListTitle    lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListMeta     lipgloss.Style
}

// NewTheme builds a theme for the named pet palette. Unknown names fall
// back to the dog palette. The terminal's color profile is detected once
// here; a terminal that reports no color support gets monochrome styles.
func NewTheme(name string) *Theme {
	pal, ok := palettes[name]
	if !ok {
		pal = palettes["dog"]
	}

	t := &Theme{
		Palette:      pal,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	var (
		primary   lipgloss.TerminalColor = t.Palette.Primary
		secondary lipgloss.TerminalColor = t.Palette.Secondary
		subtle    lipgloss.TerminalColor = t.Palette.Subtle
		white     lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")
		red       lipgloss.TerminalColor = lipgloss.Color("#B91C1C")
		gray      lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
		fgDim     lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
	)

	// On a colorless terminal keep layout and emphasis but drop every
	// color, so banners and labels still read through bold and borders.
	if t.ColorProfile == termenv.Ascii {
		none := lipgloss.NoColor{}
		primary, secondary, subtle = none, none, none
		white, red = none, none
		gray, fgDim = none, none
	}

	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)
	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(gray)

	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(white).
		Background(red).
		Padding(0, 1).
		Bold(true)
	t.InfoBanner = lipgloss.NewStyle().
		Foreground(white).
		Background(secondary).
		Padding(0, 1)

	t.UserLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(secondary)
	t.AssistantLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)
	t.UserBubble = lipgloss.NewStyle().
		Foreground(fgDim).
		PaddingLeft(2)
	t.AssistantText = lipgloss.NewStyle().
		PaddingLeft(2)
	t.KeywordTag = lipgloss.NewStyle().
		Foreground(secondary).
		Background(subtle).
		Padding(0, 1)
	t.Timestamp = lipgloss.NewStyle().
		Foreground(gray)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)

	t.Suggestion = lipgloss.NewStyle().
		Foreground(secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtle).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(gray)
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(gray)

	t.ListTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary).
		Underline(true)
	t.ListItem = lipgloss.NewStyle().
		PaddingLeft(2)
	t.ListSelected = lipgloss.NewStyle().
		PaddingLeft(0).
		Bold(true).
		Foreground(primary)
	t.ListMeta = lipgloss.NewStyle().
		Foreground(gray)
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
