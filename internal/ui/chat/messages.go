// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/config"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/engine"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// TypingEventMsg delivers one playback step from the typing controller into
// the update loop.
type TypingEventMsg struct {
	Event typing.Event
}

// RoundResultMsg carries the network outcome of a submission back to the
// update loop, where it is applied to the conversation.
type RoundResultMsg struct {
	Outcome *engine.Outcome
}

// ConfigReloadedMsg carries a freshly loaded configuration after the config
// file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigReloadErrorMsg reports a config file change that failed to load.
type ConfigReloadErrorMsg struct {
	Err error
}

// BannerClearMsg hides the transient banner.
type BannerClearMsg struct {
	// Generation guards against clearing a banner shown after this clear
	// was scheduled.
	Generation int
}
