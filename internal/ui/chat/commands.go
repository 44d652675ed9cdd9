// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/engine"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
)

// bannerDuration is how long transient banners stay visible.
const bannerDuration = 4 * time.Second

// waitForTyping blocks on the playback event channel and converts the next
// event into a message. Re-armed after every delivery.
func waitForTyping(events <-chan typing.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return TypingEventMsg{Event: ev}
	}
}

// executeCmd runs the prepared round's network call off the update loop.
// The result is applied to the conversation back on it.
func executeCmd(round *engine.Round) tea.Cmd {
	return func() tea.Msg {
		return RoundResultMsg{Outcome: round.Execute(context.Background())}
	}
}

// clearBannerCmd schedules the banner to disappear.
func clearBannerCmd(generation int) tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return BannerClearMsg{Generation: generation}
	})
}
