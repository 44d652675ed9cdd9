// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// ChatHistory is an immutable saved snapshot of a conversation. It is
// created on explicit save, never mutated afterwards, and removed only by
// explicit deletion (saving a filtered collection).
type ChatHistory struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview"`
	Timestamp time.Time `json:"timestamp"`

	// PetContext names the pet profile that was active when the chat was
	// saved, so loading the history can restore it.
	PetContext string `json:"petContext,omitempty"`

	Messages []Message `json:"messages"`
}
