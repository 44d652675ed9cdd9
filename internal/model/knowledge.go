// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFinalized is returned when a knowledge card is requested from a
// message that is not a finalized assistant reply.
var ErrNotFinalized = errors.New("knowledge cards require a finalized assistant message")

// KnowledgeCard is a user-curated excerpt of a finalized assistant reply,
// retained independently of the conversation it came from.
type KnowledgeCard struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PetType   string    `json:"petType"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// NewKnowledgeCard creates a card from a finalized assistant message. The
// content is copied verbatim; tags default to the source message's keywords,
// falling back to the lowercased pet type.
func NewKnowledgeCard(title string, msg *Message, petType string) (*KnowledgeCard, error) {
	if msg == nil || msg.Role != RoleAssistant || msg.IsRevealing {
		return nil, ErrNotFinalized
	}

	tags := append([]string(nil), msg.Keywords...)
	if len(tags) == 0 {
		tags = []string{strings.ToLower(petType)}
	}

	return &KnowledgeCard{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   msg.Content,
		PetType:   petType,
		Timestamp: time.Now(),
		Tags:      tags,
	}, nil
}

// SuggestedTitle derives a default card title from the message's first
// keyword tag, or empty when the message has none.
func SuggestedTitle(msg *Message) string {
	if msg == nil || len(msg.Keywords) == 0 {
		return ""
	}
	return "Tips about " + msg.Keywords[0]
}
