// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the label used when rendering or exporting a message.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "PawGuide"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
//
// Content is mutable only while IsRevealing is set; during that window it
// always holds a prefix built from whole reveal chunks, never the full reply.
// The JSON tags match the persisted collection layout, so a message inside a
// saved history round-trips unchanged (timestamps as ISO/RFC 3339 strings).
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// IsRevealing marks the assistant placeholder being typed out.
	IsRevealing bool `json:"isTyping,omitempty"`

	// Keywords are the extracted topic tags, attached to user messages on
	// append and to assistant messages on finalization.
	Keywords []string `json:"keywords,omitempty"`
}

// NewMessage creates a message with a generated ID and the current time.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message carrying the given keyword tags.
func NewUserMessage(content string, keywords []string) *Message {
	msg := NewMessage(RoleUser, content)
	msg.Keywords = keywords
	return msg
}

// NewPlaceholderMessage creates the empty assistant message inserted while
// a reply is pending and revealed incrementally once it arrives.
func NewPlaceholderMessage() *Message {
	msg := NewMessage(RoleAssistant, "")
	msg.IsRevealing = true
	return msg
}

// Finalize replaces the content with the complete reply text, attaches the
// keyword tags and clears the revealing flag.
func (m *Message) Finalize(content string, keywords []string) {
	m.Content = content
	m.Keywords = keywords
	m.IsRevealing = false
}

// Preview returns a single-line, rune-truncated preview of the content.
func (m *Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.Flatten(m.Content), maxRunes)
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Clone returns an independent copy of the message.
func (m *Message) Clone() *Message {
	cp := *m
	if m.Keywords != nil {
		cp.Keywords = append([]string(nil), m.Keywords...)
	}
	return &cp
}
