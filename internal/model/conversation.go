// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/keywords"
)

// Derivation limits for saved-history metadata, matching the persisted
// collections produced by earlier releases.
const (
	titleRunes   = 30
	previewRunes = 50
)

// =============================================================================
// CONVERSATION
// =============================================================================

// Conversation is the live, ordered message log. It is the exclusive owner
// of its messages: saved histories receive deep copies, and loading a
// history copies messages back in.
//
// Invariant: at most one message has IsRevealing set at any time.
type Conversation struct {
	messages []*Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{messages: make([]*Message, 0)}
}

// =============================================================================
// MESSAGE OPERATIONS
// =============================================================================

// AppendUser appends a user message with freshly extracted keyword tags and
// returns it.
func (c *Conversation) AppendUser(content string) *Message {
	msg := NewUserMessage(content, keywords.Extract(content))
	c.messages = append(c.messages, msg)
	return msg
}

// AppendPlaceholder appends an empty assistant message with the revealing
// flag set and returns it. Any prior revealing message loses its flag first
// so the single-revealing invariant holds for every call sequence.
func (c *Conversation) AppendPlaceholder() *Message {
	if prev := c.revealing(); prev != nil {
		prev.IsRevealing = false
	}
	msg := NewPlaceholderMessage()
	c.messages = append(c.messages, msg)
	return msg
}

// AppendAssistant appends an ordinary, already-final assistant message.
// Used for the in-conversation connectivity error text.
func (c *Conversation) AppendAssistant(content string, tags []string) *Message {
	msg := NewMessage(RoleAssistant, content)
	msg.Keywords = tags
	c.messages = append(c.messages, msg)
	return msg
}

// Reveal updates the revealing message's content to the given buffer value.
// No-op when no message is revealing.
func (c *Conversation) Reveal(buffer string) {
	if msg := c.revealing(); msg != nil {
		msg.Content = buffer
	}
}

// FinalizePlaceholder locates the most recent revealing message, replaces
// its content and tags, and clears the flag. No-op (not an error) when no
// message is revealing.
func (c *Conversation) FinalizePlaceholder(content string, tags []string) {
	if msg := c.revealing(); msg != nil {
		msg.Finalize(content, tags)
	}
}

// RemovePlaceholder deletes the revealing message outright. Used on request
// failure, where the placeholder is removed rather than finalized. Returns
// true if a placeholder was removed.
func (c *Conversation) RemovePlaceholder() bool {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].IsRevealing {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the live message list. Saved histories are untouched.
func (c *Conversation) Clear() {
	c.messages = make([]*Message, 0)
}

// Load replaces the live message list with a copy of a saved history's
// messages. The snapshot stays independent of later live mutations.
func (c *Conversation) Load(h *ChatHistory) {
	c.messages = make([]*Message, 0, len(h.Messages))
	for i := range h.Messages {
		c.messages = append(c.messages, h.Messages[i].Clone())
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the live message list for display. Callers must not
// mutate it.
func (c *Conversation) Messages() []*Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// LastFinalAssistant returns the most recent assistant message that is not
// revealing, or nil. Knowledge cards may only be created from such messages.
func (c *Conversation) LastFinalAssistant() *Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant && !c.messages[i].IsRevealing {
			return c.messages[i]
		}
	}
	return nil
}

// revealing returns the most recent message with the revealing flag set.
func (c *Conversation) revealing() *Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].IsRevealing {
			return c.messages[i]
		}
	}
	return nil
}

// HasRevealing reports whether a reveal is in progress.
func (c *Conversation) HasRevealing() bool {
	return c.revealing() != nil
}

// =============================================================================
// WIRE CONVERSION
// =============================================================================

// ToChatMessages converts the conversation to the outbound wire format,
// excluding the revealing placeholder and empty messages.
func (c *Conversation) ToChatMessages() []assistant.ChatMessage {
	out := make([]assistant.ChatMessage, 0, len(c.messages))
	for _, msg := range c.messages {
		if msg.IsRevealing || msg.Content == "" {
			continue
		}
		out = append(out, assistant.ChatMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}
	return out
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot returns an immutable saved-history copy of the conversation, or
// nil for an empty conversation (saving an empty chat is a no-op). Title is
// derived from the first user message, preview from the last message. The
// copies are deep: later live mutations never alter a snapshot. A copy of a
// still-revealing placeholder has the flag cleared, since a snapshot cannot
// keep revealing.
func (c *Conversation) Snapshot(petContext string) *ChatHistory {
	if len(c.messages) == 0 {
		return nil
	}

	title := "Chat " + time.Now().Format("2006-01-02")
	for _, msg := range c.messages {
		if msg.Role == RoleUser {
			title = deriveTitle(msg.Content)
			break
		}
	}

	msgs := make([]Message, 0, len(c.messages))
	for _, msg := range c.messages {
		cp := msg.Clone()
		cp.IsRevealing = false
		msgs = append(msgs, *cp)
	}

	return &ChatHistory{
		ID:         uuid.NewString(),
		Title:      title,
		Preview:    derivePreview(c.messages[len(c.messages)-1].Content),
		Timestamp:  time.Now(),
		PetContext: petContext,
		Messages:   msgs,
	}
}

// deriveTitle truncates the first user message to the title limit.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleRunes {
		return content
	}
	return string(runes[:titleRunes]) + "..."
}

// derivePreview truncates the last message to the preview limit. The
// ellipsis is always appended, matching the stored collections written by
// earlier releases.
func derivePreview(content string) string {
	runes := []rune(content)
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	return string(runes) + "..."
}
