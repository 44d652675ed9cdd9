// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the PawGuide conversation
// engine.
//
// # Key Types
//
//   - Conversation: the live, ordered message log and sole owner of it
//   - Message: single message with role, content, timestamp, keyword tags
//   - ChatHistory: immutable saved snapshot of a conversation
//   - KnowledgeCard: curated excerpt of a finalized assistant reply
//   - PetProfile: a pet whose attributes can accompany outbound requests
//   - Role: message role enumeration (user, assistant)
//
// # Usage
//
// Drive a conversation:
//
//	conv := model.NewConversation()
//	conv.AppendUser("How often should I feed my cat?")
//	conv.AppendPlaceholder()
//	// ... reply arrives, typing playback reveals it ...
//	conv.FinalizePlaceholder(reply, tags)
//
// Snapshot it for the saved histories collection:
//
//	if h := conv.Snapshot(activePetName); h != nil {
//	    histories = append([]model.ChatHistory{*h}, histories...)
//	}
package model
