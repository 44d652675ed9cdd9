// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// MaxHistories limits how many saved conversations are kept. Saving past
// the limit drops the oldest entries.
const MaxHistories = 50

// ChatHistoryStore persists saved conversation snapshots, newest first.
type ChatHistoryStore struct {
	store *Store
	path  string
}

// List returns all saved histories, newest first.
func (s *ChatHistoryStore) List() []model.ChatHistory {
	return readCollection[model.ChatHistory](s.store, s.path)
}

// Save prepends a snapshot. A snapshot with an ID already present replaces
// the stored record instead, keeping its list position. Nil snapshots are
// ignored, so saving an empty conversation stays a no-op end to end.
func (s *ChatHistoryStore) Save(h *model.ChatHistory) error {
	if h == nil {
		return nil
	}

	histories := s.List()
	for i := range histories {
		if histories[i].ID == h.ID {
			histories[i] = *h
			return writeCollection(s.store, s.path, histories)
		}
	}

	histories = append([]model.ChatHistory{*h}, histories...)
	if len(histories) > MaxHistories {
		histories = histories[:MaxHistories]
	}
	return writeCollection(s.store, s.path, histories)
}

// Get returns the history with the given ID, or ErrNotFound.
func (s *ChatHistoryStore) Get(id string) (*model.ChatHistory, error) {
	for _, h := range s.List() {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the history with the given ID, or returns ErrNotFound.
func (s *ChatHistoryStore) Delete(id string) error {
	histories := s.List()
	for i := range histories {
		if histories[i].ID == id {
			histories = append(histories[:i], histories[i+1:]...)
			return writeCollection(s.store, s.path, histories)
		}
	}
	return ErrNotFound
}

// Clear removes every saved history.
func (s *ChatHistoryStore) Clear() error {
	return writeCollection(s.store, s.path, []model.ChatHistory{})
}
