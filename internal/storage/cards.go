// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// KnowledgeCardStore persists saved answer cards, newest first.
type KnowledgeCardStore struct {
	store *Store
	path  string
}

// List returns all saved cards, newest first.
func (s *KnowledgeCardStore) List() []model.KnowledgeCard {
	return readCollection[model.KnowledgeCard](s.store, s.path)
}

// Save prepends a card.
func (s *KnowledgeCardStore) Save(card *model.KnowledgeCard) error {
	if card == nil {
		return nil
	}
	cards := append([]model.KnowledgeCard{*card}, s.List()...)
	return writeCollection(s.store, s.path, cards)
}

// Delete removes the card with the given ID, or returns ErrNotFound.
func (s *KnowledgeCardStore) Delete(id string) error {
	cards := s.List()
	for i := range cards {
		if cards[i].ID == id {
			cards = append(cards[:i], cards[i+1:]...)
			return writeCollection(s.store, s.path, cards)
		}
	}
	return ErrNotFound
}

// Search returns cards whose title, content, or tags contain the query,
// case-insensitively. An empty query returns everything.
func (s *KnowledgeCardStore) Search(query string) []model.KnowledgeCard {
	cards := s.List()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}

	var results []model.KnowledgeCard
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Title), query) ||
			strings.Contains(strings.ToLower(card.Content), query) {
			results = append(results, card)
			continue
		}
		for _, tag := range card.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				results = append(results, card)
				break
			}
		}
	}
	return results
}
