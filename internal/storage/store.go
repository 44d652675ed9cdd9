// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chat histories, knowledge cards, and pet
// profiles as JSON collection files under the data directory. Each
// collection lives in its own file. Reads are forgiving: a missing file is
// an empty collection, an unreadable file degrades to empty, and a single
// malformed record is skipped rather than poisoning the rest.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/util"
)

// Collection file names. The pawguide- prefix matches the record sets
// written by earlier releases, so existing exports stay recognizable.
const (
	chatHistoriesFile  = "pawguide-chat-histories.json"
	knowledgeCardsFile = "pawguide-knowledge-cards.json"
	petProfilesFile    = "pawguide-pet-profiles.json"
)

// MaxFileSize caps how large a collection file may grow before reads treat
// it as corrupt.
const MaxFileSize = 5 * 1024 * 1024

// ErrNotFound is returned when a record ID does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Store provides access to the three collection repositories rooted at one
// data directory.
type Store struct {
	baseDir string
	log     *zap.Logger

	Histories *ChatHistoryStore
	Cards     *KnowledgeCardStore
	Profiles  *PetProfileStore
}

// NewStore creates the data directory if needed and opens the collections.
func NewStore(baseDir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	s := &Store{baseDir: baseDir, log: log}
	s.Histories = &ChatHistoryStore{store: s, path: filepath.Join(baseDir, chatHistoriesFile)}
	s.Cards = &KnowledgeCardStore{store: s, path: filepath.Join(baseDir, knowledgeCardsFile)}
	s.Profiles = &PetProfileStore{store: s, path: filepath.Join(baseDir, petProfilesFile)}
	return s, nil
}

// BaseDir returns the data directory path.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// =============================================================================
// COLLECTION FILE I/O
// =============================================================================

// readCollection loads a collection file into a slice of T. Failures never
// surface as errors: persistence trouble must not block the conversation,
// so a bad file degrades to an empty collection and a bad record is
// dropped, both with a logged warning.
func readCollection[T any](s *Store, path string) []T {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to stat collection", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	if info.Size() > MaxFileSize {
		s.log.Warn("collection file exceeds size cap, treating as empty",
			zap.String("path", path), zap.Int64("size", info.Size()))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("failed to read collection", zap.String("path", path), zap.Error(err))
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("collection file is not a JSON array, treating as empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		var rec T
		if err := json.Unmarshal(r, &rec); err != nil {
			s.log.Warn("skipping malformed record",
				zap.String("path", path), zap.Int("index", i), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records
}

// writeCollection marshals the slice and writes it atomically, so a crash
// mid-write never leaves a truncated file behind.
func writeCollection[T any](s *Store, path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, data, 0644)
}
