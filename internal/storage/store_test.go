// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

func sampleHistory(id, title string) *model.ChatHistory {
	return &model.ChatHistory{
		ID:        id,
		Title:     title,
		Preview:   title + "...",
		Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Messages: []model.Message{
			{ID: id + "-m1", Role: model.RoleUser, Content: "question", Timestamp: time.Now().UTC()},
			{ID: id + "-m2", Role: model.RoleAssistant, Content: "answer", Keywords: []string{"dog"}},
		},
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Histories.Save(sampleHistory("h1", "first")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Histories.Save(sampleHistory("h2", "second")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	histories := s.Histories.List()
	if len(histories) != 2 {
		t.Fatalf("len = %d, want 2", len(histories))
	}
	if histories[0].ID != "h2" {
		t.Errorf("first listed = %q, want newest", histories[0].ID)
	}

	got, err := s.Histories.Get("h1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "first" || len(got.Messages) != 2 {
		t.Errorf("loaded history = %+v", got)
	}
	if !got.Timestamp.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v", got.Timestamp)
	}
	if got.Messages[1].Keywords[0] != "dog" {
		t.Errorf("keywords = %v", got.Messages[1].Keywords)
	}
}

func TestHistorySaveNilIsNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.Histories.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.BaseDir(), chatHistoriesFile)); !os.IsNotExist(err) {
		t.Error("saving nil must not create the collection file")
	}
}

func TestHistorySaveSameIDReplaces(t *testing.T) {
	s := newTestStore(t)
	s.Histories.Save(sampleHistory("h1", "original"))
	s.Histories.Save(sampleHistory("h1", "updated"))

	histories := s.Histories.List()
	if len(histories) != 1 {
		t.Fatalf("len = %d, want 1", len(histories))
	}
	if histories[0].Title != "updated" {
		t.Errorf("title = %q", histories[0].Title)
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < MaxHistories+5; i++ {
		s.Histories.Save(sampleHistory(fmt.Sprintf("h%d", i), "chat"))
	}

	histories := s.Histories.List()
	if len(histories) != MaxHistories {
		t.Fatalf("len = %d, want %d", len(histories), MaxHistories)
	}
	if histories[0].ID != fmt.Sprintf("h%d", MaxHistories+4) {
		t.Errorf("newest = %q", histories[0].ID)
	}
	if _, err := s.Histories.Get("h0"); err != ErrNotFound {
		t.Error("oldest history should have been dropped")
	}
}

func TestHistoryDelete(t *testing.T) {
	s := newTestStore(t)
	s.Histories.Save(sampleHistory("h1", "chat"))

	if err := s.Histories.Delete("h1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(s.Histories.List()) != 0 {
		t.Error("history still listed after delete")
	}
	if err := s.Histories.Delete("h1"); err != ErrNotFound {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), chatHistoriesFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := s.Histories.List(); len(got) != 0 {
		t.Errorf("list from corrupt file = %v, want empty", got)
	}

	// Saving afterwards recovers the collection.
	if err := s.Histories.Save(sampleHistory("h1", "chat")); err != nil {
		t.Fatalf("Save() after corruption error = %v", err)
	}
	if len(s.Histories.List()) != 1 {
		t.Error("collection did not recover after rewrite")
	}
}

func TestMalformedRecordSkipped(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), chatHistoriesFile)
	blob := `[
		{"id": "good", "title": "kept", "messages": []},
		{"id": 42, "title": ["wrong"], "timestamp": "not-a-time"},
		{"id": "also-good", "title": "kept too", "messages": []}
	]`
	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}

	histories := s.Histories.List()
	if len(histories) != 2 {
		t.Fatalf("len = %d, want the 2 decodable records", len(histories))
	}
	if histories[0].ID != "good" || histories[1].ID != "also-good" {
		t.Errorf("records = %v", histories)
	}
}

func TestCardSaveAndSearch(t *testing.T) {
	s := newTestStore(t)

	first := &model.KnowledgeCard{ID: "c1", Title: "Dog food basics", Content: "Feed twice daily.", PetType: "Dog", Tags: []string{"dog", "food"}}
	second := &model.KnowledgeCard{ID: "c2", Title: "Cat grooming", Content: "Brush weekly.", PetType: "Cat", Tags: []string{"cat", "grooming"}}
	s.Cards.Save(first)
	s.Cards.Save(second)

	cards := s.Cards.List()
	if len(cards) != 2 || cards[0].ID != "c2" {
		t.Fatalf("cards = %v, want newest first", cards)
	}

	if got := s.Cards.Search("FOOD"); len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("Search(FOOD) = %v", got)
	}
	if got := s.Cards.Search("grooming"); len(got) != 1 || got[0].ID != "c2" {
		t.Errorf("Search(grooming) = %v", got)
	}
	if got := s.Cards.Search(""); len(got) != 2 {
		t.Errorf("Search(empty) = %d cards, want all", len(got))
	}

	if err := s.Cards.Delete("c1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Cards.Delete("c1"); err != ErrNotFound {
		t.Errorf("second delete error = %v", err)
	}
}

func TestProfileUpsert(t *testing.T) {
	s := newTestStore(t)

	rex := &model.PetProfile{ID: "p1", Name: "Rex", Type: "Dog", Breed: "Beagle", Age: "3"}
	milo := &model.PetProfile{ID: "p2", Name: "Milo", Type: "Cat"}
	s.Profiles.Save(rex)
	s.Profiles.Save(milo)

	// Update keeps list position.
	rex.Age = "4"
	s.Profiles.Save(rex)

	profiles := s.Profiles.List()
	if len(profiles) != 2 {
		t.Fatalf("len = %d, want 2", len(profiles))
	}
	if profiles[0].ID != "p1" || profiles[0].Age != "4" {
		t.Errorf("first profile = %+v, want updated Rex in place", profiles[0])
	}

	got, err := s.Profiles.Get("p2")
	if err != nil || got.Name != "Milo" {
		t.Errorf("Get(p2) = %+v, %v", got, err)
	}

	if err := s.Profiles.Delete("p1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Profiles.Get("p1"); err != ErrNotFound {
		t.Errorf("Get after delete error = %v", err)
	}
}

func TestOversizeFileTreatedAsEmpty(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), petProfilesFile)

	big := make([]byte, MaxFileSize+1)
	big[0] = '['
	if err := os.WriteFile(path, big, 0644); err != nil {
		t.Fatal(err)
	}

	if got := s.Profiles.List(); len(got) != 0 {
		t.Errorf("list from oversize file = %d records, want 0", len(got))
	}
}
