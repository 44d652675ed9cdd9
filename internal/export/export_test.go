// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

func sampleMessages() []*model.Message {
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	user := &model.Message{ID: "m1", Role: model.RoleUser, Content: "How often should I feed a puppy?", Timestamp: ts}
	reply := &model.Message{ID: "m2", Role: model.RoleAssistant, Content: "Three to four small meals a day.", Timestamp: ts.Add(2 * time.Second)}
	return []*model.Message{user, reply}
}

func TestTextExportFormat(t *testing.T) {
	content, err := NewTextExporter().Export(sampleMessages())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "[2025-06-01 10:30:00] You: How often should I feed a puppy?\n\n" +
		"[2025-06-01 10:30:02] PawGuide: Three to four small meals a day.\n"
	if string(content) != want {
		t.Errorf("transcript = %q, want %q", content, want)
	}
}

func TestTextExportEmpty(t *testing.T) {
	if _, err := NewTextExporter().Export(nil); err == nil {
		t.Error("Export() of no messages should fail")
	}
}

func TestMarkdownExportQuotesUserTurns(t *testing.T) {
	msgs := sampleMessages()
	msgs[0].Content = "line one\nline two"

	content, err := NewMarkdownExporter().Export(msgs)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	text := string(content)

	if !strings.HasPrefix(text, "# PawGuide Chat\n") {
		t.Error("missing document title")
	}
	if !strings.Contains(text, "> line one\n> line two\n") {
		t.Errorf("user turn not quoted:\n%s", text)
	}
	if !strings.Contains(text, "Three to four small meals a day.") {
		t.Error("assistant reply missing")
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	content, err := NewJSONExporter().Export(sampleMessages())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var env struct {
		ExportedAt time.Time       `json:"exportedAt"`
		Messages   []model.Message `json:"messages"`
	}
	if err := json.Unmarshal(content, &env); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(env.Messages) != 2 || env.Messages[1].Role != model.RoleAssistant {
		t.Errorf("messages = %+v", env.Messages)
	}
}

func TestWriteToFileSkipsRevealing(t *testing.T) {
	msgs := sampleMessages()
	placeholder := model.NewPlaceholderMessage()
	placeholder.Content = "partial rev"
	msgs = append(msgs, placeholder)

	dir := t.TempDir()
	path, err := WriteToFile(msgs, NewTextExporter(), dir)
	if err != nil {
		t.Fatalf("WriteToFile() error = %v", err)
	}

	wantName := "pawguide-chat-" + time.Now().Format("2006-01-02") + ".txt"
	if filepath.Base(path) != wantName {
		t.Errorf("file name = %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "partial rev") {
		t.Error("revealing placeholder leaked into the transcript")
	}
}
