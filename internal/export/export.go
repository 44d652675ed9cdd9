// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the current conversation to a file. The plain-text
// format reproduces the transcript layout users already share from earlier
// releases; Markdown and JSON are offered alongside it.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// timestampLayout formats the per-message timestamp in text transcripts.
const timestampLayout = "2006-01-02 15:04:05"

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a message list to a target format.
type Exporter interface {
	// Export renders the messages and returns the file content.
	Export(msgs []*model.Message) ([]byte, error)

	// FileExtension returns the extension including the dot (e.g. ".txt").
	FileExtension() string
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteToFile renders the messages and writes them under dir as
// pawguide-chat-<date><ext>, returning the full path. Messages still being
// revealed are dropped: a transcript only carries finished turns.
func WriteToFile(msgs []*model.Message, exporter Exporter, dir string) (string, error) {
	content, err := exporter.Export(finished(msgs))
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	name := "pawguide-chat-" + time.Now().Format("2006-01-02") + exporter.FileExtension()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// finished filters out revealing placeholders and empty messages.
func finished(msgs []*model.Message) []*model.Message {
	out := make([]*model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.IsRevealing || m.IsEmpty() {
			continue
		}
		out = append(out, m)
	}
	return out
}
