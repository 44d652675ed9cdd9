// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// TextExporter renders the transcript as plain text, one block per message:
//
//	[2025-06-01 10:30:00] You: How often should I feed a puppy?
//
//	[2025-06-01 10:30:02] PawGuide: Three to four small meals a day.
//
// The bracketed timestamp, display names, and blank-line separation match
// the transcripts earlier releases produced.
type TextExporter struct{}

// NewTextExporter creates a plain-text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export implements Exporter.
func (e *TextExporter) Export(msgs []*model.Message) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("conversation has no messages to export")
	}

	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		blocks = append(blocks, fmt.Sprintf("[%s] %s: %s",
			m.Timestamp.Format(timestampLayout), m.Role.DisplayName(), m.Content))
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

// FileExtension implements Exporter.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}
