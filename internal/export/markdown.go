// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// MarkdownExporter renders the transcript as a Markdown document. Assistant
// replies are emitted verbatim since they are already Markdown; user turns
// are quoted under a bold speaker line.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export implements Exporter.
func (e *MarkdownExporter) Export(msgs []*model.Message) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("conversation has no messages to export")
	}

	var sb strings.Builder
	sb.WriteString("# PawGuide Chat\n\n")
	sb.WriteString(fmt.Sprintf("_Exported %s_\n\n", time.Now().Format("2006-01-02 15:04")))

	for _, m := range msgs {
		sb.WriteString(fmt.Sprintf("**%s** · %s\n\n",
			m.Role.DisplayName(), m.Timestamp.Format(timestampLayout)))
		if m.Role == model.RoleUser {
			for _, line := range strings.Split(m.Content, "\n") {
				sb.WriteString("> " + line + "\n")
			}
			sb.WriteString("\n")
		} else {
			sb.WriteString(m.Content + "\n\n")
		}
	}
	return []byte(sb.String()), nil
}

// FileExtension implements Exporter.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}
