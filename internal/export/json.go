// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// JSONExporter renders the transcript as a JSON document with a small
// envelope, suitable for re-import or tooling.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type jsonEnvelope struct {
	ExportedAt time.Time       `json:"exportedAt"`
	Messages   []model.Message `json:"messages"`
}

// Export implements Exporter.
func (e *JSONExporter) Export(msgs []*model.Message) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("conversation has no messages to export")
	}

	env := jsonEnvelope{ExportedAt: time.Now(), Messages: make([]model.Message, 0, len(msgs))}
	for _, m := range msgs {
		env.Messages = append(env.Messages, *m.Clone())
	}
	return json.MarshalIndent(env, "", "  ")
}

// FileExtension implements Exporter.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
