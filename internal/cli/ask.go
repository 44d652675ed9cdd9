// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/keywords"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// HandleAsk sends a single question and prints the answer. The first saved
// pet profile, if any, provides the pet context.
func HandleAsk(args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return fmt.Errorf("usage: pawguide ask \"question\"")
	}

	env, err := Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	var pet *assistant.PetContext
	if profiles := env.Store.Profiles.List(); len(profiles) > 0 {
		pet = profiles[0].ToContext()
	}

	messages := []assistant.ChatMessage{
		{Role: model.RoleUser.String(), Content: query},
	}
	reply, err := env.Client.Chat(context.Background(), messages, pet)
	if err != nil {
		return fmt.Errorf("could not reach the pet assistant: %w", err)
	}

	fmt.Println(reply)
	if tags := keywords.Extract(reply); len(tags) > 0 {
		fmt.Println("\nTopics: " + strings.Join(tags, ", "))
	}
	return nil
}
