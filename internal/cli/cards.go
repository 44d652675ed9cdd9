// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/util"
)

// HandleCards lists or searches saved knowledge cards.
func HandleCards(args Args) error {
	env, err := Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	var cards []model.KnowledgeCard
	switch args.Subcommand {
	case "", "list":
		cards = env.Store.Cards.List()
	case "search":
		if len(args.Raw) == 0 {
			return fmt.Errorf("usage: pawguide cards search QUERY")
		}
		cards = env.Store.Cards.Search(strings.Join(args.Raw, " "))
	default:
		return fmt.Errorf("unknown cards subcommand %q (use list or search)", args.Subcommand)
	}

	if len(cards) == 0 {
		fmt.Println("No knowledge cards found.")
		return nil
	}
	for i, c := range cards {
		line := fmt.Sprintf("%2d. %s", i+1, c.Title)
		if c.PetType != "" {
			line += "  [" + c.PetType + "]"
		}
		if len(c.Tags) > 0 {
			line += "  #" + strings.Join(c.Tags, " #")
		}
		fmt.Println(line)
		fmt.Println("    " + util.TruncateWidth(util.Flatten(c.Content), 70))
	}
	return nil
}
