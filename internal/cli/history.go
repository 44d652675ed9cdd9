// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/export"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/util"
)

// HandleHistory lists, shows, or deletes saved chats. Indexes are 1-based
// as printed by the list, newest first.
func HandleHistory(args Args) error {
	env, err := Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	switch args.Subcommand {
	case "", "list":
		return listHistories(env)
	case "show":
		h, err := historyByIndex(env, args.Raw)
		if err != nil {
			return err
		}
		return printTranscript(h)
	case "delete", "rm":
		h, err := historyByIndex(env, args.Raw)
		if err != nil {
			return err
		}
		if err := env.Store.Histories.Delete(h.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted \"%s\"\n", h.Title)
		return nil
	default:
		return fmt.Errorf("unknown history subcommand %q (use list, show, or delete)", args.Subcommand)
	}
}

func listHistories(env *Env) error {
	histories := env.Store.Histories.List()
	if len(histories) == 0 {
		fmt.Println("No saved chats yet.")
		return nil
	}
	for i, h := range histories {
		line := fmt.Sprintf("%2d. %s  %s", i+1, h.Timestamp.Format("2006-01-02"), h.Title)
		if h.PetContext != "" {
			line += "  [" + h.PetContext + "]"
		}
		fmt.Println(line)
		fmt.Println("    " + util.TruncateWidth(h.Preview, 70))
	}
	return nil
}

func historyByIndex(env *Env, raw []string) (*model.ChatHistory, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("a chat number is required (see: pawguide history list)")
	}
	n, err := strconv.Atoi(raw[0])
	if err != nil {
		return nil, fmt.Errorf("invalid chat number %q", raw[0])
	}
	histories := env.Store.Histories.List()
	if n < 1 || n > len(histories) {
		return nil, fmt.Errorf("chat number %d out of range (1-%d)", n, len(histories))
	}
	return &histories[n-1], nil
}

func printTranscript(h *model.ChatHistory) error {
	msgs := make([]*model.Message, 0, len(h.Messages))
	for i := range h.Messages {
		msgs = append(msgs, &h.Messages[i])
	}
	content, err := export.NewTextExporter().Export(msgs)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n%s", h.Title, content)
	return nil
}

// HandleExport writes the most recent saved chat to a file in the export
// directory. The format is txt (default), md, or json.
func HandleExport(args Args) error {
	env, err := Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	var exporter export.Exporter
	switch args.Format {
	case "", "txt", "text":
		exporter = export.NewTextExporter()
	case "md", "markdown":
		exporter = export.NewMarkdownExporter()
	case "json":
		exporter = export.NewJSONExporter()
	default:
		return fmt.Errorf("unknown export format %q (use txt, md, or json)", args.Format)
	}

	histories := env.Store.Histories.List()
	if len(histories) == 0 {
		return fmt.Errorf("no saved chats to export")
	}
	h := histories[0]

	msgs := make([]*model.Message, 0, len(h.Messages))
	for i := range h.Messages {
		msgs = append(msgs, &h.Messages[i])
	}
	path, err := export.WriteToFile(msgs, exporter, env.Config.ResolveExportDir())
	if err != nil {
		return err
	}
	fmt.Println("Exported to " + path)
	return nil
}
