// PawGuide - a pet care assistant for the terminal.
//
// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/cli"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/config"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/engine"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/ui/chat"
)

// Version information (set at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdAsk:
		err = cli.HandleAsk(args)
	case cli.CmdHistory:
		err = cli.HandleHistory(args)
	case cli.CmdExport:
		err = cli.HandleExport(args)
	case cli.CmdPet:
		err = cli.HandlePet(args)
	case cli.CmdCards:
		err = cli.HandleCards(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI wires the full application and runs the terminal interface.
func runTUI(args cli.Args) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the chat interface needs a terminal; try: pawguide ask \"question\"")
	}

	env, err := cli.Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.Config
	conv := model.NewConversation()

	// Playback events reach the update loop through a channel; the
	// controller's callback must never touch the model directly.
	events := make(chan typing.Event, 64)
	typist := typing.NewController(
		time.Duration(cfg.Typing.IntervalMs)*time.Millisecond,
		cfg.Typing.UnitSize,
		func(ev typing.Event) { events <- ev },
	)

	orch := engine.New(conv, env.Client, typist, env.Log)
	m := chat.New(cfg, orch, env.Store, events, env.Log)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Config file edits land in the running program as messages.
	watcher, err := config.Watch(
		func(next *config.Config) { p.Send(chat.ConfigReloadedMsg{Config: next}) },
		func(watchErr error) { p.Send(chat.ConfigReloadErrorMsg{Err: watchErr}) },
	)
	if err != nil {
		env.Log.Warn("config watching disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}
