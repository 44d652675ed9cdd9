// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and implements the
// non-interactive commands. Running with no command starts the TUI.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdHistory
	CmdExport
	CmdPet
	CmdCards
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Verbose bool

	// Command-specific
	Query      string
	Subcommand string
	Format     string

	// Raw args remaining after flag and command parsing
	Raw []string
}

const usageText = `pawguide - pet care assistant for the terminal

Ask questions about feeding, grooming, health, and training, with answers
personalized to your pet's profile.

Usage:
  pawguide                      Start the chat interface (default)
  pawguide ask "question"       Ask a single question and print the answer
  pawguide history [list|show N|delete N]
                                Manage saved chats
  pawguide export [txt|md|json] Export the most recent saved chat
  pawguide pet [list|add|remove N]
                                Manage pet profiles
  pawguide cards [list|search QUERY]
                                Browse saved knowledge cards
  pawguide config [show|path]   Show configuration
  pawguide version              Show version
  pawguide help                 Show this help

Flags:
  -v, --verbose                 Verbose logging
  -V, --version                 Show version

Examples:
  pawguide ask "how often should I bathe my dog?"
  pawguide pet add --name Rex --type Dog --breed Beagle --age 3
  pawguide cards search grooming
  pawguide export md
`

// Parse reads os.Args and returns the command to run with its arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]

	var parsed Args
	remaining := make([]string, 0, len(raw))
	for _, a := range raw {
		switch a {
		case "-V", "--version":
			// Checked before the verbose flag so -V is never read as -v.
			return CmdVersion, parsed
		case "-v", "--verbose":
			parsed.Verbose = true
		default:
			remaining = append(remaining, a)
		}
	}

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		parsed.Query = strings.Join(remaining, " ")
		return CmdAsk, parsed

	case "history", "chats":
		if len(remaining) > 0 {
			parsed.Subcommand = strings.ToLower(remaining[0])
			parsed.Raw = remaining[1:]
		}
		return CmdHistory, parsed

	case "export":
		if len(remaining) > 0 {
			parsed.Format = strings.ToLower(remaining[0])
		}
		return CmdExport, parsed

	case "pet", "pets":
		if len(remaining) > 0 {
			parsed.Subcommand = strings.ToLower(remaining[0])
			parsed.Raw = remaining[1:]
		}
		return CmdPet, parsed

	case "card", "cards":
		if len(remaining) > 0 {
			parsed.Subcommand = strings.ToLower(remaining[0])
			parsed.Raw = remaining[1:]
		}
		return CmdCards, parsed

	case "config":
		if len(remaining) > 0 {
			parsed.Subcommand = strings.ToLower(remaining[0])
			parsed.Raw = remaining[1:]
		}
		return CmdConfig, parsed

	case "version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsed
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("pawguide %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
