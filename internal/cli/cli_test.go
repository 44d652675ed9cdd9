// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"pawguide"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, args := parseArgs(t)
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
	if args.Verbose {
		t.Error("verbose should default to false")
	}
}

func TestParseVerboseFlag(t *testing.T) {
	cmd, args := parseArgs(t, "--verbose")
	if cmd != CmdTUI || !args.Verbose {
		t.Errorf("cmd = %v, verbose = %v", cmd, args.Verbose)
	}
}

func TestParseUpperVIsVersionNotVerbose(t *testing.T) {
	cmd, args := parseArgs(t, "-V")
	if cmd != CmdVersion {
		t.Errorf("cmd = %v, want CmdVersion", cmd)
	}
	if args.Verbose {
		t.Error("-V must not be read as the verbose flag")
	}
}

func TestParseAskJoinsQuery(t *testing.T) {
	cmd, args := parseArgs(t, "ask", "how", "much", "food?")
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Query != "how much food?" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseSubcommands(t *testing.T) {
	tests := []struct {
		argv    []string
		cmd     Command
		sub     string
		rawLen  int
	}{
		{[]string{"history"}, CmdHistory, "", 0},
		{[]string{"history", "show", "2"}, CmdHistory, "show", 1},
		{[]string{"chats", "delete", "1"}, CmdHistory, "delete", 1},
		{[]string{"pet", "add", "--name", "Rex"}, CmdPet, "add", 2},
		{[]string{"cards", "search", "grooming"}, CmdCards, "search", 1},
		{[]string{"config", "path"}, CmdConfig, "path", 0},
		{[]string{"version"}, CmdVersion, "", 0},
		{[]string{"-V"}, CmdVersion, "", 0},
		{[]string{"--version"}, CmdVersion, "", 0},
		{[]string{"help"}, CmdHelp, "", 0},
		{[]string{"bogus"}, CmdHelp, "", 0},
	}

	for _, tt := range tests {
		cmd, args := parseArgs(t, tt.argv...)
		if cmd != tt.cmd {
			t.Errorf("%v: cmd = %v, want %v", tt.argv, cmd, tt.cmd)
		}
		if args.Subcommand != tt.sub {
			t.Errorf("%v: subcommand = %q, want %q", tt.argv, args.Subcommand, tt.sub)
		}
		if len(args.Raw) != tt.rawLen {
			t.Errorf("%v: raw = %v, want %d args", tt.argv, args.Raw, tt.rawLen)
		}
	}
}

func TestParseExportFormat(t *testing.T) {
	cmd, args := parseArgs(t, "export", "md")
	if cmd != CmdExport || args.Format != "md" {
		t.Errorf("cmd = %v, format = %q", cmd, args.Format)
	}
}
