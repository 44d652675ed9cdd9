// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/config"
)

// HandleConfig shows the effective configuration or the config file path.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return toml.NewEncoder(os.Stdout).Encode(cfg)

	case "path":
		path, err := config.PathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand %q (use show or path)", args.Subcommand)
	}
}
