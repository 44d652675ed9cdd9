// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/config"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/logging"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/storage"
)

// Env bundles the wired dependencies every command needs.
type Env struct {
	Config *config.Config
	Log    *zap.Logger
	Store  *storage.Store
	Client *assistant.Client
}

// Setup loads configuration and opens the shared dependencies.
func Setup(verbose bool) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(dataDir, verbose || cfg.Logging.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	store, err := storage.NewStore(dataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	client := assistant.NewClient(
		cfg.Assistant.PrimaryURL,
		cfg.Assistant.FallbackURL,
		time.Duration(cfg.Assistant.TimeoutSecs)*time.Second,
		log,
	)

	return &Env{Config: cfg, Log: log, Store: store, Client: client}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Log.Sync()
}
