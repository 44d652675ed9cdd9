// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the PawGuide client:
// crash-safe file writes and rune/width aware string truncation.
package util
