// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keywords derives lightweight topic tags from message text.
//
// The vocabulary is fixed: species terms and care-topic terms. Matching is
// case-insensitive substring containment with no stemming, so "dogs" and
// "doghouse" both tag "dog". Extraction is pure and always succeeds; an
// empty result is valid.
package keywords

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// speciesTerms are the animal terms PawGuide recognizes.
var speciesTerms = []string{"dog", "cat", "fish", "bird", "rabbit", "pet", "animal"}

// careTerms are the care-topic terms PawGuide recognizes.
var careTerms = []string{"food", "health", "training", "behavior", "grooming", "toys", "treats"}

// Extract returns the vocabulary terms contained in text. The result holds
// no duplicates; order follows the fixed vocabulary (species first), which
// callers must not rely on.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	// Normalize to NFC before lowering so composed and decomposed forms of
	// the same text match identically.
	lowered := strings.ToLower(norm.NFC.String(text))

	var tags []string
	for _, term := range speciesTerms {
		if strings.Contains(lowered, term) {
			tags = append(tags, term)
		}
	}
	for _, term := range careTerms {
		if strings.Contains(lowered, term) {
			tags = append(tags, term)
		}
	}
	return tags
}

// Vocabulary returns every term the extractor knows, species terms first.
func Vocabulary() []string {
	all := make([]string, 0, len(speciesTerms)+len(careTerms))
	all = append(all, speciesTerms...)
	all = append(all, careTerms...)
	return all
}
