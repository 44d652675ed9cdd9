// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package segment splits reply text into reveal chunks for the typing
// animation without breaking markdown structure.
//
// The scan walks left to right. At each offset an ordered list of structural
// patterns is tested; the first one anchored at that exact offset claims its
// entire span as a single indivisible chunk. Where nothing matches, a
// fixed-size run of plain text is emitted instead. Concatenating the chunks
// reproduces the input exactly.
package segment

import (
	"regexp"
	"unicode/utf8"
)

// DefaultUnitSize is the plain-text chunk size used by the typing animation.
const DefaultUnitSize = 3

// Structural patterns in priority order; first match wins. Every pattern
// consumes at least one character when it matches.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#+\s.*$`),       // heading line
	regexp.MustCompile(`(?m)^\s*[-*+]\s.*$`), // unordered list item
	regexp.MustCompile(`(?m)^\s*\d+\.\s.*$`), // ordered list item
	regexp.MustCompile(`(?m)^>\s.*$`),        // blockquote line
	regexp.MustCompile("(?ms)^```.*?```$"),   // fenced code block
	regexp.MustCompile(`(?ms)^\|.*?\|$`),     // table row
	regexp.MustCompile(`(?m)^---$`),          // horizontal rule
}

// Split partitions text into an ordered sequence of chunks. Structural
// markdown constructs anchored at the current offset become whole chunks;
// plain runs are emitted unitSize runes at a time (rune-based, so UTF-8
// sequences are never cut). Empty input yields nil; unitSize is clamped
// to at least 1.
func Split(text string, unitSize int) []string {
	if text == "" {
		return nil
	}
	if unitSize < 1 {
		unitSize = 1
	}

	var chunks []string
	pos := 0

	for pos < len(text) {
		rest := text[pos:]

		if end := matchAt(rest); end > 0 {
			chunks = append(chunks, rest[:end])
			pos += end
			continue
		}

		end := 0
		for count := 0; end < len(rest) && count < unitSize; count++ {
			_, size := utf8.DecodeRuneInString(rest[end:])
			end += size
		}
		chunks = append(chunks, rest[:end])
		pos += end
	}

	return chunks
}

// matchAt returns the byte length of the first structural pattern anchored
// at the start of rest, or 0 when no pattern matches there.
func matchAt(rest string) int {
	for _, re := range patterns {
		loc := re.FindStringIndex(rest)
		if loc != nil && loc[0] == 0 && loc[1] > 0 {
			return loc[1]
		}
	}
	return 0
}
