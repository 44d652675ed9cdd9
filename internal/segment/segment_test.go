// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package segment

import (
	"strings"
	"testing"
)

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

func TestSplit_RoundTrip(t *testing.T) {
	inputs := []struct {
		name string
		text string
	}{
		{"plain", "the quick brown fox jumps over the lazy dog"},
		{"heading", "## Feeding Schedule\nTwice a day works for most dogs."},
		{"list", "- fresh water\n- daily walks\n- vet visits"},
		{"ordered list", "1. brush\n2. rinse\n3. dry"},
		{"blockquote", "> older cats sleep more\nthat is normal"},
		{"code fence", "```\nkibble := 200\n```\ndone"},
		{"table", "| food | amount |\n| --- | --- |\n| kibble | 200g |"},
		{"horizontal rule", "before\n---\nafter"},
		{"unicode", "犬はかわいい。Dogs are 可愛い!"},
		{"mixed", "## Tips\nSome intro text here.\n- one\n- two\n\nclosing remark"},
		{"newlines only", "\n\n\n"},
		{"single char", "x"},
	}

	for _, tt := range inputs {
		for _, unit := range []int{1, 2, 3, 5, 100} {
			chunks := Split(tt.text, unit)
			if got := strings.Join(chunks, ""); got != tt.text {
				t.Errorf("%s (unit=%d): round-trip mismatch\n got: %q\nwant: %q", tt.name, unit, got, tt.text)
			}
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	if chunks := Split("", 3); chunks != nil {
		t.Errorf("Split(\"\") = %v, want nil", chunks)
	}
}

func TestSplit_UnitSizeClamped(t *testing.T) {
	chunks := Split("abcdef", 0)
	if got := strings.Join(chunks, ""); got != "abcdef" {
		t.Errorf("round-trip with unitSize 0 failed: %q", got)
	}
	for _, c := range chunks {
		if len(c) != 1 {
			t.Errorf("clamped chunk = %q, want single char", c)
		}
	}
}

// =============================================================================
// STRUCTURAL INTEGRITY TESTS
// =============================================================================

func TestSplit_TipsScenario(t *testing.T) {
	// The heading line and each list-item line must come out as single,
	// unsplit chunks even with a tiny unit size.
	text := "## Tips\n- drink water\n- exercise"
	chunks := Split(text, 3)

	want := []string{"## Tips", "\n- drink water", "\n- exercise"}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %q, want %q", chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_CodeFenceIsOneChunk(t *testing.T) {
	fence := "```go\nfor range dogs {\n\tfeed()\n}\n```"
	chunks := Split(fence, 2)

	if len(chunks) != 1 {
		t.Fatalf("fence split into %d chunks: %q", len(chunks), chunks)
	}
	if chunks[0] != fence {
		t.Errorf("fence chunk = %q, want full fence", chunks[0])
	}
}

func TestSplit_TableRowIsOneChunk(t *testing.T) {
	chunks := Split("| a | b |", 2)
	if len(chunks) != 1 || chunks[0] != "| a | b |" {
		t.Errorf("table row chunks = %q, want one chunk", chunks)
	}
}

func TestSplit_HeadingNotSubdivided(t *testing.T) {
	chunks := Split("# A very long heading line", 1)
	if len(chunks) != 1 {
		t.Errorf("heading split into %d chunks: %q", len(chunks), chunks)
	}
}

func TestSplit_HorizontalRule(t *testing.T) {
	chunks := Split("---", 1)
	if len(chunks) != 1 || chunks[0] != "---" {
		t.Errorf("hr chunks = %q, want [\"---\"]", chunks)
	}
}

func TestSplit_UnterminatedFenceFallsBackToPlain(t *testing.T) {
	text := "```\nnever closed"
	chunks := Split(text, 4)
	if got := strings.Join(chunks, ""); got != text {
		t.Errorf("round-trip failed: %q", got)
	}
	if len(chunks) < 2 {
		t.Errorf("unterminated fence should chunk as plain text, got %q", chunks)
	}
}

func TestSplit_PlainRunsRespectUnitSize(t *testing.T) {
	chunks := Split("abcdefgh", 3)
	want := []string{"abc", "def", "gh"}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %q, want %q", chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_DoesNotCutUTF8Sequences(t *testing.T) {
	chunks := Split("日本語のテキストです", 2)
	for _, c := range chunks {
		for _, r := range c {
			if r == '�' {
				t.Errorf("chunk %q contains replacement rune: UTF-8 sequence was cut", c)
			}
		}
	}
}
