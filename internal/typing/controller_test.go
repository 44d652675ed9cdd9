// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package typing

import (
	"sync"
	"testing"
	"time"
)

// recorder collects events and signals when a Done event arrives.
type recorder struct {
	mu     sync.Mutex
	events []Event
	done   chan Event
}

func newRecorder() *recorder {
	return &recorder{done: make(chan Event, 4)}
}

func (r *recorder) notify(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	if ev.Done {
		r.done <- ev
	}
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func waitDone(t *testing.T, r *recorder) Event {
	t.Helper()
	select {
	case ev := <-r.done:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for playback to finish")
		return Event{}
	}
}

func TestPlaybackRevealsProgressively(t *testing.T) {
	r := newRecorder()
	c := NewController(time.Millisecond, 3, r.notify)

	c.Start("abcdefgh", []string{"dog"})
	final := waitDone(t, r)

	if final.Content != "abcdefgh" {
		t.Errorf("final content = %q", final.Content)
	}
	if len(final.Keywords) != 1 || final.Keywords[0] != "dog" {
		t.Errorf("final keywords = %v", final.Keywords)
	}

	events := r.all()
	if len(events) < 3 {
		t.Fatalf("events = %d, want at least the 3 chunk steps", len(events))
	}
	var prev string
	for _, ev := range events {
		if len(ev.Buffer) < len(prev) {
			t.Errorf("buffer shrank: %q after %q", ev.Buffer, prev)
		}
		prev = ev.Buffer
	}
	if events[len(events)-1].Buffer != "abcdefgh" {
		t.Errorf("last buffer = %q", events[len(events)-1].Buffer)
	}
}

func TestEmptyContentFinishesImmediately(t *testing.T) {
	r := newRecorder()
	c := NewController(time.Hour, 3, r.notify)

	c.Start("", nil)
	final := waitDone(t, r)
	if !final.Done || final.Content != "" {
		t.Errorf("final = %+v", final)
	}
	if c.Active() {
		t.Error("controller still active after empty playback")
	}
}

func TestSkipDeliversFullContent(t *testing.T) {
	r := newRecorder()
	// Long interval: playback would take minutes without the skip.
	c := NewController(time.Minute, 1, r.notify)

	c.Start("slow reveal text", []string{"pet"})
	c.Skip()

	final := waitDone(t, r)
	if final.Content != "slow reveal text" {
		t.Errorf("final content = %q", final.Content)
	}
	if c.Active() {
		t.Error("controller still active after skip")
	}
}

func TestSkipWithoutRunIsNoOp(t *testing.T) {
	r := newRecorder()
	c := NewController(time.Millisecond, 3, r.notify)
	c.Skip()
	if got := len(r.all()); got != 0 {
		t.Errorf("events = %d, want 0", got)
	}
}

func TestStartCancelsPreviousRun(t *testing.T) {
	r := newRecorder()
	c := NewController(time.Millisecond, 2, r.notify)

	c.Start("first reply that keeps going", nil)
	c.Start("second", nil)
	final := waitDone(t, r)

	if final.Content != "second" {
		t.Errorf("final content = %q, want the newer playback", final.Content)
	}

	// No event from the first run may arrive after the second started.
	gen := final.Generation
	for _, ev := range r.all() {
		if ev.Generation == gen && ev.Buffer != "" && len(ev.Buffer) > len("second") {
			t.Errorf("stale buffer %q delivered under generation %d", ev.Buffer, gen)
		}
	}
}

func TestCancelSuppressesFinalEvent(t *testing.T) {
	r := newRecorder()
	c := NewController(time.Millisecond, 1, r.notify)

	c.Start("some text", nil)
	c.Cancel()

	select {
	case ev := <-r.done:
		t.Errorf("unexpected final event after cancel: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
	if c.Active() {
		t.Error("controller still active after cancel")
	}
}
