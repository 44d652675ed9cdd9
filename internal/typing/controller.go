// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package typing plays back a finished reply one chunk at a time, so the
// interface shows text appearing progressively instead of all at once.
// Playback is cosmetic: the full reply already exists when it starts, and
// skipping simply jumps to the end.
package typing

import (
	"strings"
	"sync"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/segment"
)

// DefaultInterval is the delay between revealed chunks.
const DefaultInterval = 30 * time.Millisecond

// Event is one playback step. Intermediate events carry the accumulated
// buffer; the final event has Done set with the complete content and its
// keyword tags.
type Event struct {
	Generation int
	Buffer     string
	Done       bool
	Content    string
	Keywords   []string
}

// Controller schedules playback on a background goroutine and reports steps
// through a notify callback. Starting a new playback cancels the previous
// one; events from a cancelled run are never delivered.
type Controller struct {
	interval time.Duration
	unitSize int
	notify   func(Event)

	mu         sync.Mutex
	generation int
	stop       chan struct{}
	content    string
	keywords   []string
}

// NewController creates a controller delivering events to notify. Zero
// values select DefaultInterval and the segmenter's default unit size. The
// callback runs on the playback goroutine; with a terminal program, route
// events through its message loop rather than mutating state directly.
func NewController(interval time.Duration, unitSize int, notify func(Event)) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if unitSize <= 0 {
		unitSize = segment.DefaultUnitSize
	}
	return &Controller{
		interval: interval,
		unitSize: unitSize,
		notify:   notify,
	}
}

// Start begins playback of content, cancelling any run in progress. Empty
// content completes immediately with a single Done event.
func (c *Controller) Start(content string, keywords []string) {
	c.mu.Lock()
	c.cancelLocked()
	c.generation++
	gen := c.generation
	c.content = content
	c.keywords = keywords

	if content == "" {
		c.mu.Unlock()
		c.notify(Event{Generation: gen, Done: true, Keywords: keywords})
		return
	}

	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.run(gen, content, keywords, stop)
}

// Skip abandons the current run and delivers its final event immediately.
// No-op when nothing is playing.
func (c *Controller) Skip() {
	c.mu.Lock()
	if c.stop == nil {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.generation++
	ev := Event{
		Generation: c.generation,
		Buffer:     c.content,
		Done:       true,
		Content:    c.content,
		Keywords:   c.keywords,
	}
	c.mu.Unlock()
	c.notify(ev)
}

// Cancel stops the current run without delivering a final event. Used when
// the pending reply itself is being discarded.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.cancelLocked()
	c.generation++
	c.mu.Unlock()
}

// Active reports whether a playback goroutine is running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// cancelLocked closes the current run's stop channel. Caller holds c.mu.
func (c *Controller) cancelLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// run reveals chunks on a ticker until the content is exhausted or the run
// is cancelled.
func (c *Controller) run(gen int, content string, keywords []string, stop chan struct{}) {
	chunks := segment.Split(content, c.unitSize)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	var buf strings.Builder
	for _, chunk := range chunks {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		buf.WriteString(chunk)
		if !c.emit(Event{Generation: gen, Buffer: buf.String()}, gen) {
			return
		}
	}

	c.mu.Lock()
	if gen == c.generation {
		c.stop = nil
	}
	c.mu.Unlock()
	c.emit(Event{
		Generation: gen,
		Buffer:     content,
		Done:       true,
		Content:    content,
		Keywords:   keywords,
	}, gen)
}

// emit delivers an event unless the run has been superseded.
func (c *Controller) emit(ev Event, gen int) bool {
	c.mu.Lock()
	current := gen == c.generation
	c.mu.Unlock()
	if !current {
		return false
	}
	c.notify(ev)
	return true
}
