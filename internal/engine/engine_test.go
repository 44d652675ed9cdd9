// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
)

// fakeClient returns a canned reply or error and records what it was sent.
type fakeClient struct {
	reply    string
	err      error
	messages []assistant.ChatMessage
	pet      *assistant.PetContext
}

func (f *fakeClient) Chat(ctx context.Context, messages []assistant.ChatMessage, pet *assistant.PetContext) (string, error) {
	f.messages = messages
	f.pet = pet
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// harness wires a conversation, a fast typing controller applying events
// straight to it, and an orchestrator around a fake client.
type harness struct {
	conv *model.Conversation
	orch *Orchestrator
	done chan struct{}
}

func newHarness(client Client) *harness {
	h := &harness{conv: model.NewConversation(), done: make(chan struct{}, 4)}
	typist := typing.NewController(time.Millisecond, 3, func(ev typing.Event) {
		if ev.Done {
			h.conv.FinalizePlaceholder(ev.Content, ev.Keywords)
			h.done <- struct{}{}
			return
		}
		h.conv.Reveal(ev.Buffer)
	})
	h.orch = New(h.conv, client, typist, nil)
	return h
}

func (h *harness) waitPlayback(t *testing.T) {
	t.Helper()
	select {
	case <-h.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for playback")
	}
}

func TestSendSuccess(t *testing.T) {
	client := &fakeClient{reply: "Dogs thrive on routine feeding."}
	h := newHarness(client)
	pet := model.NewPetProfile("Rex", "Dog", "Beagle", "3", "", "")

	if err := h.orch.Send(context.Background(), "How often should I feed my dog?", pet); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	h.waitPlayback(t)

	msgs := h.conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want user turn and reply", len(msgs))
	}
	if msgs[1].Content != client.reply || msgs[1].IsRevealing {
		t.Errorf("reply = %+v", msgs[1])
	}
	if len(msgs[1].Keywords) == 0 {
		t.Error("reply keywords missing")
	}

	// The wire payload carries the user turn but not the placeholder.
	if len(client.messages) != 1 || client.messages[0].Role != "user" {
		t.Errorf("wire messages = %+v", client.messages)
	}
	if client.pet == nil || client.pet.Name != "Rex" {
		t.Errorf("wire pet context = %+v", client.pet)
	}
}

func TestSendWithoutPet(t *testing.T) {
	client := &fakeClient{reply: "General care advice."}
	h := newHarness(client)

	if err := h.orch.Send(context.Background(), "any tips?", nil); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	h.waitPlayback(t)

	if client.pet != nil {
		t.Errorf("pet context = %+v, want nil", client.pet)
	}
}

func TestSendEmptyInput(t *testing.T) {
	h := newHarness(&fakeClient{reply: "x"})

	if err := h.orch.Send(context.Background(), "   \n ", nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Send() error = %v, want ErrEmptyInput", err)
	}
	if !h.conv.IsEmpty() {
		t.Error("blank submission must not touch the conversation")
	}
}

func TestSendFailureReplacesPlaceholder(t *testing.T) {
	client := &fakeClient{err: assistant.ErrUnavailable}
	h := newHarness(client)

	round, err := h.orch.Begin("hello", nil)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	placeholderID := h.conv.LastMessage().ID

	err = h.orch.Complete(round.Execute(context.Background()))
	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("Complete() error = %v, want *ConnectivityError", err)
	}
	if !errors.Is(err, assistant.ErrUnavailable) {
		t.Errorf("cause not preserved: %v", err)
	}

	msgs := h.conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	last := msgs[1]
	if last.Content != ErrorReply {
		t.Errorf("error reply = %q", last.Content)
	}
	// The placeholder is deleted, not recycled: the error reply is a new
	// message with its own ID and failure-time timestamp.
	if last.ID == placeholderID {
		t.Error("error reply reuses the placeholder message")
	}
	if h.conv.HasRevealing() {
		t.Error("placeholder must be removed on failure")
	}
	if last.IsRevealing {
		t.Error("error reply must appear immediately, not play back")
	}
	if len(last.Keywords) != 1 || last.Keywords[0] != "error" {
		t.Errorf("error keywords = %v", last.Keywords)
	}
}

func TestTwoPhaseRound(t *testing.T) {
	client := &fakeClient{reply: "Cats groom themselves."}
	h := newHarness(client)

	round, err := h.orch.Begin("do cats need baths?", nil)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if !h.orch.Busy() {
		t.Error("orchestrator should be busy between Begin and Complete")
	}
	if _, err := h.orch.Begin("another", nil); !errors.Is(err, ErrBusy) {
		t.Errorf("second Begin() error = %v, want ErrBusy", err)
	}

	// The placeholder is already in place while the call runs.
	if !h.conv.HasRevealing() {
		t.Error("placeholder missing after Begin")
	}

	if err := h.orch.Complete(round.Execute(context.Background())); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	h.waitPlayback(t)

	if h.orch.Busy() {
		t.Error("orchestrator still busy after Complete")
	}
	if got := h.conv.LastMessage().Content; got != client.reply {
		t.Errorf("reply = %q", got)
	}
}

func TestSendSecondRoundIncludesHistory(t *testing.T) {
	client := &fakeClient{reply: "First answer."}
	h := newHarness(client)

	if err := h.orch.Send(context.Background(), "first question", nil); err != nil {
		t.Fatal(err)
	}
	h.waitPlayback(t)

	client.reply = "Second answer."
	if err := h.orch.Send(context.Background(), "second question", nil); err != nil {
		t.Fatal(err)
	}
	h.waitPlayback(t)

	// Wire payload for round two: user, assistant, user.
	if len(client.messages) != 3 {
		t.Fatalf("wire messages = %d, want 3", len(client.messages))
	}
	if client.messages[1].Role != "assistant" || client.messages[1].Content != "First answer." {
		t.Errorf("history turn = %+v", client.messages[1])
	}
}
