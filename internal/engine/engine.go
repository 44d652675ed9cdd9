// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine coordinates one question-and-answer round: it records the
// user turn, holds a placeholder for the reply, calls the answering
// service, and hands the finished reply to the typing controller for
// playback.
package engine

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/assistant"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/keywords"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/typing"
)

// Fixed texts shown around connectivity trouble. The wording matches what
// users of earlier releases already know.
const (
	// ErrorReply is appended as a fresh assistant message when the request
	// fails.
	ErrorReply = "I'm having trouble connecting right now. Please check your internet connection and try again in a moment."
	// ConnectionBanner is the transient notice shown above the chat.
	ConnectionBanner = "Failed to connect to the pet assistant. Please try again later."
)

// errorKeywords tags the error reply so it renders like any other tagged
// message.
var errorKeywords = []string{"error"}

var (
	// ErrEmptyInput is returned when the submitted text is blank.
	ErrEmptyInput = errors.New("input is empty")
	// ErrBusy is returned while a previous submission is still waiting on
	// the answering service.
	ErrBusy = errors.New("a request is already in flight")
)

// ConnectivityError wraps a failed round so the interface can show the
// banner while logs keep the cause.
type ConnectivityError struct {
	Cause error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return "assistant request failed: " + e.Cause.Error()
}

// Unwrap returns the underlying failure.
func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// Client is the answering-service surface the orchestrator needs.
type Client interface {
	Chat(ctx context.Context, messages []assistant.ChatMessage, pet *assistant.PetContext) (string, error)
}

// Orchestrator drives submissions against one live conversation.
type Orchestrator struct {
	conv     *model.Conversation
	client   Client
	typist   *typing.Controller
	log      *zap.Logger
	inFlight atomic.Bool
}

// New creates an orchestrator for the given conversation.
func New(conv *model.Conversation, client Client, typist *typing.Controller, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{conv: conv, client: client, typist: typist, log: log}
}

// Conversation returns the live conversation the orchestrator drives.
func (o *Orchestrator) Conversation() *model.Conversation {
	return o.conv
}

// Round is one prepared submission: the user turn and placeholder are
// already in the conversation, the wire payload is frozen. Execute performs
// only the network call, so a terminal program can run it off the interface
// goroutine while conversation mutations stay on it.
type Round struct {
	orch     *Orchestrator
	messages []assistant.ChatMessage
	pet      *assistant.PetContext
}

// Outcome is the result of a round's network call, to be handed back to
// Complete.
type Outcome struct {
	round *Round
	reply string
	err   error
}

// Begin validates and records one user turn, appends the reply placeholder,
// and freezes the wire payload. Any reply still playing back is finished
// instantly so the new placeholder is the only revealing message. The
// orchestrator stays busy until Complete is called for the round.
func (o *Orchestrator) Begin(input string, pet *model.PetProfile) (*Round, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	o.typist.Skip()

	o.conv.AppendUser(input)
	wire := o.conv.ToChatMessages()
	o.conv.AppendPlaceholder()

	return &Round{orch: o, messages: wire, pet: pet.ToContext()}, nil
}

// Execute performs the network call. It touches no shared state and may
// run on any goroutine.
func (r *Round) Execute(ctx context.Context) *Outcome {
	reply, err := r.orch.client.Chat(ctx, r.messages, r.pet)
	return &Outcome{round: r, reply: reply, err: err}
}

// Complete applies the outcome to the conversation. On success the reply is
// handed to the typing controller and the placeholder fills in as playback
// events are applied. On failure the placeholder is removed and a fresh
// assistant message with the fixed error reply is appended in its place,
// and a ConnectivityError is returned so the caller can surface the banner.
func (o *Orchestrator) Complete(out *Outcome) error {
	defer o.inFlight.Store(false)

	if out.err != nil {
		o.log.Warn("assistant request failed", zap.Error(out.err))
		o.conv.RemovePlaceholder()
		o.conv.AppendAssistant(ErrorReply, errorKeywords)
		return &ConnectivityError{Cause: out.err}
	}

	o.log.Debug("assistant replied",
		zap.Int("turns", len(out.round.messages)),
		zap.Int("reply_len", len(out.reply)))
	o.typist.Start(out.reply, keywords.Extract(out.reply))
	return nil
}

// Send submits one user turn and blocks until the reply arrives or the
// request fails. Equivalent to Begin, Execute, Complete in sequence; only
// one submission may be in flight at a time.
func (o *Orchestrator) Send(ctx context.Context, input string, pet *model.PetProfile) error {
	round, err := o.Begin(input, pet)
	if err != nil {
		return err
	}
	return o.Complete(round.Execute(ctx))
}

// Busy reports whether a submission is waiting on the answering service.
func (o *Orchestrator) Busy() bool {
	return o.inFlight.Load()
}

// SkipPlayback finishes any reply currently being revealed.
func (o *Orchestrator) SkipPlayback() {
	o.typist.Skip()
}

// CancelPlayback stops playback without finishing the reveal. The caller
// is expected to remove the abandoned placeholder.
func (o *Orchestrator) CancelPlayback() {
	o.typist.Cancel()
}
