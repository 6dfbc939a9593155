// Package chat is the boundary to the external conversational
// assistant. The core contract is small: send a message, receive a
// stream of response chunks, or a dead-session signal that requires a
// fresh session before the message can be resent.
package chat

import (
	"context"
	"errors"
	"fmt"
)

// ErrSessionDead signals that the underlying assistant session is gone.
// The message that hit it was not delivered; callers must obtain a
// fresh session and resend.
var ErrSessionDead = errors.New("assistant session died")

// SpawnError wraps a failure to start the external assistant process.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start assistant process: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Chunk is one streamed piece of an assistant response. Final chunks
// may carry cost/duration/turn metadata; a non-nil Err terminates the
// stream.
type Chunk struct {
	Text       string
	Final      bool
	CostUSD    float64
	DurationMS int64
	NumTurns   int
	Err        error
}

// Options configure a new assistant session.
type Options struct {
	// AppendSystemPrompt is extra context appended to the assistant's
	// system prompt (the household context block).
	AppendSystemPrompt string
	// Model overrides the assistant's default model when non-empty.
	Model string
	// MaxTurns caps agentic turns per request.
	MaxTurns int
	// AllowedTools restricts which tools the assistant may use.
	AllowedTools []string
}

// Session is one live conversation with the assistant.
type Session interface {
	// Send delivers a user message and returns the response chunk
	// stream. Returns ErrSessionDead (possibly wrapped) when the
	// session is no longer usable; the stream itself may also end with
	// a Chunk whose Err is ErrSessionDead.
	Send(ctx context.Context, message string) (<-chan Chunk, error)

	// ID identifies the session for logging.
	ID() string

	// Close releases the session's resources.
	Close() error
}

// Provider creates fresh sessions, used both at startup and when a
// dead session must be respawned.
type Provider interface {
	NewSession(ctx context.Context, opts Options) (Session, error)
}
