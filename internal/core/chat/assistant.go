package chat

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/DSado88/Grocery/internal/pkg/common"
)

// Assistant wraps a Session with death recovery: when a send hits a
// dead session, it spawns a fresh one from the Provider, notifies the
// caller, and expects the user to resend. Conversation context does not
// survive a respawn, so the message is never silently replayed.
type Assistant struct {
	provider Provider
	opts     Options
	session  Session

	// OnRespawn is invoked after a dead session has been replaced, so
	// the caller can show a resend notice.
	OnRespawn func()
}

// NewAssistant creates an assistant with a warm session.
func NewAssistant(ctx context.Context, provider Provider, opts Options) (*Assistant, error) {
	session, err := provider.NewSession(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Assistant{provider: provider, opts: opts, session: session}, nil
}

// Send delivers a message on the current session. On a dead session it
// respawns once and returns ErrSessionDead so the caller can prompt the
// user to resend into the fresh session.
func (a *Assistant) Send(ctx context.Context, message string) (<-chan Chunk, error) {
	chunks, err := a.session.Send(ctx, message)
	if err == nil {
		return chunks, nil
	}
	if !errors.Is(err, ErrSessionDead) {
		return nil, err
	}

	common.LogWarn("assistant session died, respawning",
		zap.String("session_id", a.session.ID()),
	)
	if err := a.respawn(ctx); err != nil {
		return nil, err
	}
	if a.OnRespawn != nil {
		a.OnRespawn()
	}
	return nil, ErrSessionDead
}

// RecoverStream handles a mid-response death reported on the chunk
// stream: respawns the session and notifies. Returns the respawn error,
// if any.
func (a *Assistant) RecoverStream(ctx context.Context) error {
	common.LogWarn("assistant session died mid-response, respawning",
		zap.String("session_id", a.session.ID()),
	)
	if err := a.respawn(ctx); err != nil {
		return err
	}
	if a.OnRespawn != nil {
		a.OnRespawn()
	}
	return nil
}

func (a *Assistant) respawn(ctx context.Context) error {
	_ = a.session.Close()
	session, err := a.provider.NewSession(ctx, a.opts)
	if err != nil {
		return err
	}
	a.session = session
	return nil
}

// Close shuts down the current session.
func (a *Assistant) Close() error {
	return a.session.Close()
}
