package chat

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/DSado88/Grocery/internal/pkg/common"
)

// ClaudeProvider spawns the Claude Code CLI as a subprocess and speaks
// its stream-json protocol over stdin/stdout.
type ClaudeProvider struct {
	// Binary is the executable to spawn; defaults to "claude".
	Binary string
}

// NewClaudeProvider returns a provider using the default binary name.
func NewClaudeProvider() *ClaudeProvider {
	return &ClaudeProvider{Binary: "claude"}
}

// NewSession starts a fresh assistant process.
func (p *ClaudeProvider) NewSession(ctx context.Context, opts Options) (Session, error) {
	binary := p.Binary
	if binary == "" {
		binary = "claude"
	}

	args := []string{
		"--print",
		"--input-format", "stream-json",
		"--output-format", "stream-json",
		"--verbose",
		"--permission-mode", "bypassPermissions",
	}
	if opts.AppendSystemPrompt != "" {
		args = append(args, "--append-system-prompt", opts.AppendSystemPrompt)
	}
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	if opts.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(opts.MaxTurns))
	}
	if len(opts.AllowedTools) > 0 {
		args = append(args, "--allowed-tools", strings.Join(opts.AllowedTools, ","))
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &SpawnError{Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Err: err}
	}

	session := &claudeSession{
		id:     common.GenerateUUID(),
		cmd:    cmd,
		stdin:  stdin,
		reader: bufio.NewReader(stdout),
	}
	common.LogDebug("assistant session started", zap.String("session_id", session.id))
	return session, nil
}

// claudeSession is one live subprocess conversation.
type claudeSession struct {
	id     string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	reader *bufio.Reader

	mu     sync.Mutex
	closed bool
}

// streamEvent is the subset of the stream-json protocol the CLI reads.
type streamEvent struct {
	Type    string `json:"type"`
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	DurationMS   int64   `json:"duration_ms"`
	NumTurns     int     `json:"num_turns"`
}

func (s *claudeSession) ID() string {
	return s.id
}

func (s *claudeSession) Send(ctx context.Context, message string) (<-chan Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionDead
	}

	envelope := map[string]any{
		"type": "user",
		"message": map[string]any{
			"role":    "user",
			"content": message,
		},
	}
	line, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	if _, err := s.stdin.Write(append(line, '\n')); err != nil {
		// A broken pipe means the process is gone; context is lost.
		s.markDead()
		return nil, fmt.Errorf("%w: %v", ErrSessionDead, err)
	}

	chunks := make(chan Chunk, 16)
	go s.stream(ctx, chunks)
	return chunks, nil
}

// stream reads protocol lines until the result event, forwarding text
// blocks as they arrive. EOF before a result means the session died
// mid-response.
func (s *claudeSession) stream(ctx context.Context, chunks chan<- Chunk) {
	defer close(chunks)

	for {
		if ctx.Err() != nil {
			chunks <- Chunk{Err: ctx.Err()}
			return
		}

		line, err := s.reader.ReadString('\n')
		if err != nil {
			s.mu.Lock()
			s.markDead()
			s.mu.Unlock()
			chunks <- Chunk{Err: ErrSessionDead}
			return
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			common.LogDebug("skipping malformed assistant event", zap.Error(err))
			continue
		}

		switch event.Type {
		case "assistant":
			for _, block := range event.Message.Content {
				if block.Type == "text" && block.Text != "" {
					chunks <- Chunk{Text: block.Text}
				}
			}
		case "result":
			chunks <- Chunk{
				Final:      true,
				CostUSD:    event.TotalCostUSD,
				DurationMS: event.DurationMS,
				NumTurns:   event.NumTurns,
			}
			return
		}
	}
}

// markDead flags the session unusable and reaps the process. Callers
// must hold s.mu.
func (s *claudeSession) markDead() {
	if s.closed {
		return
	}
	s.closed = true
	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	go func() { _ = s.cmd.Wait() }()
}

func (s *claudeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	go func() { _ = s.cmd.Wait() }()
	return nil
}
