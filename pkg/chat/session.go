// Package chat drives a synchronous console conversation session against a
// model wrapper.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/verahq/verachat/pkg/logger"
	"github.com/verahq/verachat/pkg/transcript"
)

// Console strings are fixed; the exit word is the sole control command.
const (
	banner      = "=== VERA AI Chat ==="
	usage       = "Type 'exit' to quit."
	inputPrompt = "You: "
	replyLabel  = "VERA: "
	farewell    = "VERA: Goodbye."
	exitWord    = "exit"
)

// Generator is the model wrapper boundary the session drives. *vera.Vera
// satisfies it; tests substitute fakes.
type Generator interface {
	BaseSystemPrompt() string
	Generate(ctx context.Context, turns []transcript.Turn) (string, error)
}

// Session owns the transcript for one interactive conversation. The
// transcript lives exactly as long as the session and is never persisted.
type Session struct {
	gen        Generator
	transcript *transcript.Transcript

	logger  loggerpkg.Logger
	verbose bool
}

// Option configures optional session dependencies.
type Option func(*Session)

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithVerbose enables debug tracing of loop iterations.
func WithVerbose(verbose bool) Option {
	return func(s *Session) {
		s.verbose = verbose
	}
}

// NewSession seeds a transcript with the generator's base system prompt.
func NewSession(gen Generator, opts ...Option) (*Session, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	s := &Session{
		gen:        gen,
		transcript: transcript.New(gen.BaseSystemPrompt()),
		logger:     loggerpkg.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []transcript.Turn {
	return s.transcript.Turns()
}

// Run reads lines from in until the exit command or EOF. Each non-exit line
// is appended as a user turn, the whole transcript goes to the generator,
// and the reply is printed and appended. A generate error aborts the session
// immediately: no retry, the pending user turn stays recorded.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	_, _ = fmt.Fprintln(out, banner)
	_, _ = fmt.Fprintf(out, "%s\n\n", usage)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, inputPrompt)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, exitWord) {
			_, _ = fmt.Fprintln(out, farewell)
			return nil
		}

		// Empty input is not an error; it is forwarded like any other line.
		s.transcript.AppendUser(input)
		loggerpkg.Debug(s.verbose, s.logger, "user turn", map[string]any{
			"bytes": len(input),
			"turns": s.transcript.Len(),
		})

		reply, err := s.gen.Generate(ctx, s.transcript.Turns())
		if err != nil {
			return fmt.Errorf("generate reply: %w", err)
		}

		_, _ = fmt.Fprintf(out, "%s%s\n\n", replyLabel, reply)
		s.transcript.AppendAssistant(reply)
		loggerpkg.Debug(s.verbose, s.logger, "assistant turn", map[string]any{
			"bytes": len(reply),
			"turns": s.transcript.Len(),
		})
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
