package vera

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	configpkg "github.com/verahq/verachat/pkg/config"
	"github.com/verahq/verachat/pkg/persona"
	"github.com/verahq/verachat/pkg/transcript"
)

// fakeProvider records the turns it was handed and returns a canned reply.
type fakeProvider struct {
	reply string
	err   error
	seen  [][]transcript.Turn
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, turns []transcript.Turn) (string, error) {
	f.seen = append(f.seen, turns)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), configpkg.Config{Backend: "mystery"})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	var fatalErr *FatalError
	if !errors.As(err, &fatalErr) {
		t.Fatalf("expected *FatalError, got %T: %v", err, err)
	}
}

func TestNewRequiresCredentialsForOpenAIBackend(t *testing.T) {
	_, err := New(context.Background(), configpkg.Config{Backend: configpkg.BackendOpenAI})
	if err == nil {
		t.Fatal("expected error without api key or base url")
	}
}

func TestNewWithProviderSkipsBackendConstruction(t *testing.T) {
	v, err := New(context.Background(), configpkg.Config{Backend: "mystery"}, WithProvider(&fakeProvider{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v.BaseSystemPrompt() != persona.DefaultSystemPrompt {
		t.Fatalf("unexpected system prompt: %q", v.BaseSystemPrompt())
	}
}

func TestNewLoadsPersonasFromModelPath(t *testing.T) {
	dir := t.TempDir()
	personaPath := filepath.Join(dir, "PERSONA.md")
	content := "---\nname: terse\n---\nKeep every answer under two sentences."
	if err := os.WriteFile(personaPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write persona: %v", err)
	}

	v, err := New(context.Background(), configpkg.Config{ModelPath: dir}, WithProvider(&fakeProvider{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.Contains(v.BaseSystemPrompt(), "Keep every answer under two sentences.") {
		t.Fatalf("persona instruction missing from prompt:\n%s", v.BaseSystemPrompt())
	}
}

func TestGenerateForwardsFullTranscript(t *testing.T) {
	fake := &fakeProvider{reply: "Hi there"}
	v, err := New(context.Background(), configpkg.Config{}, WithProvider(fake))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	turns := []transcript.Turn{
		{Role: transcript.RoleSystem, Content: "sys"},
		{Role: transcript.RoleUser, Content: "Hello"},
	}
	reply, err := v.Generate(context.Background(), turns)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reply != "Hi there" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if len(fake.seen) != 1 || len(fake.seen[0]) != 2 {
		t.Fatalf("provider did not see the full transcript: %+v", fake.seen)
	}
	if fake.seen[0][0].Role != transcript.RoleSystem {
		t.Fatalf("system turn not first: %+v", fake.seen[0])
	}
}

func TestGenerateClassifiesProviderErrorFatal(t *testing.T) {
	cause := errors.New("backend down")
	v, err := New(context.Background(), configpkg.Config{}, WithProvider(&fakeProvider{err: cause}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = v.Generate(context.Background(), []transcript.Turn{{Role: transcript.RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error from provider")
	}
	var fatalErr *FatalError
	if !errors.As(err, &fatalErr) {
		t.Fatalf("expected *FatalError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("fatal error does not wrap cause: %v", err)
	}
}

func TestToOpenAIMessagesPreservesOrder(t *testing.T) {
	out, err := toOpenAIMessages([]transcript.Turn{
		{Role: transcript.RoleSystem, Content: "sys"},
		{Role: transcript.RoleUser, Content: "hello"},
		{Role: transcript.RoleAssistant, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("toOpenAIMessages: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
}

func TestToOpenAIMessagesRejectsInvalidRole(t *testing.T) {
	_, err := toOpenAIMessages([]transcript.Turn{{Role: "tool", Content: "bad"}})
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestToOllamaMessagesMapsRoles(t *testing.T) {
	out := toOllamaMessages([]transcript.Turn{
		{Role: transcript.RoleSystem, Content: "sys"},
		{Role: transcript.RoleUser, Content: "hello"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].Role != "system" || out[1].Role != "user" {
		t.Fatalf("unexpected roles: %+v", out)
	}
}
