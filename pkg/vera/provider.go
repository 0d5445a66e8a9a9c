package vera

import (
	"context"

	"github.com/verahq/verachat/pkg/transcript"
)

// Provider is the boundary to an inference backend. Implementations receive
// the full ordered transcript on every call and return one reply.
type Provider interface {
	// Name identifies the backend for logging.
	Name() string
	// Complete blocks until the backend produces a reply or fails.
	Complete(ctx context.Context, turns []transcript.Turn) (string, error)
}
