package vera

import loggerpkg "github.com/verahq/verachat/pkg/logger"

// Option configures optional dependencies for the wrapper.
type Option func(*deps)

type deps struct {
	logger   loggerpkg.Logger
	provider Provider
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		d.logger = l
	}
}

// WithProvider bypasses backend construction with a ready provider. Used by
// tests to stand in for real inference.
func WithProvider(p Provider) Option {
	return func(d *deps) {
		d.provider = p
	}
}
