package engine

import "github.com/rtandon/corebuf/internal/engine/buffer"

// Default tuning values, re-exported from buffer so callers configuring
// an Engine never need to import the buffer package directly.
const (
	DefaultTabWidth   = buffer.DefaultTabWidth
	DefaultHistoryCap = buffer.DefaultHistoryCap
)

// Option configures an Engine at construction time.
type Option func(*config)

type config struct {
	content    string
	bufferOpts []buffer.Option
}

// WithContent seeds the engine with initial text instead of starting
// empty.
func WithContent(s string) Option {
	return func(c *config) {
		c.content = s
	}
}

// WithLineEnding fixes the engine's line ending instead of detecting it
// from loaded content.
func WithLineEnding(e LineEnding) Option {
	return func(c *config) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithLineEnding(e))
	}
}

// WithTabWidth sets how many visual columns a tab character advances.
func WithTabWidth(n int) Option {
	return func(c *config) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithTabWidth(n))
	}
}

// WithHistoryCapacity sets the undo ring's fixed entry capacity.
func WithHistoryCapacity(n int) Option {
	return func(c *config) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithHistoryCapacity(n))
	}
}

// WithReadOnly opens the engine in read-only mode.
func WithReadOnly() Option {
	return func(c *config) {
		c.bufferOpts = append(c.bufferOpts, buffer.WithReadOnly())
	}
}
