package buffer

// Default tuning values, matched to the engine facade's defaults so a
// bare buffer.New() and a bare engine.New() behave the same way.
const (
	DefaultTabWidth       = 4
	DefaultHistoryCap     = 256
	DefaultParserLogLimit = 4096
)

type config struct {
	lineEnding   LineEnding
	detectEnding bool
	tabWidth     int
	historyCap   int
	readOnly     bool
}

func defaultConfig() config {
	return config{
		lineEnding:   LF,
		detectEnding: true,
		tabWidth:     DefaultTabWidth,
		historyCap:   DefaultHistoryCap,
	}
}

// Option configures a Buffer at construction time.
type Option func(*config)

// WithLineEnding fixes the buffer's line ending instead of detecting it
// from loaded content.
func WithLineEnding(e LineEnding) Option {
	return func(c *config) {
		c.lineEnding = e
		c.detectEnding = false
	}
}

// WithTabWidth sets how many visual columns a tab character advances.
func WithTabWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabWidth = n
		}
	}
}

// WithHistoryCapacity sets the undo ring's fixed entry capacity.
func WithHistoryCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.historyCap = n
		}
	}
}

// WithReadOnly opens the buffer in read-only mode: every mutating
// operation returns ErrReadOnly until the buffer is recreated.
func WithReadOnly() Option {
	return func(c *config) {
		c.readOnly = true
	}
}
