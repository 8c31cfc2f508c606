package engine

import (
	"github.com/rtandon/corebuf/internal/engine/buffer"
	"github.com/rtandon/corebuf/internal/engine/history"
)

// Re-exported sentinel errors. Callers can compare against these without
// importing the buffer or history sub-packages directly.
var (
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange
	ErrRangeInvalid     = buffer.ErrRangeInvalid
	ErrLineOutOfRange   = buffer.ErrLineOutOfRange
	ErrInvalidUTF8      = buffer.ErrInvalidUTF8
	ErrReadOnly         = buffer.ErrReadOnly
	ErrNoBatchOpen      = history.ErrNoBatchOpen
	ErrNothingToUndo    = history.ErrNothingToUndo
	ErrNothingToRedo    = history.ErrNothingToRedo
)
