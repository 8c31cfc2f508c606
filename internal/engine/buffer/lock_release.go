//go:build !corebuf_debug

package buffer

import "sync"

// rwMutex is sync.RWMutex in release builds. See lock_debug.go for the
// deadlock-detecting variant used when the corebuf_debug tag is set.
type rwMutex = sync.RWMutex
