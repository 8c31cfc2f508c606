//go:build corebuf_debug

package buffer

import "github.com/sasha-s/go-deadlock"

// rwMutex is go-deadlock's RWMutex in debug builds (corebuf_debug), which
// tracks lock acquisition order across goroutines and panics with a
// cycle report instead of hanging forever. Release builds pay nothing
// for this; see lock_release.go.
type rwMutex = deadlock.RWMutex
