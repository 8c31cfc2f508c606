//go:build !corebuf_debug

package marktree

// debugCheck is a no-op outside corebuf_debug builds; see
// debug_check_debug.go.
func (t *Tree) debugCheck() {}
