//go:build corebuf_debug

package marktree

import "fmt"

// checkInvariants walks the whole tree and panics on the first violation
// found. It runs only in debug builds (corebuf_debug), the same tradeoff
// the buffer core makes between catching corruption early in development
// and paying nothing for it in a release binary.
func (t *Tree) checkInvariants() {
	seen := make(map[int32]bool, len(t.records))
	var walk func(n, parent *treeNode, isLeft bool) int
	walk = func(n, parent *treeNode, isLeft bool) int {
		if n == nil {
			return 0
		}
		if parent != nil {
			if isLeft && n.pos >= parent.pos {
				panic(fmt.Sprintf("marktree: ordering violated, left child %d >= parent %d", n.pos, parent.pos))
			}
			if !isLeft && n.pos <= parent.pos {
				panic(fmt.Sprintf("marktree: ordering violated, right child %d <= parent %d", n.pos, parent.pos))
			}
		}

		lh := walk(n.left, n, true)
		rh := walk(n.right, n, false)
		bf := lh - rh
		if bf < -1 || bf > 1 {
			panic(fmt.Sprintf("marktree: node at %d unbalanced, factor %d", n.pos, bf))
		}
		h := lh
		if rh > h {
			h = rh
		}
		h++
		if h != n.height {
			panic(fmt.Sprintf("marktree: node at %d has stale height %d, want %d", n.pos, n.height, h))
		}

		for cur := n.marksHead; cur != -1; cur = t.records[cur].nextInChain {
			if seen[cur] {
				panic(fmt.Sprintf("marktree: mark record %d appears in more than one chain", cur))
			}
			seen[cur] = true
			if !t.records[cur].inUse {
				panic(fmt.Sprintf("marktree: chain references freed record %d", cur))
			}
			if t.records[cur].node != n {
				panic(fmt.Sprintf("marktree: record %d node pointer does not match owning node", cur))
			}
		}
		return h
	}
	walk(t.root, nil, false)

	for i := range t.records {
		if t.records[i].inUse && !seen[int32(i)] {
			panic(fmt.Sprintf("marktree: live record %d is not reachable from any node", i))
		}
	}
}
