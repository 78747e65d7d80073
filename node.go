package linkstack

import (
	"github.com/GodYY/gutils/assert"
)

// A link in the chain. Owned by exactly one of the list head
// or the preceding node.
type node struct {
	next *node
	item int32

	// times the node was peeked while it was the head.
	hits int32
}

func newNode(next *node, item int32) *node {
	n := getNode()
	assert.Assert(n != nil, "node alloc failed")

	n.next = next
	n.item = item
	n.hits = 0
	return n
}

// dropNode releases n and returns its successor.
func dropNode(n *node) *node {
	if n == nil {
		return nil
	}

	next := n.next
	n.next = nil
	n.item = 0
	n.hits = 0
	putNode(n)
	return next
}
