package linkstack

import (
	"sync"
)

// Recycles nodes released by Pop and Drop.
type nodePool struct {
	p sync.Pool
}

func newNodePool() *nodePool {
	p := &nodePool{}
	p.p.New = func() interface{} { return new(node) }
	return p
}

var _nodePool = newNodePool()

func getNode() *node { return _nodePool.get() }

func putNode(n *node) { _nodePool.put(n) }
