//go:build debug
// +build debug

package linkstack

import (
	"sync/atomic"

	"github.com/GodYY/gutils/assert"
)

var nodeTotalGetTimes int64
var nodeTotalPutTimes int64

func getNodeTotalGetTimes() int64 {
	return atomic.LoadInt64(&nodeTotalGetTimes)
}

func getNodeTotalPutTimes() int64 {
	return atomic.LoadInt64(&nodeTotalPutTimes)
}

func (p *nodePool) get() *node {
	atomic.AddInt64(&nodeTotalGetTimes, 1)
	return p.p.Get().(*node)
}

func (p *nodePool) put(n *node) {
	assert.Assert(n != nil, "node nil")
	assert.Assert(n.next == nil, "node still linked")
	atomic.AddInt64(&nodeTotalPutTimes, 1)
	p.p.Put(n)
}
