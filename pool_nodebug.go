//go:build !debug
// +build !debug

package linkstack

func (p *nodePool) get() *node {
	return p.p.Get().(*node)
}

func (p *nodePool) put(n *node) {
	p.p.Put(n)
}
