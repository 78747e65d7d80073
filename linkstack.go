/*
Package linkstack implements a LIFO stack of int32 payloads on top of a
singly linked chain of pooled nodes.

Every node is owned by exactly one link, either the list head or the
preceding node. Push prepends, Pop and Drop hand nodes back to the pool
while unlinking them in the same step, and the element count is cached.
Mutating operations return the list so calls can be chained:

	l := linkstack.New()
	defer l.Release()
	l.Push(99).Push(88).Push(77).Print()

A List is not safe for concurrent use.
*/
package linkstack

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/GodYY/gutils/assert"
	"github.com/GodYY/gutils/finalize"
	"github.com/pkg/errors"
)

// None is the value older revisions returned from an empty pop. It is an
// ordinary payload here; emptiness is reported by Pop's second result.
const None = int32(math.MaxInt32)

// List is a LIFO stack. The zero value is an empty list ready to use.
type List struct {
	head   *node
	length int
}

// New creates an empty list. Call Release when the list is no longer
// used; otherwise its remaining nodes are only reclaimed by GC.
func New() *List {
	l := &List{}

	finalize.SetFinalizer(l)

	return l
}

// Release drops all nodes and detaches the GC finalizer.
func (l *List) Release() {
	finalize.UnsetFinalizer(l)
	l.Drop()
}

// Finalizer will be called by GC if there is no explicitly
// call Release.
func (l *List) Finalizer() {
	if debug && l.length > 0 {
		log.Printf("List.Finalizer: %d nodes not dropped", l.length)
	}
	l.Drop()
}

// Len returns the number of nodes in the list.
func (l *List) Len() int { return l.length }

// Empty reports whether the list holds no node.
func (l *List) Empty() bool { return l.head == nil }

// Push inserts item in front of the list.
func (l *List) Push(item int32) *List {
	l.head = newNode(l.head, item)
	l.length++
	return l
}

// Pop removes the head node and returns its payload. ok is false, and
// the list is left unchanged, if the list is empty.
func (l *List) Pop() (item int32, ok bool) {
	if l.head == nil {
		return 0, false
	}

	item = l.head.item
	l.head = dropNode(l.head)
	l.length--

	if debug {
		assert.AssertF(l.length == l.count(), "length %d, %d nodes", l.length, l.count())
	}

	return item, true
}

// TryPop is Pop reporting an empty list as ErrEmpty.
func (l *List) TryPop() (int32, error) {
	item, ok := l.Pop()
	if !ok {
		return 0, errors.WithStack(ErrEmpty)
	}
	return item, nil
}

// Peek returns the head payload without removing it and counts a hit
// on the head node.
func (l *List) Peek() (item int32, ok bool) {
	if l.head == nil {
		return 0, false
	}

	l.head.hits++
	return l.head.item, true
}

// Hits returns how many times the current head has been peeked.
func (l *List) Hits() (int32, bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.hits, true
}

// Drop releases every node. Dropping an empty list is a no-op.
func (l *List) Drop() *List {
	for l.head != nil {
		l.head = dropNode(l.head)
	}
	l.length = 0
	return l
}

// Walk calls f with the 1-based position and payload of each node from
// head to tail, stopping early if f returns false.
func (l *List) Walk(f func(index int, item int32) bool) {
	assert.Assert(f != nil, "f nil")

	i := 1
	for n := l.head; n != nil; n = n.next {
		if !f(i, n.item) {
			return
		}
		i++
	}
}

// Print writes the list to standard output.
func (l *List) Print() *List {
	return l.Fprint(os.Stdout)
}

// Fprint writes the list to w, one "[index: item]" per node.
func (l *List) Fprint(w io.Writer) *List {
	io.WriteString(w, l.String())
	io.WriteString(w, "\n\n")
	return l
}

func (l *List) String() string {
	var sb strings.Builder

	sb.WriteString("List: ")
	l.Walk(func(i int, item int32) bool {
		fmt.Fprintf(&sb, "[%d: %d] -> ", i, item)
		return true
	})
	sb.WriteString("NULL")

	return sb.String()
}

// count traverses the chain; used to check the cached length.
func (l *List) count() int {
	n := 0
	for p := l.head; p != nil; p = p.next {
		n++
	}
	return n
}
