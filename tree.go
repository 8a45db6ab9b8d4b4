package huffcodec

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Markers used by the tree dump.
const (
	LeafMarker     = 'L'
	InteriorMarker = 'I'
)

// MaxTreeSize is the length of the dump of a tree with every Symbol as a leaf.
const MaxTreeSize = 3*AlphabetSize - 1

// CodeTable maps each Symbol to its Code.  Symbols absent from the tree have
// a zero-length Code.
type CodeTable [AlphabetSize]Code

// TreeSize returns the length in bytes of the dump of a tree with the given
// number of leaves.  Each leaf takes 2 bytes and each of the (leaves - 1)
// interior nodes takes 1.
func TreeSize(leaves int) int {
	if leaves <= 0 {
		return 0
	}
	return 3*leaves - 1
}

// BuildTree constructs a Huffman tree from a Histogram.  It returns nil if
// no Symbol has a nonzero count.
//
// Leaves are enqueued in ascending Symbol order.  Each step dequeues a and
// then b, so a.Frequency <= b.Frequency, and joins them with a on the left.
//
func BuildTree(h *Histogram) *Node {
	q := NewPriorityQueue(AlphabetSize)
	for symbol, freq := range h {
		if freq != 0 {
			ok := q.Enqueue(NewLeaf(Symbol(symbol), freq))
			assert.Assertf(ok, "%v while enqueueing symbol %d", ErrQueueFull, symbol)
		}
	}

	for q.Len() > 1 {
		a, okA := q.Dequeue()
		b, okB := q.Dequeue()
		assert.Assertf(okA && okB, "%v with %d nodes left", ErrQueueEmpty, q.Len())
		ok := q.Enqueue(Join(a, b))
		assert.Assertf(ok, "%v while joining nodes", ErrQueueFull)
	}

	root, _ := q.Dequeue()
	return root
}

// BuildCodes walks the tree rooted at root and returns the Code for every
// leaf.  A nil root yields an empty table.
func BuildCodes(root *Node) (*CodeTable, error) {
	table := new(CodeTable)
	if root == nil {
		return table, nil
	}
	var path Code
	if err := buildCodes(table, root, &path); err != nil {
		return nil, err
	}
	return table, nil
}

func buildCodes(table *CodeTable, n *Node, path *Code) error {
	if n.IsLeaf() {
		table[n.Symbol] = *path
		return nil
	}
	if n.Left != nil {
		if err := descend(table, n.Left, path, 0); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if err := descend(table, n.Right, path, 1); err != nil {
			return err
		}
	}
	return nil
}

func descend(table *CodeTable, child *Node, path *Code, bit uint8) error {
	if !path.Push(bit) {
		return fmt.Errorf("%w: path deeper than %d bits", ErrCodeOverflow, MaxCodeBits)
	}
	err := buildCodes(table, child, path)
	path.Pop()
	return err
}

// CountLeaves returns the number of leaves in the tree rooted at root.
func CountLeaves(root *Node) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return 1
	}
	return CountLeaves(root.Left) + CountLeaves(root.Right)
}

// DumpTree serializes the tree rooted at root in post-order.  A leaf is
// written as LeafMarker followed by its Symbol; an interior node is written
// as InteriorMarker after both of its subtrees.  The result is exactly
// TreeSize(CountLeaves(root)) bytes long.
func DumpTree(root *Node) []byte {
	if root == nil {
		return nil
	}
	out := make([]byte, 0, TreeSize(CountLeaves(root)))
	return dumpTree(out, root)
}

func dumpTree(out []byte, n *Node) []byte {
	if n.Left != nil {
		out = dumpTree(out, n.Left)
	}
	if n.Right != nil {
		out = dumpTree(out, n.Right)
	}
	if n.IsLeaf() {
		return append(out, LeafMarker, byte(n.Symbol))
	}
	return append(out, InteriorMarker)
}

// RebuildTree reconstructs a tree from the output of DumpTree.
//
// The dump is expected to come from a trusted Header.  Malformed input is
// reported as an error rather than validated in depth.
//
func RebuildTree(dump []byte) (*Node, error) {
	s := NewStack(len(dump))
	for i := 0; i < len(dump); i++ {
		switch dump[i] {
		case LeafMarker:
			i++
			if i >= len(dump) {
				return nil, fmt.Errorf("%w: leaf marker at end of tree dump", ErrFormatMismatch)
			}
			if !s.Push(NewLeaf(Symbol(dump[i]), 0)) {
				return nil, fmt.Errorf("%w: at tree dump offset %d", ErrStackFull, i)
			}

		case InteriorMarker:
			right, okR := s.Pop()
			left, okL := s.Pop()
			if !okR || !okL {
				return nil, fmt.Errorf("%w: at tree dump offset %d", ErrStackEmpty, i)
			}
			if !s.Push(Join(left, right)) {
				return nil, fmt.Errorf("%w: at tree dump offset %d", ErrStackFull, i)
			}

		default:
			return nil, fmt.Errorf("%w: unknown tree marker %#02x at offset %d", ErrFormatMismatch, dump[i], i)
		}
	}

	if s.Len() != 1 {
		return nil, fmt.Errorf("%w: tree dump left %d roots, expected 1", ErrFormatMismatch, s.Len())
	}
	root, _ := s.Pop()
	return root, nil
}

// DeleteTree releases the tree rooted at root by detaching every child in
// post-order.  The tree must not be used afterward.
func DeleteTree(root *Node) {
	if root == nil {
		return
	}

	type stackItem struct {
		n       *Node
		visited bool
	}

	stack := []stackItem{{n: root}}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		if !top.visited {
			top.visited = true
			n := top.n
			if n.Right != nil {
				stack = append(stack, stackItem{n: n.Right})
			}
			if n.Left != nil {
				stack = append(stack, stackItem{n: n.Left})
			}
			continue
		}
		top.n.Left = nil
		top.n.Right = nil
		stack = stack[:len(stack)-1]
	}
}
