package huffcodec

import (
	"fmt"
)

// interiorSymbol is the placeholder Symbol carried by interior nodes.
const interiorSymbol = Symbol('$')

// Node is a node in a Huffman tree.  A Node has either zero children (a
// leaf) or exactly two (an interior node); only leaves carry a meaningful
// Symbol.
type Node struct {
	Symbol    Symbol
	Frequency uint64
	Left      *Node
	Right     *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Frequency: freq}
}

// Join constructs an interior Node that takes ownership of left and right.
// Its frequency is the sum of theirs.
func Join(left, right *Node) *Node {
	return &Node{
		Symbol:    interiorSymbol,
		Frequency: left.Frequency + right.Frequency,
		Left:      left,
		Right:     right,
	}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// String returns a short description of this Node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%d, %d)", n.Symbol, n.Frequency)
	}
	return fmt.Sprintf("Interior(%d)", n.Frequency)
}

var _ fmt.Stringer = (*Node)(nil)
