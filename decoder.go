package huffcodec

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder walks a Huffman tree one bit at a time.
type Decoder struct {
	root *Node
	curr *Node
}

// Init initializes this Decoder from a tree dump produced by DumpTree.
func (d *Decoder) Init(dump []byte) error {
	root, err := RebuildTree(dump)
	if err != nil {
		return fmt.Errorf("failed to rebuild Huffman tree: %w", err)
	}
	d.InitTree(root)
	return nil
}

// InitTree initializes this Decoder from an existing tree.
func (d *Decoder) InitTree(root *Node) {
	*d = Decoder{root: root, curr: root}
}

// Next descends one step from the current position: left for a 0 bit, right
// for a 1 bit.  If that reaches a leaf, Next returns its Symbol and true, and
// the next call starts again from the root.
//
// A tree consisting of a single leaf yields that leaf's Symbol for every bit.
//
func (d *Decoder) Next(bit uint8) (Symbol, bool) {
	if bit == 0 && d.curr.Left != nil {
		d.curr = d.curr.Left
	} else if bit != 0 && d.curr.Right != nil {
		d.curr = d.curr.Right
	}

	if d.curr.IsLeaf() {
		symbol := d.curr.Symbol
		d.curr = d.root
		return symbol, true
	}
	return 0, false
}

// Reset returns to the root of the tree, discarding a partially decoded
// Symbol.
func (d *Decoder) Reset() {
	d.curr = d.root
}

// Tree returns the root of the Huffman tree.
func (d Decoder) Tree() *Node {
	return d.root
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Leaves are listed in tree order together with
// the Code that reaches them.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	var path Code
	dumpLeaves(&buf, d.root, &path)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpLeaves(buf *bytes.Buffer, n *Node, path *Code) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\tDecode(%s) = %d\n", *path, n.Symbol)
		return
	}
	for bit, child := range [2]*Node{n.Left, n.Right} {
		if child != nil && path.Push(uint8(bit)) {
			dumpLeaves(buf, child, path)
			path.Pop()
		}
	}
}
