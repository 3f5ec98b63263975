// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"errors"
	"fmt"
	"io"
)

// Preamble markers. The tree is written in pre-order, one marker per node.
const (
	markerInternal byte = 0x00 // followed by the left and right subtrees
	markerLeaf     byte = 0x01 // followed by the symbol
	markerAbsent   byte = 0x02 // missing right child of a single-symbol root
)

// maxDepth is the deepest an internal node can sit in a tree of 256 leaves.
const maxDepth = MaxCodeLen - 1

var (
	// ErrCorruptTree is returned when the preamble does not describe a tree
	// this package could have written.
	ErrCorruptTree = errors.New("huffman: corrupt tree")

	errEmptyTree = errors.New("huffman: empty tree")
)

// Write serializes root to w in pre-order.
func Write(w io.ByteWriter, root *Node) error {
	if root == nil {
		return errEmptyTree
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var err error
		switch {
		case n == nil:
			err = w.WriteByte(markerAbsent)
		case n.IsLeaf():
			if err = w.WriteByte(markerLeaf); err == nil {
				err = w.WriteByte(n.Symbol)
			}
		default:
			err = w.WriteByte(markerInternal)
			stack = append(stack, n.Right, n.Left)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorruptTree}, args...)...)
}

// Read deserializes a tree written by Write.
//
// Read returns io.EOF if r is exhausted before the first marker. Running out
// of input anywhere else, or meeting a marker that Write would not have
// produced at that position, yields ErrCorruptTree.
func Read(r io.ByteReader) (*Node, error) {
	var (
		root  *Node
		open  []*Node // internal nodes still waiting for a child
		seen  [256]bool
		nodes int
	)
	for root == nil || len(open) > 0 {
		marker, err := r.ReadByte()
		if err == io.EOF {
			if root == nil {
				return nil, io.EOF
			}
			return nil, corrupt("preamble ends after %d nodes", nodes)
		}
		if err != nil {
			return nil, err
		}

		var n *Node
		switch marker {
		case markerInternal:
			if len(open) >= maxDepth {
				return nil, corrupt("tree deeper than %d levels", maxDepth)
			}
			n = &Node{}
		case markerLeaf:
			sym, err := r.ReadByte()
			if err == io.EOF {
				return nil, corrupt("leaf %d has no symbol", nodes)
			}
			if err != nil {
				return nil, err
			}
			if seen[sym] {
				return nil, corrupt("symbol %#04x appears twice", sym)
			}
			seen[sym] = true
			n = &Node{Symbol: sym}
		case markerAbsent:
			if len(open) != 1 || open[0] != root || root.Left == nil || !root.Left.IsLeaf() {
				return nil, corrupt("absent child at node %d", nodes)
			}
		default:
			return nil, corrupt("unknown marker %#04x at node %d", marker, nodes)
		}
		nodes++

		if root == nil {
			root = n
		} else {
			parent := open[len(open)-1]
			if parent.Left == nil {
				parent.Left = n
			} else {
				parent.Right = n
				open = open[:len(open)-1]
			}
		}
		if marker == markerInternal {
			open = append(open, n)
		}
	}
	return root, nil
}
