// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds, walks and serializes the Huffman code tree.
//
// Trees are built greedily: the two lightest nodes are merged until a single
// root is left. Ties are broken by insertion order (leaves in ascending byte
// order, merged nodes in creation order), so the same histogram always yields
// the same tree.
package tree

import "container/heap"

// Node is a Huffman tree node. Leaves have no children. Internal nodes have
// two, except the root of a single-symbol tree, which only has Left.
type Node struct {
	Symbol      byte
	Count       uint64
	Left, Right *Node
}

// IsLeaf reports whether n carries a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

type queueItem struct {
	node *Node
	seq  int
}

// nodeQueue is a min-heap over (count, seq).
type nodeQueue []queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.Count != q[j].node.Count {
		return q[i].node.Count < q[j].node.Count
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = queueItem{}
	*q = old[:n-1]
	return item
}

// Build constructs the code tree for h. It returns nil when h is empty.
//
// A single-symbol histogram yields an internal root whose Left is the only
// leaf, so the symbol is still coded with one bit.
func Build(h *Histogram) *Node {
	q := make(nodeQueue, 0, h.Symbols())
	for sym, count := range h {
		if count != 0 {
			q = append(q, queueItem{
				node: &Node{Symbol: byte(sym), Count: count},
				seq:  len(q),
			})
		}
	}

	switch len(q) {
	case 0:
		return nil
	case 1:
		leaf := q[0].node
		return &Node{Count: leaf.Count, Left: leaf}
	}

	heap.Init(&q)
	seq := len(q)
	for q.Len() > 1 {
		left := heap.Pop(&q).(queueItem).node
		right := heap.Pop(&q).(queueItem).node
		heap.Push(&q, queueItem{
			node: &Node{Count: left.Count + right.Count, Left: left, Right: right},
			seq:  seq,
		})
		seq++
	}
	return q[0].node
}

type frame struct {
	node *Node
	code Code
}

// visitLeaves calls fn for every leaf in depth-first, left-first order with
// the leaf's code. A root that is itself a leaf is given the code "0".
func (n *Node) visitLeaves(fn func(leaf *Node, code Code)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(n, Code{}.Append(0))
		return
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.IsLeaf() {
			fn(f.node, f.code)
			continue
		}
		if f.node.Right != nil {
			stack = append(stack, frame{node: f.node.Right, code: f.code.Append(1)})
		}
		if f.node.Left != nil {
			stack = append(stack, frame{node: f.node.Left, code: f.code.Append(0)})
		}
	}
}

// WeightedPathLength returns the sum of count × code length over all leaves,
// which is the number of payload bits the tree produces for its histogram.
func (n *Node) WeightedPathLength() (bits uint64) {
	n.visitLeaves(func(leaf *Node, code Code) {
		bits += leaf.Count * uint64(code.Len())
	})
	return bits
}
