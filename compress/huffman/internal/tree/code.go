// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "strings"

// MaxCodeLen bounds the code length. A tree over 256 symbols is at most 255
// levels deep.
const MaxCodeLen = 256

// Code is a bit string, first bit stored in the most significant bit of
// words[0].
type Code struct {
	words [MaxCodeLen / 64]uint64
	n     uint16
}

// Len returns the number of bits in c.
func (c Code) Len() int {
	return int(c.n)
}

// Bit returns the i-th bit of c, counting from the first emitted bit.
func (c Code) Bit(i int) uint8 {
	return uint8(c.words[i/64]>>(63-uint(i%64))) & 1
}

// Append returns c extended by one bit.
func (c Code) Append(bit uint8) Code {
	if bit != 0 {
		c.words[c.n/64] |= 1 << (63 - c.n%64)
	}
	c.n++
	return c
}

// Chunks returns how many calls to Chunk cover the whole code.
func (c Code) Chunks() int {
	return (int(c.n) + 63) / 64
}

// Chunk returns the k-th run of at most 64 bits, right aligned, and its length.
func (c Code) Chunk(k int) (bits uint64, n uint8) {
	rest := int(c.n) - 64*k
	if rest > 64 {
		rest = 64
	}
	return c.words[k] >> (64 - uint(rest)), uint8(rest)
}

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.n))
	for i := 0; i < int(c.n); i++ {
		sb.WriteByte('0' + c.Bit(i))
	}
	return sb.String()
}

// Table maps every byte value to its code. Absent symbols have an empty code.
type Table [256]Code

// Lookup returns the code of b and whether b has one.
func (t *Table) Lookup(b byte) (Code, bool) {
	c := t[b]
	return c, c.n != 0
}

// EncodedBits returns the payload size in bits for data described by h.
func (t *Table) EncodedBits(h *Histogram) (bits uint64) {
	for sym, count := range h {
		bits += count * uint64(t[sym].n)
	}
	return bits
}

// Codes derives the code table of root: 0 for every left turn, 1 for every
// right turn.
func Codes(root *Node) *Table {
	t := new(Table)
	root.visitLeaves(func(leaf *Node, code Code) {
		t[leaf.Symbol] = code
	})
	return t
}
