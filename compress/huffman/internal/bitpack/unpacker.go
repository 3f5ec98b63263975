// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/intel/huffpack/compress/huffman/internal/tree"
)

var (
	// ErrBrokenTraversal is returned when the payload leads off the tree or
	// stops in the middle of a code.
	ErrBrokenTraversal = errors.New("huffman: broken traversal")

	// ErrCorruptPadding is returned for a filler bit count that cannot
	// belong to the payload that follows it.
	ErrCorruptPadding = errors.New("huffman: corrupt padding")
)

// holdback serves every byte of r except the last one.
type holdback struct {
	r *bufio.Reader
}

func (h holdback) ReadByte() (byte, error) {
	if _, err := h.r.Peek(2); err != nil {
		return 0, err
	}
	return h.r.ReadByte()
}

func (h holdback) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := h.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}

// Unpacker reads the bits of a packed payload. Every byte contributes eight
// bits except the last, which contributes 8 - padding.
type Unpacker struct {
	src     *bufio.Reader
	body    *bitio.Reader
	padding uint8

	tail bool  // body exhausted, reading the last byte
	last byte  // remaining bits of the last byte, left aligned
	left uint8 // meaningful bits remaining in last
}

// NewUnpacker returns an Unpacker over the payload in r.
func NewUnpacker(r *bufio.Reader, padding uint8) (*Unpacker, error) {
	if padding > 7 {
		return nil, fmt.Errorf("%w: %d filler bits", ErrCorruptPadding, padding)
	}
	return &Unpacker{
		src:     r,
		body:    bitio.NewReader(holdback{r: r}),
		padding: padding,
	}, nil
}

// ReadBit returns the next payload bit, or io.EOF once every meaningful bit
// has been read.
func (u *Unpacker) ReadBit() (uint8, error) {
	if !u.tail {
		b, err := u.body.ReadBool()
		switch {
		case err == nil:
			if b {
				return 1, nil
			}
			return 0, nil
		case err != io.EOF:
			return 0, err
		}
		if err := u.loadTail(); err != nil {
			return 0, err
		}
	}
	if u.left == 0 {
		return 0, io.EOF
	}
	bit := u.last >> 7
	u.last <<= 1
	u.left--
	return bit, nil
}

func (u *Unpacker) loadTail() error {
	u.tail = true
	last, err := u.src.ReadByte()
	if err == io.EOF {
		if u.padding != 0 {
			return fmt.Errorf("%w: %d filler bits without payload", ErrCorruptPadding, u.padding)
		}
		return nil
	}
	if err != nil {
		return err
	}
	u.last, u.left = last, 8-u.padding
	return nil
}

// Decode walks root bit by bit, 0 to the left and 1 to the right, and writes
// the symbol of every leaf it reaches to w. It returns the number of symbols
// written.
func (u *Unpacker) Decode(w io.ByteWriter, root *tree.Node) (int64, error) {
	var n int64
	node := root
	for {
		bit, err := u.ReadBit()
		if err == io.EOF {
			if node != root {
				return n, fmt.Errorf("%w: payload ends inside a code", ErrBrokenTraversal)
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}

		if root.IsLeaf() {
			// a lone leaf owns the one-bit code "0"
			if bit != 0 {
				return n, fmt.Errorf("%w: no child for bit 1 at symbol %d", ErrBrokenTraversal, n)
			}
		} else {
			if bit == 0 {
				node = node.Left
			} else {
				node = node.Right
			}
			if node == nil {
				return n, fmt.Errorf("%w: no child for bit %d at symbol %d", ErrBrokenTraversal, bit, n)
			}
			if !node.IsLeaf() {
				continue
			}
		}

		if err := w.WriteByte(node.Symbol); err != nil {
			return n, err
		}
		n++
		node = root
	}
}
