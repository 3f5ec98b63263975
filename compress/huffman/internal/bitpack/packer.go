// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitpack packs Huffman codes into bytes, most significant bit first,
// and walks a code tree over packed bytes to recover the symbols.
package bitpack

import (
	"io"

	"github.com/icza/bitio"

	"github.com/intel/huffpack/compress/huffman/internal/tree"
)

// Packer appends codes to a bit stream. The first error is latched and
// returned by every later call.
type Packer struct {
	w    *bitio.Writer
	bits uint64
	err  error
}

// ByteWriter is the output of a Packer. Bytes go straight to it, so Close
// leaves nothing buffered inside the Packer.
type ByteWriter interface {
	io.Writer
	io.ByteWriter
}

// NewPacker returns a Packer writing to w. Nothing reaches w until a full
// byte is collected; Close writes the partial last byte.
func NewPacker(w ByteWriter) *Packer {
	return &Packer{w: bitio.NewWriter(w)}
}

// Write appends the bits of c.
func (p *Packer) Write(c tree.Code) error {
	if p.err != nil {
		return p.err
	}
	for k := 0; k < c.Chunks(); k++ {
		bits, n := c.Chunk(k)
		if err := p.w.WriteBits(bits, n); err != nil {
			p.err = err
			return err
		}
	}
	p.bits += uint64(c.Len())
	return nil
}

// Bits returns the number of bits written so far.
func (p *Packer) Bits() uint64 {
	return p.bits
}

// Close pads the last byte with zero bits and writes it out. It returns the
// number of filler bits, between 0 and 7.
func (p *Packer) Close() (padding uint8, err error) {
	if p.err != nil {
		return 0, p.err
	}
	padding, err = p.w.Align()
	if err != nil {
		p.err = err
	}
	return padding, err
}

// Padding returns the filler bit count for a payload of the given size.
func Padding(bits uint64) uint8 {
	return uint8((8 - bits%8) % 8)
}
