// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless byte compressor based on a greedy
// Huffman prefix code.
//
// A compressed stream has three parts:
//
//	tree preamble   pre-order nodes: 0x00 internal, 0x01 leaf + symbol,
//	                0x02 missing right child of a single-symbol root
//	padding count   one byte, 0..7
//	payload         codes packed most significant bit first; the trailing
//	                padding-count bits of the last byte are zero filler
//
// Empty input compresses to an empty stream and an empty stream decompresses
// to nothing.
package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/intel/huffpack/compress/huffman/internal/bitpack"
	"github.com/intel/huffpack/compress/huffman/internal/tree"
)

var (
	// ErrInputUnreadable wraps failures to read or rewind the source.
	ErrInputUnreadable = errors.New("huffman: input unreadable")
	// ErrOutputUnwritable wraps failures to create or write the destination.
	ErrOutputUnwritable = errors.New("huffman: output unwritable")

	ErrCorruptTree     = tree.ErrCorruptTree
	ErrBrokenTraversal = bitpack.ErrBrokenTraversal
	ErrCorruptPadding  = bitpack.ErrCorruptPadding

	errSourceChanged = errors.New("source changed between passes")
)

func inputError(err error) error {
	return fmt.Errorf("%w: %w", ErrInputUnreadable, err)
}

func outputError(err error) error {
	return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
}

// source marks read failures of the caller's stream. io.EOF passes untouched.
type source struct {
	r io.Reader
}

func (s source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		err = inputError(err)
	}
	return n, err
}

// sink marks write failures of the caller's stream.
type sink struct {
	w io.Writer
}

func (s sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		err = outputError(err)
	}
	return n, err
}

// Compress encodes src into dst.
//
// src is read twice: once to count byte frequencies and once to encode. It is
// rewound to its offset at entry between the two passes. Since the first pass
// fixes the payload size, the padding count is written ahead of the payload
// and dst needs no seeking. If the second pass does not see the same bytes as
// the first, Compress fails with ErrInputUnreadable.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	p, err := newPlan(src)
	if err != nil {
		return err
	}
	if p.root == nil {
		return nil
	}

	out := bufio.NewWriter(sink{w: dst})
	if err := tree.Write(out, p.root); err != nil {
		return err
	}
	if err := out.WriteByte(p.padding); err != nil {
		return err
	}

	packer := bitpack.NewPacker(out)
	buf := make([]byte, 32*1024)
	in := source{r: src}
	var read uint64
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			code, ok := p.codes.Lookup(b)
			if !ok {
				return inputError(fmt.Errorf("%w: symbol %#04x has no code", errSourceChanged, b))
			}
			if err := packer.Write(code); err != nil {
				return err
			}
		}
		read += uint64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	padding, err := packer.Close()
	if err != nil {
		return err
	}
	if read != p.hist.Total() || padding != p.padding {
		return inputError(fmt.Errorf("%w: %d bytes read, %d counted", errSourceChanged, read, p.hist.Total()))
	}
	return out.Flush()
}

// Decompress decodes src into dst.
//
// An empty src is not an error and produces no output. Bytes already decoded
// are left in dst when a later part of src turns out to be corrupt.
func Decompress(dst io.Writer, src io.Reader) error {
	in := bufio.NewReader(source{r: src})
	root, err := tree.Read(in)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	padding, err := in.ReadByte()
	if err == io.EOF {
		return fmt.Errorf("%w: missing padding count", ErrCorruptPadding)
	}
	if err != nil {
		return err
	}
	unpacker, err := bitpack.NewUnpacker(in, padding)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(sink{w: dst})
	if _, err := unpacker.Decode(out, root); err != nil {
		if ferr := out.Flush(); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}
	return out.Flush()
}
