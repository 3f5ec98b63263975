// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"

	"github.com/intel/huffpack/compress/huffman/internal/bitpack"
	"github.com/intel/huffpack/compress/huffman/internal/tree"
)

// plan is the outcome of the frequency pass: everything needed to write a
// compressed stream except the payload itself.
type plan struct {
	hist    *tree.Histogram
	root    *tree.Node // nil for empty input
	codes   *tree.Table
	bits    uint64
	padding uint8
}

// countFrequencies reads src to the end and seeks back to where it started.
func countFrequencies(src io.ReadSeeker) (*tree.Histogram, error) {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, inputError(err)
	}

	h := new(tree.Histogram)
	buf := make([]byte, 32*1024)
	in := source{r: src}
	for {
		n, err := in.Read(buf)
		h.Add(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, inputError(err)
	}
	return h, nil
}

func newPlan(src io.ReadSeeker) (*plan, error) {
	h, err := countFrequencies(src)
	if err != nil {
		return nil, err
	}
	p := &plan{hist: h, root: tree.Build(h)}
	if p.root == nil {
		return p, nil
	}
	p.codes = tree.Codes(p.root)
	p.bits = p.codes.EncodedBits(h)
	p.padding = bitpack.Padding(p.bits)
	return p, nil
}

// Symbol describes the code assigned to one byte value.
type Symbol struct {
	Value byte   `json:"value"`
	Count uint64 `json:"count"`
	Code  string `json:"code"`
}

// Report describes what Compress would produce for a source.
type Report struct {
	InputBytes      uint64   `json:"input_bytes"`
	PreambleBytes   uint64   `json:"preamble_bytes"`
	PayloadBits     uint64   `json:"payload_bits"`
	Padding         uint8    `json:"padding"`
	CompressedBytes uint64   `json:"compressed_bytes"`
	Symbols         []Symbol `json:"symbols"`
}

type byteCounter uint64

func (c *byteCounter) WriteByte(byte) error {
	*c++
	return nil
}

// Analyze runs the frequency pass of Compress on src and reports the code
// table and output sizes. Symbols are listed in ascending byte order. src is
// left at its offset at entry.
func Analyze(src io.ReadSeeker) (*Report, error) {
	p, err := newPlan(src)
	if err != nil {
		return nil, err
	}
	r := &Report{InputBytes: p.hist.Total(), Symbols: []Symbol{}}
	if p.root == nil {
		return r, nil
	}

	var preamble byteCounter
	if err := tree.Write(&preamble, p.root); err != nil {
		return nil, err
	}
	r.PreambleBytes = uint64(preamble)
	r.PayloadBits = p.bits
	r.Padding = p.padding
	r.CompressedBytes = r.PreambleBytes + 1 + (p.bits+7)/8
	for sym, count := range p.hist {
		if count != 0 {
			r.Symbols = append(r.Symbols, Symbol{
				Value: byte(sym),
				Count: count,
				Code:  p.codes[sym].String(),
			})
		}
	}
	return r, nil
}
