// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Histogram counts the occurrences of every byte value.
// A zero entry means the symbol does not occur and gets no code.
type Histogram [256]uint64

// Add counts every byte of p.
func (h *Histogram) Add(p []byte) {
	for _, b := range p {
		h[b]++
	}
}

// Symbols returns the number of distinct byte values seen.
func (h *Histogram) Symbols() (n int) {
	for _, c := range h {
		if c != 0 {
			n++
		}
	}
	return n
}

// Total returns the number of bytes counted.
func (h *Histogram) Total() (total uint64) {
	for _, c := range h {
		total += c
	}
	return total
}
