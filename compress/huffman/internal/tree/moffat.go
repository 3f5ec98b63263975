// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "sort"

// minimumRedundancy implements In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
//
// w must be sorted in non-increasing order. On return w[i] holds the code
// length of the i-th weight.
func minimumRedundancy(w []uint64) {
	// phase 1
	n := len(w)
	if n == 0 {
		return
	}
	if n == 1 {
		w[0] = 1
		return
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal node
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := uint64(0)
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth
		for ; root < n && w[root] == depth; root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = depth
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
}

// optimalBits returns the smallest payload, in bits, any prefix code can
// achieve for h. A single symbol still costs one bit per occurrence.
func optimalBits(h *Histogram) (bits uint64) {
	counts := make([]uint64, 0, len(h))
	for _, c := range h {
		if c != 0 {
			counts = append(counts, c)
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })

	lens := make([]uint64, len(counts))
	copy(lens, counts)
	minimumRedundancy(lens)
	for i, c := range counts {
		bits += c * lens[i]
	}
	return bits
}
