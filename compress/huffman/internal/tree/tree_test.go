// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func histogramOf(s string) *Histogram {
	h := new(Histogram)
	h.Add([]byte(s))
	return h
}

// fibHistogram gives symbol i the (i+1)-th Fibonacci number as its count,
// which produces the deepest possible tree for n symbols.
func fibHistogram(n int) *Histogram {
	h := new(Histogram)
	a, b := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		h[i] = a
		a, b = b, a+b
	}
	return h
}

func randomHistogram(rng *rand.Rand, symbols int) *Histogram {
	h := new(Histogram)
	for _, sym := range rng.Perm(256)[:symbols] {
		h[sym] = uint64(rng.Intn(10000) + 1)
	}
	return h
}

func TestBuildEmpty(t *testing.T) {
	require.Nil(t, Build(new(Histogram)))
}

func TestBuildSingleSymbol(t *testing.T) {
	root := Build(histogramOf(strings.Repeat("A", 1000)))
	require.NotNil(t, root)
	require.False(t, root.IsLeaf())
	require.Nil(t, root.Right)
	require.True(t, root.Left.IsLeaf())
	require.Equal(t, byte('A'), root.Left.Symbol)
	require.Equal(t, uint64(1000), root.Count)

	codes := Codes(root)
	code, ok := codes.Lookup('A')
	require.True(t, ok)
	require.Equal(t, "0", code.String())
	require.Equal(t, uint64(1000), root.WeightedPathLength())
}

func TestBuildTieBreak(t *testing.T) {
	codes := Codes(Build(histogramOf("dcba")))
	want := map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}
	for sym, code := range want {
		require.Equal(t, code, codes[sym].String(), "symbol %q", sym)
	}
}

func TestBuildMergesLightestFirst(t *testing.T) {
	// a:1 b:2 c:4 -> ((a b) c) with the lighter subtree on the left
	codes := Codes(Build(histogramOf("abbcccc")))
	require.Equal(t, "00", codes['a'].String())
	require.Equal(t, "01", codes['b'].String())
	require.Equal(t, "1", codes['c'].String())
}

func TestBuildDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := randomHistogram(rng, 200)
	first := Codes(Build(h))
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Codes(Build(h)))
	}
}

func TestOptimality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := map[string]*Histogram{
		"two":       histogramOf("ab"),
		"text":      histogramOf("a man a plan a canal panama"),
		"fibonacci": fibHistogram(40),
		"uniform":   histogramOf(string(allBytes())),
	}
	for _, n := range []int{3, 17, 128, 256} {
		cases[fmt.Sprintf("random%d", n)] = randomHistogram(rng, n)
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			root := Build(h)
			require.Equal(t, optimalBits(h), root.WeightedPathLength())
			require.Equal(t, root.WeightedPathLength(), Codes(root).EncodedBits(h))
			require.Equal(t, h.Total(), root.Count)
		})
	}
}

func TestPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, h := range []*Histogram{
		histogramOf("ab"),
		histogramOf("abracadabra"),
		fibHistogram(70),
		randomHistogram(rng, 256),
	} {
		codes := Codes(Build(h))
		var all []string
		for sym := range h {
			code, ok := codes.Lookup(byte(sym))
			require.Equal(t, h[sym] != 0, ok)
			if ok {
				all = append(all, code.String())
			}
		}
		for i := range all {
			for j := range all {
				if i != j {
					require.False(t, strings.HasPrefix(all[j], all[i]), "%s is a prefix of %s", all[i], all[j])
				}
			}
		}
	}
}

func TestLeafRootCode(t *testing.T) {
	codes := Codes(&Node{Symbol: 'x', Count: 3})
	require.Equal(t, "0", codes['x'].String())
}

func TestCodeChunks(t *testing.T) {
	var c Code
	var want strings.Builder
	for i := 0; i < 150; i++ {
		bit := uint8(i*7%3) & 1
		c = c.Append(bit)
		want.WriteByte('0' + bit)
	}
	require.Equal(t, 150, c.Len())
	require.Equal(t, want.String(), c.String())
	require.Equal(t, 3, c.Chunks())

	var got strings.Builder
	for k := 0; k < c.Chunks(); k++ {
		bits, n := c.Chunk(k)
		for i := int(n) - 1; i >= 0; i-- {
			got.WriteByte('0' + uint8(bits>>uint(i)&1))
		}
	}
	require.Equal(t, want.String(), got.String())

	_, n := c.Chunk(2)
	require.Equal(t, uint8(22), n)
}

func TestDeepTreeCodes(t *testing.T) {
	h := fibHistogram(70)
	codes := Codes(Build(h))
	longest := 0
	for sym := range h {
		if codes[sym].Len() > longest {
			longest = codes[sym].Len()
		}
	}
	require.Equal(t, 69, longest)
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
