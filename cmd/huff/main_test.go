// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intel/huffpack/internal/logger"
)

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	packed := filepath.Join(dir, "in.huff")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(in, []byte("abbcccc"), 0o644))

	var stderr, logs bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", "-t", in, packed}, &stderr, logger.NewWriter(&logs)))
	require.Contains(t, stderr.String(), "0x63              4  1\n")
	require.Contains(t, logs.String(), "(7 -> 11 bytes)")

	require.Equal(t, 0, run([]string{"-d", packed, out}, &stderr, logger.Discard()))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "abbcccc", string(got))
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"-c", "in"},
		{"-c", "-d", "in", "out"},
		{"in", "out"},
		{"-d", "-t", "in", "out"},
		{"-x", "in", "out"},
	} {
		var stderr bytes.Buffer
		require.Equal(t, 2, run(args, &stderr, logger.Discard()), "args %q", args)
		require.Contains(t, stderr.String(), "usage: huff", "args %q", args)
	}
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	code := run([]string{"-c", filepath.Join(dir, "missing"), filepath.Join(dir, "out")}, &bytes.Buffer{}, logger.NewWriter(&logs))
	require.Equal(t, 1, code)
	require.Contains(t, logs.String(), "[ERROR]")
	require.Contains(t, logs.String(), "input unreadable")
}

func TestRunEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(in, nil, 0o644))

	var logs bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", in, filepath.Join(dir, "out")}, &bytes.Buffer{}, logger.NewWriter(&logs)))
	require.Contains(t, logs.String(), "[WARN]")
}
