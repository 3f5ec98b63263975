// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Command huff compresses and decompresses files with a Huffman code.
//
//	huff -c [-t] <input> <output>
//	huff -d <input> <output>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/intel/huffpack/compress/huffman"
	"github.com/intel/huffpack/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, logger.New()))
}

func run(args []string, stderr io.Writer, log logger.Logger) int {
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		c = fs.Bool("c", false, "compress input into output")
		d = fs.Bool("d", false, "decompress input into output")
		t = fs.Bool("t", false, "print the code table after compressing")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huff -c [-t] <input> <output>")
		fmt.Fprintln(stderr, "       huff -d <input> <output>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *c == *d || fs.NArg() != 2 || (*t && !*c) {
		fs.Usage()
		return 2
	}
	in, out := fs.Arg(0), fs.Arg(1)

	var err error
	if *c {
		err = compressFile(in, out, *t, stderr, log)
	} else {
		err = huffman.DecompressFile(out, in)
	}
	if err != nil {
		log.Errorf("%s: %v", in, err)
		return 1
	}
	if *d {
		logSizes(log, "decompressed", in, out)
	}
	return 0
}

func compressFile(in, out string, table bool, stderr io.Writer, log logger.Logger) error {
	var report *huffman.Report
	if table {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("%w: %w", huffman.ErrInputUnreadable, err)
		}
		report, err = huffman.Analyze(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	if err := huffman.CompressFile(out, in); err != nil {
		return err
	}
	if report != nil {
		printTable(stderr, report)
	}
	logSizes(log, "compressed", in, out)
	return nil
}

func printTable(w io.Writer, r *huffman.Report) {
	fmt.Fprintf(w, "%-6s %12s  %s\n", "symbol", "count", "code")
	for _, s := range r.Symbols {
		fmt.Fprintf(w, "0x%02x   %12d  %s\n", s.Value, s.Count, s.Code)
	}
	fmt.Fprintf(w, "%d bytes -> %d preamble + 1 padding + %d payload bits (%d filler)\n",
		r.InputBytes, r.PreambleBytes, r.PayloadBits, r.Padding)
}

func logSizes(log logger.Logger, action, in, out string) {
	inInfo, err := os.Stat(in)
	if err != nil {
		return
	}
	outInfo, err := os.Stat(out)
	if err != nil {
		return
	}
	if inInfo.Size() == 0 {
		log.Warnf("%s is empty, wrote empty %s", in, out)
		return
	}
	log.Infof("%s %s -> %s (%d -> %d bytes)", action, in, out, inInfo.Size(), outInfo.Size())
}
