// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errSameFile = errors.New("output is the input file")

// CompressFile compresses the file at srcPath into a new file at dstPath.
// On failure the output file is removed.
func CompressFile(dstPath, srcPath string) error {
	src, err := openInput(dstPath, srcPath)
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(dstPath, func(dst io.Writer) error {
		return Compress(dst, src)
	})
}

// DecompressFile decompresses the file at srcPath into a new file at dstPath.
// On failure the output file is removed.
func DecompressFile(dstPath, srcPath string) error {
	src, err := openInput(dstPath, srcPath)
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(dstPath, func(dst io.Writer) error {
		return Decompress(dst, src)
	})
}

func openInput(dstPath, srcPath string) (*os.File, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, inputError(err)
	}
	srcInfo, err := src.Stat()
	if err != nil {
		src.Close()
		return nil, inputError(err)
	}
	if dstInfo, err := os.Stat(dstPath); err == nil && os.SameFile(srcInfo, dstInfo) {
		src.Close()
		return nil, outputError(fmt.Errorf("%w: %s", errSameFile, dstPath))
	}
	return src, nil
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	dst, err := os.Create(path)
	if err != nil {
		return outputError(err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = outputError(cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return fill(dst)
}
