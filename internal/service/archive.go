// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package service runs the codec over in-memory payloads for the HTTP handlers.
package service

import (
	"bytes"
	"errors"

	"github.com/intel/huffpack/compress/huffman"
	"github.com/intel/huffpack/internal/logger"
)

type ArchiveService struct {
	logger logger.Logger
}

func NewArchiveService(l logger.Logger) *ArchiveService {
	return &ArchiveService{logger: l}
}

// IsCorrupt reports whether err was caused by a malformed archive rather than
// by the service itself.
func IsCorrupt(err error) bool {
	return errors.Is(err, huffman.ErrCorruptTree) ||
		errors.Is(err, huffman.ErrCorruptPadding) ||
		errors.Is(err, huffman.ErrBrokenTraversal)
}

func (s *ArchiveService) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := huffman.Compress(&out, bytes.NewReader(data)); err != nil {
		s.logger.Errorf("compress %d bytes: %v", len(data), err)
		return nil, err
	}
	if len(data) == 0 {
		s.logger.Warnf("compress: empty input")
	}
	s.logger.Infof("compressed %d -> %d bytes", len(data), out.Len())
	return out.Bytes(), nil
}

func (s *ArchiveService) Decompress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := huffman.Decompress(&out, bytes.NewReader(data)); err != nil {
		if IsCorrupt(err) {
			s.logger.Warnf("decompress %d bytes: %v", len(data), err)
		} else {
			s.logger.Errorf("decompress %d bytes: %v", len(data), err)
		}
		return nil, err
	}
	s.logger.Infof("decompressed %d -> %d bytes", len(data), out.Len())
	return out.Bytes(), nil
}

func (s *ArchiveService) Analyze(data []byte) (*huffman.Report, error) {
	r, err := huffman.Analyze(bytes.NewReader(data))
	if err != nil {
		s.logger.Errorf("analyze %d bytes: %v", len(data), err)
		return nil, err
	}
	return r, nil
}
