// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intel/huffpack/internal/service"
)

type ArchiveHandler struct {
	svc          *service.ArchiveService
	maxBodyBytes int64
}

func NewArchiveHandler(s *service.ArchiveService, maxBodyBytes int64) *ArchiveHandler {
	return &ArchiveHandler{svc: s, maxBodyBytes: maxBodyBytes}
}

// readBody reads the request body, answering the request itself when it
// cannot.
func (h *ArchiveHandler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (h *ArchiveHandler) Compress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Compress(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *ArchiveHandler) Decompress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Decompress(body)
	if err != nil {
		if service.IsCorrupt(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *ArchiveHandler) Analyze(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	r, err := h.svc.Analyze(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
