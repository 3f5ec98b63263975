// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intel/huffpack/internal/handler"
)

type Dependencies struct {
	ArchiveHandler *handler.ArchiveHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.ArchiveHandler.Compress)
		v1.POST("/decompress", d.ArchiveHandler.Decompress)
		v1.POST("/analyze", d.ArchiveHandler.Analyze)
	}
}
