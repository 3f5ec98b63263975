// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Command huffd serves the Huffman codec over HTTP.
package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/intel/huffpack/internal/config"
	"github.com/intel/huffpack/internal/handler"
	"github.com/intel/huffpack/internal/logger"
	"github.com/intel/huffpack/internal/router"
	"github.com/intel/huffpack/internal/service"
)

func main() {
	logg := logger.New()
	cfg, err := config.Load()
	if err != nil {
		logg.Warnf("config: %v", err)
	}
	gin.SetMode(cfg.Mode)

	svc := service.NewArchiveService(logg)
	archiveH := handler.NewArchiveHandler(svc, cfg.MaxBodyBytes)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		ArchiveHandler: archiveH,
	})

	logg.Infof("starting server at %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}
