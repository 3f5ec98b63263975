// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/intel/huffpack/internal/handler"
	"github.com/intel/huffpack/internal/logger"
	"github.com/intel/huffpack/internal/service"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, Dependencies{
		ArchiveHandler: handler.NewArchiveHandler(service.NewArchiveService(logger.Discard()), 1<<20),
	})
	return r
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestRoutes(t *testing.T) {
	r := newEngine()
	for _, path := range []string{"/api/v1/compress", "/api/v1/decompress", "/api/v1/analyze"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader("")))
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/compress", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
