// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads the settings of the huffd service from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPort         = "8080"
	DefaultMaxBodyBytes = 64 << 20
)

type Config struct {
	Port         string
	MaxBodyBytes int64
	Mode         string
}

// Load reads HUFFD_PORT, HUFFD_MAX_BODY_BYTES and HUFFD_MODE. Invalid values
// are replaced by their defaults; the returned Config is always usable and
// the error lists what was replaced.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         DefaultPort,
		MaxBodyBytes: DefaultMaxBodyBytes,
		Mode:         gin.ReleaseMode,
	}
	var errs []error

	if v := os.Getenv("HUFFD_PORT"); v != "" {
		if p, err := strconv.ParseUint(v, 10, 16); err != nil || p == 0 {
			errs = append(errs, fmt.Errorf("HUFFD_PORT %q: not a port number", v))
		} else {
			cfg.Port = v
		}
	}
	if v := os.Getenv("HUFFD_MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("HUFFD_MAX_BODY_BYTES %q: not a positive size", v))
		} else {
			cfg.MaxBodyBytes = n
		}
	}
	if v := os.Getenv("HUFFD_MODE"); v != "" {
		switch v {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			cfg.Mode = v
		default:
			errs = append(errs, fmt.Errorf("HUFFD_MODE %q: unknown mode", v))
		}
	}
	return cfg, errors.Join(errs...)
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
