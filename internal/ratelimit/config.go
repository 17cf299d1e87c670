// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"time"
)

type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DialTimeout   time.Duration

	// Rate is the refill rate in tokens per second
	Rate  float64
	Burst int

	KeyPrefix string
}

func NewConfig(addr, password string, db int, rate float64, burst int, prefix string) Config {
	return Config{
		RedisAddr:     addr,
		RedisPassword: password,
		RedisDB:       db,
		DialTimeout:   2 * time.Second,
		Rate:          rate,
		Burst:         burst,
		KeyPrefix:     prefix,
	}
}
