// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package tts

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JawandS/WhatNowAI/internal/logging"
)

// CleanupService periodically removes expired audio clips. It
// implements suture.Service so the supervision tree restarts it if a
// sweep panics or the directory becomes temporarily unreadable.
type CleanupService struct {
	svc      *Service
	interval time.Duration
	logger   zerolog.Logger
}

// NewCleanupService creates a cleanup service sweeping at the given
// interval.
func NewCleanupService(svc *Service, interval time.Duration) *CleanupService {
	return &CleanupService{
		svc:      svc,
		interval: interval,
		logger:   logging.With().Str("component", "tts-cleanup").Logger(),
	}
}

// Serve implements suture.Service. It sweeps once at startup so a
// restart after downtime does not wait a full interval, then sweeps on
// every tick until the context is canceled.
func (c *CleanupService) Serve(ctx context.Context) error {
	c.sweep()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *CleanupService) sweep() {
	removed, err := c.svc.CleanupOnce()
	if err != nil {
		c.logger.Warn().Err(err).Msg("audio cleanup sweep failed")
		return
	}
	if removed > 0 {
		c.logger.Info().Int("removed", removed).Msg("expired audio clips removed")
	}
}

// String implements fmt.Stringer for supervisor log messages.
func (c *CleanupService) String() string {
	return "tts-cleanup"
}
