// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

// Package tts synthesizes short narration clips and serves them from a
// disk-backed store. Audio files are named by random UUID so clip URLs
// are unguessable, and a background cleanup service removes clips past
// their retention age.
package tts

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JawandS/WhatNowAI/internal/breaker"
	"github.com/JawandS/WhatNowAI/internal/config"
	"github.com/JawandS/WhatNowAI/internal/logging"
	"github.com/JawandS/WhatNowAI/internal/metrics"
)

// Synthesizer turns text into audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleSynthesizer uses the unauthenticated Google Translate TTS
// endpoint. Input is capped at 200 runes per request, which fits the
// onboarding narration lines this service exists for.
type GoogleSynthesizer struct {
	client  *resty.Client
	breaker *breaker.Breaker
	lang    string
}

// NewGoogleSynthesizer creates a synthesizer for the given language
// code (e.g. "en").
func NewGoogleSynthesizer(timeout time.Duration, lang string) *GoogleSynthesizer {
	if lang == "" {
		lang = "en"
	}
	return &GoogleSynthesizer{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; WhatNowAI/1.0)"),
		breaker: breaker.New("google-tts"),
		lang:    lang,
	}
}

// Synthesize fetches MP3 audio for the text.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	runes := []rune(text)
	if len(runes) > 200 {
		text = string(runes[:200])
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		resp, err := s.client.R().
			SetContext(ctx).
			Get("https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=" +
				s.lang + "&q=" + url.QueryEscape(text))
		if err != nil {
			return nil, fmt.Errorf("tts request failed: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("tts backend returned status %d", resp.StatusCode())
		}
		body := resp.Body()
		return &body, nil
	})

	audio, err := breaker.Cast[[]byte](result, err)
	if err != nil {
		return nil, err
	}
	return *audio, nil
}

// Service synthesizes narration and stores the resulting clips.
type Service struct {
	synth  Synthesizer
	cfg    config.TTSConfig
	logger zerolog.Logger
}

// NewService creates a TTS service backed by the given synthesizer.
// The audio directory is created if absent.
func NewService(synth Synthesizer, cfg config.TTSConfig) (*Service, error) {
	if err := os.MkdirAll(cfg.AudioDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &Service{
		synth:  synth,
		cfg:    cfg,
		logger: logging.With().Str("component", "tts").Logger(),
	}, nil
}

// Synthesize renders text to a stored clip and returns its audio ID.
func (s *Service) Synthesize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	audio, err := s.synth.Synthesize(ctx, text)
	metrics.TTSSynthesisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	audioID := uuid.NewString()
	path := filepath.Join(s.cfg.AudioDir, audioID+".mp3")
	if err := os.WriteFile(path, audio, 0o640); err != nil {
		return "", fmt.Errorf("failed to store audio: %w", err)
	}

	s.logger.Debug().Str("audio_id", audioID).Int("bytes", len(audio)).Msg("clip stored")
	return audioID, nil
}

// Path resolves an audio ID to its file path. The ID must be a valid
// UUID, which also blocks path traversal through the ID segment.
func (s *Service) Path(audioID string) (string, error) {
	if _, err := uuid.Parse(audioID); err != nil {
		return "", fmt.Errorf("invalid audio id: %w", err)
	}
	path := filepath.Join(s.cfg.AudioDir, audioID+".mp3")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("audio clip not found: %w", err)
	}
	return path, nil
}

// CleanupOnce removes clips older than the retention age and returns
// how many were removed.
func (s *Service) CleanupOnce() (int, error) {
	entries, err := os.ReadDir(s.cfg.AudioDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read audio directory: %w", err)
	}

	removed := 0
	cutoff := time.Now().Add(-s.cfg.MaxAge)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mp3" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.cfg.AudioDir, entry.Name())); err == nil {
				removed++
			}
		}
	}

	metrics.TTSFilesCleaned.Add(float64(removed))
	metrics.TTSFilesStored.Set(float64(len(entries) - removed))
	return removed, nil
}
