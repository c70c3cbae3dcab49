// WhatNowAI - Personalized Activity Research and Event Discovery
// Copyright 2026 Jawand S. (JawandS)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JawandS/WhatNowAI

package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JawandS/WhatNowAI/internal/config"
)

type stubSynthesizer struct {
	audio []byte
	err   error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return s.audio, s.err
}

func testService(t *testing.T, synth Synthesizer) *Service {
	t.Helper()
	svc, err := NewService(synth, config.TTSConfig{
		AudioDir:        t.TempDir(),
		CleanupInterval: 10 * time.Minute,
		MaxAge:          time.Hour,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSynthesizeStoresClip(t *testing.T) {
	svc := testService(t, &stubSynthesizer{audio: []byte("mp3-bytes")})

	audioID, err := svc.Synthesize(context.Background(), "welcome to austin")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if audioID == "" {
		t.Fatal("expected non-empty audio ID")
	}

	path, err := svc.Path(audioID)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored clip: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Errorf("stored clip = %q, want %q", data, "mp3-bytes")
	}
}

func TestSynthesizePropagatesBackendError(t *testing.T) {
	svc := testService(t, &stubSynthesizer{err: errors.New("backend down")})

	if _, err := svc.Synthesize(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from failing synthesizer")
	}
}

func TestPathRejectsNonUUID(t *testing.T) {
	svc := testService(t, &stubSynthesizer{audio: []byte("x")})

	for _, id := range []string{"", "not-a-uuid", "../../etc/passwd", "a.mp3"} {
		if _, err := svc.Path(id); err == nil {
			t.Errorf("Path(%q) succeeded, want error", id)
		}
	}
}

func TestPathUnknownClip(t *testing.T) {
	svc := testService(t, &stubSynthesizer{audio: []byte("x")})

	_, err := svc.Path("0e3f7b1c-8f5a-4b2d-9c6e-1a2b3c4d5e6f")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Path for missing clip = %v, want not found error", err)
	}
}

func TestCleanupOnceRemovesOnlyExpired(t *testing.T) {
	svc := testService(t, &stubSynthesizer{audio: []byte("x")})

	oldPath := filepath.Join(svc.cfg.AudioDir, "11111111-1111-4111-8111-111111111111.mp3")
	freshPath := filepath.Join(svc.cfg.AudioDir, "22222222-2222-4222-8222-222222222222.mp3")
	otherPath := filepath.Join(svc.cfg.AudioDir, "notes.txt")
	for _, p := range []string{oldPath, freshPath, otherPath} {
		if err := os.WriteFile(p, []byte("x"), 0o640); err != nil {
			t.Fatalf("writing fixture %s: %v", p, err)
		}
	}
	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(oldPath, stale, stale); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	removed, err := svc.CleanupOnce()
	if err != nil {
		t.Fatalf("CleanupOnce: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("expired clip still present")
	}
	for _, p := range []string{freshPath, otherPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s unexpectedly removed: %v", p, err)
		}
	}
}
