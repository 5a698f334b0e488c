package services_test

import (
	"errors"
	"strings"
	"testing"

	"slate/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "publish", "copy", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"publish", "copy", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := services.Wrap(nil, "scan", "walk", "interrupted", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "validation", err: services.Wrap(services.ErrValidation, "parse", "path", "bad", nil), want: 2},
		{name: "not found", err: services.Wrap(services.ErrNotFound, "query", "shot", "missing", nil), want: 2},
		{name: "configuration", err: services.Wrap(services.ErrConfiguration, "config", "load", "invalid", nil), want: 3},
		{name: "external tool", err: services.Wrap(services.ErrExternalTool, "timecode", "ffprobe", "failed", nil), want: 4},
		{name: "transient", err: services.Wrap(services.ErrTransient, "publish", "copy", "io", errors.New("io")), want: 1},
		{name: "plain error", err: errors.New("boom"), want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
