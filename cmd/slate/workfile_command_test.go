package main

import (
	"encoding/json"
	"strings"
	"testing"

	"slate/internal/markers"
)

func TestWorkfileBump(t *testing.T) {
	out, err := runCommand(t, "workfile", "bump", "sc030_playground_sh010_animation_v007.blend")
	if err != nil {
		t.Fatalf("bump: %v", err)
	}
	if got := strings.TrimSpace(out); got != "sc030_playground_sh010_animation_v008.blend" {
		t.Errorf("bump = %q", got)
	}
}

func TestWorkfileBumpPublishName(t *testing.T) {
	out, err := runCommand(t, "workfile", "bump", "--comment", "fix lighting", "DEMO-CHAR-rig-v003.blend")
	if err != nil {
		t.Fatalf("bump: %v", err)
	}
	if got := strings.TrimSpace(out); got != "DEMO-CHAR-rig-v004-fix_lighting.blend" {
		t.Errorf("bump = %q", got)
	}
}

func TestWorkfileHero(t *testing.T) {
	out, err := runCommand(t, "workfile", "hero", "DEMO-CHAR-rig-v003-wip.blend")
	if err != nil {
		t.Fatalf("hero: %v", err)
	}
	if got := strings.TrimSpace(out); got != "DEMO-CHAR-rig.blend" {
		t.Errorf("hero = %q", got)
	}
}

func TestWorkfileBumpRejectsUnversioned(t *testing.T) {
	if _, err := runCommand(t, "workfile", "bump", "notes.txt"); err == nil {
		t.Fatal("expected error for name without version")
	}
}

func TestMarkersCommandJSON(t *testing.T) {
	out, err := runCommand(t, "markers", "--separator", "slash", "--json",
		"--start", "1001", "--end", "1080", "--in", "1010", "--out", "1070", samplePath)
	if err != nil {
		t.Fatalf("markers: %v", err)
	}
	var plan []markers.Marker
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if len(plan) != 4 {
		t.Fatalf("got %d markers, want 4", len(plan))
	}
	if plan[0].Name != "CAM_030_PLAYGROUND_SH010_START" {
		t.Errorf("first marker = %q", plan[0].Name)
	}
}

func TestMarkersCommandRejectsInvertedRange(t *testing.T) {
	if _, err := runCommand(t, "markers", "--separator", "slash",
		"--start", "1100", "--end", "1000", samplePath); err == nil {
		t.Fatal("expected error for end before start")
	}
}
