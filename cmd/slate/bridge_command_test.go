package main

import (
	"strings"
	"testing"
)

func TestBridgeRepair(t *testing.T) {
	out, err := runCommand(t, "--config", missingConfig(t), "bridge", "repair", "/s/PROJECTS/DEMO/file.blend")
	if err != nil {
		t.Fatalf("bridge repair: %v", err)
	}
	if got := strings.TrimSpace(out); got != `S:\PROJECTS\DEMO\file.blend` {
		t.Errorf("repair = %q", got)
	}
}

func TestBridgeToFarm(t *testing.T) {
	out, err := runCommand(t, "--config", missingConfig(t), "bridge", "to-farm",
		`S:\PROJECTS\DEMO\SC030_PLAYGROUND\SH010\03_ANIMATION\render\frame.exr`)
	if err != nil {
		t.Fatalf("bridge to-farm: %v", err)
	}
	if got := strings.TrimSpace(out); got != `K:\03_ANIMATION\render\frame.exr` {
		t.Errorf("to-farm = %q", got)
	}
}

func TestBridgeToLocalRejectsForeignPath(t *testing.T) {
	_, err := runCommand(t, "--config", missingConfig(t), "bridge", "to-local", "/home/user/file.blend")
	if err == nil {
		t.Fatal("expected error for path outside recognized prefixes")
	}
}
