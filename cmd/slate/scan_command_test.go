package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScanFixture lays out a small project tree plus a config file
// whose index lives under the same temp dir.
func writeScanFixture(t *testing.T) (configPath, root string) {
	t.Helper()
	base := t.TempDir()
	root = filepath.Join(base, "projects")

	shotDir := filepath.Join(root, "SC030_PLAYGROUND", "SH010", "03_ANIMATION")
	if err := os.MkdirAll(shotDir, 0o755); err != nil {
		t.Fatal(err)
	}
	workfile := filepath.Join(shotDir, "sc030_playground_sh010_animation_v001.blend")
	if err := os.WriteFile(workfile, []byte("blend"), 0o644); err != nil {
		t.Fatal(err)
	}

	configPath = filepath.Join(base, "slate.toml")
	content := fmt.Sprintf(`[paths]
project_root = %q
index_db = %q
log_dir = %q
`, root, filepath.Join(base, "index.db"), filepath.Join(base, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath, root
}

func TestScanThenShots(t *testing.T) {
	configPath, _ := writeScanFixture(t)

	out, err := runCommand(t, "--config", configPath, "scan")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "Indexed 1 workfile(s)") {
		t.Errorf("scan summary = %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "shots")
	if err != nil {
		t.Fatalf("shots: %v", err)
	}
	for _, want := range []string{"SC030_PLAYGROUND", "SH010", "sc030-playground-sh010"} {
		if !strings.Contains(out, want) {
			t.Errorf("shots output missing %q:\n%s", want, out)
		}
	}
}

func TestLatestAfterScan(t *testing.T) {
	configPath, root := writeScanFixture(t)

	// A second, newer version in the same stage.
	next := filepath.Join(root, "SC030_PLAYGROUND", "SH010", "03_ANIMATION",
		"sc030_playground_sh010_animation_v002.blend")
	if err := os.WriteFile(next, []byte("blend"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "--config", configPath, "scan"); err != nil {
		t.Fatalf("scan: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "latest", "sc030_playground", "sh010")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !strings.Contains(out, "002") {
		t.Errorf("latest missing version 002:\n%s", out)
	}
	if strings.Contains(out, "v001") {
		t.Errorf("latest should only list the newest version:\n%s", out)
	}
}

func TestStatsEmptyIndex(t *testing.T) {
	configPath, _ := writeScanFixture(t)

	out, err := runCommand(t, "--config", configPath, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "0") {
		t.Errorf("stats output = %q", out)
	}
}
