package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// LatestFolderVersion reports the highest version of a named folder
// inside dir. A bare folder matching name counts as version 1; folders
// named name_NN count as version NN. Returns 0 when neither exists.
func LatestFolderVersion(dir, name string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read dir %q: %w", dir, err)
	}

	version := 0
	if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
		version = 1
	}

	versioned := regexp.MustCompile("^" + regexp.QuoteMeta(name) + `_([0-9]{2})$`)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := versioned.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v > version {
			version = v
		}
	}
	return version, nil
}

// VersionedFolder formats the folder name for a given version: version
// 1 is the bare name, later versions carry a zero-padded _NN suffix.
func VersionedFolder(name string, version int) string {
	if version <= 1 {
		return name
	}
	return fmt.Sprintf("%s_%02d", name, version)
}

// StripDataExists reports whether the strip-data file is present in the
// publish phase directory belonging to the workfile's shot.
func StripDataExists(publishDir, filename string) bool {
	info, err := os.Stat(filepath.Join(publishDir, filename))
	return err == nil && !info.IsDir()
}
