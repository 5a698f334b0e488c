package pathmap

import (
	"regexp"
	"strings"
)

// Mapper carries the drive and mount layout used for path rewriting.
// It replaces the process-wide globals the pipeline scripts used to
// keep; callers construct one from configuration and pass it around.
type Mapper struct {
	// RemoteDrive is the Windows drive letter of the shared project
	// storage, without the colon (e.g. "S").
	RemoteDrive string

	// FarmDrive is the drive letter render nodes mount the farm share
	// under (e.g. "K").
	FarmDrive string

	// LocalRoot is the absolute mount point of the shared storage on
	// this workstation (e.g. "/Volumes/VELKE_PROJEKTY").
	LocalRoot string
}

var (
	phaseSegmentRE = regexp.MustCompile(`^.*[\\/]([0-9]{2}_[A-Z]+)[\\/]`)
	shotSegmentRE  = regexp.MustCompile(`[\\/](SH[0-9]{3})([\\/]|$)`)
)

// Repair fixes malformed remote paths: the legacy "/s/" mangled drive
// form and mixed separators in drive-letter paths. Well-formed paths
// pass through unchanged.
func (m Mapper) Repair(path string) string {
	if path == "" {
		return path
	}

	drive := m.remoteDrive()
	mangled := "/" + strings.ToLower(drive) + "/"
	if strings.HasPrefix(strings.ToLower(path), mangled) {
		path = drive + ":\\" + strings.ReplaceAll(path[len(mangled):], "/", "\\")
	}

	if strings.Contains(path, ":") && strings.Contains(path, "/") {
		path = strings.ReplaceAll(path, "/", "\\")
	}
	return path
}

// ToRemote maps a path under LocalRoot to its drive-letter form with
// backslashes. Paths already on the remote drive are returned as-is.
// The second return is false when the path lies outside LocalRoot.
func (m Mapper) ToRemote(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	drive := m.remoteDrive()
	if strings.HasPrefix(strings.ToUpper(path), drive+":\\") {
		return path, true
	}

	root := strings.TrimRight(m.LocalRoot, "/")
	if root == "" {
		return "", false
	}
	lower := strings.ToLower(path)
	if !strings.HasPrefix(lower, strings.ToLower(root)) {
		return "", false
	}

	// The prefix must end at a separator boundary; a sibling directory
	// like <root>_ARCHIVE is outside the mount.
	rel := path[len(root):]
	if rel != "" && rel[0] != '/' {
		return "", false
	}

	rel = strings.TrimLeft(rel, "/")
	return drive + ":\\" + strings.ReplaceAll(rel, "/", "\\"), true
}

// ToLocal maps a drive-letter path onto LocalRoot with forward
// slashes. The second return is false when the path does not start
// with a recognized remote drive prefix.
func (m Mapper) ToLocal(path string) (string, bool) {
	if path == "" || m.LocalRoot == "" {
		return "", false
	}

	drive := m.remoteDrive()
	clean := strings.ReplaceAll(path, "\\", "/")

	prefixes := []string{
		drive + ":/",
		"/" + strings.ToLower(drive) + "/",
		"/" + drive + "/",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToLower(clean), strings.ToLower(prefix)) {
			rel := strings.TrimLeft(clean[len(prefix):], "/")
			return strings.TrimRight(m.LocalRoot, "/") + "/" + rel, true
		}
	}
	return "", false
}

// ToFarm rewrites everything up to and including the ##_PHASE segment
// to the farm drive, the form render nodes submit with. Paths without
// a phase segment are returned unchanged.
func (m Mapper) ToFarm(path string) string {
	loc := phaseSegmentRE.FindStringSubmatchIndex(path)
	if loc == nil {
		return path
	}
	phase := path[loc[2]:loc[3]]
	rest := path[loc[1]:]
	return m.farmDrive() + ":\\" + phase + "\\" + strings.ReplaceAll(rest, "/", "\\")
}

// PhaseDir rewrites the directory portion after the SH### segment to
// the named phase directory, using the given separator for the result.
// The second return is false when the path has no shot segment.
func PhaseDir(dir, phase, sep string) (string, bool) {
	loc := shotSegmentRE.FindStringSubmatchIndex(dir)
	if loc == nil {
		return "", false
	}
	return dir[:loc[3]] + sep + phase, true
}

func (m Mapper) remoteDrive() string {
	d := strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(m.RemoteDrive), ":"))
	if d == "" {
		d = "S"
	}
	return d
}

func (m Mapper) farmDrive() string {
	d := strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(m.FarmDrive), ":"))
	if d == "" {
		d = "K"
	}
	return d
}
