// Package workfile manipulates versioned workfile and asset-file names.
//
// Two conventions live here. Shot workfiles carry an underscore version
// suffix (name_v001.blend) and only ever need their version bumped.
// Asset files follow PROJECT-ASSET-flags-v###[-comment].ext and support
// incremental saves plus unversioned hero copies.
package workfile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoVersion indicates the name carries no recognized version token.
	ErrNoVersion = errors.New("no version token in filename")

	// ErrBadShape indicates an asset filename has too few hyphen tokens
	// before its version flag.
	ErrBadShape = errors.New("asset filename needs PROJECT-ASSET-flags before version")
)

var (
	underscoreVersionRE = regexp.MustCompile(`^(.+?)_v([0-9]+)([A-Za-z_-]*)$`)
	hyphenVersionRE     = regexp.MustCompile(`-v([0-9]{3,})`)
	commentSanitizeRE   = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// Increment bumps the _v### version of a shot workfile name, keeping
// the zero padding, any trailing version annotation, and the extension.
func Increment(filename string) (string, error) {
	stem := filename
	ext := ""
	if i := strings.LastIndex(filename, "."); i > 0 {
		stem, ext = filename[:i], filename[i:]
	}

	m := underscoreVersionRE.FindStringSubmatch(stem)
	if m == nil {
		return "", fmt.Errorf("increment %q: %w", filename, ErrNoVersion)
	}
	name, digits, annotation := m[1], m[2], m[3]
	return name + "_v" + bumpPadded(digits) + annotation + ext, nil
}

// Name is a parsed asset filename of the shape
// PROJECT-ASSET-flags-v###[-comment].ext.
type Name struct {
	Project string
	Asset   string
	Flags   string
	Version int
	Comment string
	Ext     string
}

// ParseName decomposes an asset filename. The version flag must be at
// least three digits; everything after it is treated as a free-form
// comment.
func ParseName(filename string) (Name, error) {
	stem := filename
	ext := ""
	if i := strings.LastIndex(filename, "."); i > 0 {
		stem, ext = filename[:i], filename[i:]
	}

	loc := hyphenVersionRE.FindStringSubmatchIndex(stem)
	if loc == nil {
		return Name{}, fmt.Errorf("parse %q: %w", filename, ErrNoVersion)
	}
	digits := stem[loc[2]:loc[3]]

	before := stem[:loc[0]]
	tokens := strings.Split(before, "-")
	if len(tokens) < 3 {
		return Name{}, fmt.Errorf("parse %q: %w", filename, ErrBadShape)
	}

	version := 0
	for _, r := range digits {
		version = version*10 + int(r-'0')
	}

	comment := strings.TrimPrefix(stem[loc[1]:], "-")

	return Name{
		Project: strings.Join(tokens[:len(tokens)-2], "-"),
		Asset:   tokens[len(tokens)-2],
		Flags:   tokens[len(tokens)-1],
		Version: version,
		Comment: comment,
		Ext:     ext,
	}, nil
}

// Increment returns the filename for the next version, replacing the
// comment with the provided one (sanitized; empty drops the comment).
func (n Name) Increment(comment string) string {
	base := fmt.Sprintf("%s-%s-%s-v%03d", n.Project, n.Asset, n.Flags, n.Version+1)
	if c := SanitizeComment(comment); c != "" {
		base += "-" + c
	}
	return base + n.Ext
}

// Hero returns the unversioned master filename for the asset.
func (n Name) Hero() string {
	return fmt.Sprintf("%s-%s-%s%s", n.Project, n.Asset, n.Flags, n.Ext)
}

// SanitizeComment replaces every character outside [A-Za-z0-9_-] with
// an underscore so the comment is safe inside a filename.
func SanitizeComment(comment string) string {
	return commentSanitizeRE.ReplaceAllString(strings.TrimSpace(comment), "_")
}

// bumpPadded increments a zero-padded digit string, preserving width
// unless the increment overflows it.
func bumpPadded(digits string) string {
	value := 0
	for _, r := range digits {
		value = value*10 + int(r-'0')
	}
	return fmt.Sprintf("%0*d", len(digits), value+1)
}
