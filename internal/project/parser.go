package project

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Sentinel errors returned by Parse. Both mean the path is unusable for
// that call; there are no partial results to recover.
var (
	// ErrStructureMismatch indicates the SC###_ENV/SH###/##_STAGE
	// segment triple is absent or malformed.
	ErrStructureMismatch = errors.New("no scene/shot/stage structure in path")

	// ErrVersionSuffixMismatch indicates the workfile name does not end
	// in a _v### version token.
	ErrVersionSuffixMismatch = errors.New("workfile version suffix missing")
)

// workfileRE splits a workfile stem into name and version. The name
// match is non-greedy so the version is taken at the first _v boundary
// whose remainder is digits plus optional trailing letters, underscores,
// or hyphens. The _v delimiter is case-sensitive.
var workfileRE = regexp.MustCompile(`^(.+?)_v([0-9]+[A-Za-z_-]*)$`)

// Parser parses convention paths written with a fixed separator.
type Parser struct {
	sep       string
	structure *regexp.Regexp
}

// New returns a Parser that matches paths using the given separator.
// An empty separator selects "/".
func New(separator string) *Parser {
	if separator == "" {
		separator = "/"
	}
	sep := regexp.QuoteMeta(separator)
	pattern := sep + `(SC[0-9]{3}_[A-Za-z]+)` +
		sep + `(SH[0-9]{3})` +
		sep + `([0-9]{2}_[A-Za-z]+)` +
		sep
	return &Parser{
		sep:       separator,
		structure: regexp.MustCompile(pattern),
	}
}

// Platform returns a Parser configured for the host platform's path
// separator.
func Platform() *Parser {
	return New(string(os.PathSeparator))
}

// Separator reports the path separator the parser matches against.
func (p *Parser) Separator() string {
	return p.sep
}

// Parse decomposes a production file path into its Parts.
//
// The scene/shot/stage triple is located by substring search, so the
// path may carry an arbitrary prefix and suffix around it. The final
// path component minus its extension is the workfile and must carry a
// _v version suffix.
func (p *Parser) Parse(path string) (Parts, error) {
	m := p.structure.FindStringSubmatch(path)
	if m == nil {
		return Parts{}, fmt.Errorf("parse %q: %w", path, ErrStructureMismatch)
	}
	scene, shot, stage := m[1], m[2], m[3]

	workfile := p.stem(path)
	wm := workfileRE.FindStringSubmatch(workfile)
	if wm == nil {
		return Parts{}, fmt.Errorf("parse %q: workfile %q: %w", path, workfile, ErrVersionSuffixMismatch)
	}
	name, version := wm[1], wm[2]

	stageNumber, stageName, _ := strings.Cut(stage, "_")
	_, environment, _ := strings.Cut(scene, "_")

	return Parts{
		Scene:           scene,
		SceneNumber:     scene[2:5],
		Shot:            shot,
		ShotNumber:      shot[2:],
		ShotID:          shotID(name),
		Stage:           stage,
		StageNumber:     stageNumber,
		StageName:       stageName,
		EnvironmentName: environment,
		Workfile:        workfile,
		WorkfileName:    name,
		WorkfileVersion: version,
	}, nil
}

// shotID derives the composite shot identifier from the first three
// underscore tokens of the workfile name: sc030_playground_sh010_... ->
// sc030-playground-sh010.
func shotID(workfileName string) string {
	tokens := strings.Split(workfileName, "_")
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.ToLower(strings.Join(tokens, "-"))
}

// stem returns the final path component without its extension, split on
// the parser's configured separator.
func (p *Parser) stem(path string) string {
	base := path
	if i := strings.LastIndex(path, p.sep); i >= 0 {
		base = path[i+len(p.sep):]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
