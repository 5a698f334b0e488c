package project

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parts describes a parsed production file path. Every field is a
// non-empty string when parsing succeeds; the value carries no
// reference to anything outside the input path.
type Parts struct {
	Scene           string `json:"scene"`            // SC030_PLAYGROUND
	SceneNumber     string `json:"scene_number"`     // 030
	Shot            string `json:"shot"`             // SH010
	ShotNumber      string `json:"shot_number"`      // 010
	ShotID          string `json:"shot_id"`          // sc030-playground-sh010
	Stage           string `json:"stage"`            // 03_ANIMATION
	StageNumber     string `json:"stage_number"`     // 03
	StageName       string `json:"stage_name"`       // ANIMATION
	EnvironmentName string `json:"environment_name"` // PLAYGROUND
	Workfile        string `json:"workfile"`         // sc030_playground_sh010_animation_v001
	WorkfileName    string `json:"workfile_name"`    // sc030_playground_sh010_animation
	WorkfileVersion string `json:"workfile_version"` // 001
}

// DisplayEnvironment returns the environment name title-cased for
// human-facing output (PLAYGROUND -> Playground).
func DisplayEnvironment(p Parts) string {
	return cases.Title(language.Und).String(strings.ToLower(p.EnvironmentName))
}
