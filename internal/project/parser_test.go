package project

import (
	"errors"
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	parser := New("/")

	cases := []struct {
		name string
		path string
		want Parts
	}{
		{
			name: "documented example",
			path: "/x/06_PRODUCTION/SC030_PLAYGROUND/SH010/03_ANIMATION/sc030_playground_sh010_animation_v001.blend",
			want: Parts{
				Scene:           "SC030_PLAYGROUND",
				SceneNumber:     "030",
				Shot:            "SH010",
				ShotNumber:      "010",
				ShotID:          "sc030-playground-sh010",
				Stage:           "03_ANIMATION",
				StageNumber:     "03",
				StageName:       "ANIMATION",
				EnvironmentName: "PLAYGROUND",
				Workfile:        "sc030_playground_sh010_animation_v001",
				WorkfileName:    "sc030_playground_sh010_animation",
				WorkfileVersion: "001",
			},
		},
		{
			name: "stage subfolder between stage and workfile",
			path: "/x/06_PRODUCTION/SC070_BRANCH/SH070/07_FINAL/ART/sc070_branch_sh070_finalart_v002.blend",
			want: Parts{
				Scene:           "SC070_BRANCH",
				SceneNumber:     "070",
				Shot:            "SH070",
				ShotNumber:      "070",
				ShotID:          "sc070-branch-sh070",
				Stage:           "07_FINAL",
				StageNumber:     "07",
				StageName:       "FINAL",
				EnvironmentName: "BRANCH",
				Workfile:        "sc070_branch_sh070_finalart_v002",
				WorkfileName:    "sc070_branch_sh070_finalart",
				WorkfileVersion: "002",
			},
		},
		{
			name: "version with trailing letters",
			path: "/p/SC150_FOREST/SH080/05_LIGHT/sc150_forest_sh080_light_v012b.blend",
			want: Parts{
				Scene:           "SC150_FOREST",
				SceneNumber:     "150",
				Shot:            "SH080",
				ShotNumber:      "080",
				ShotID:          "sc150-forest-sh080",
				Stage:           "05_LIGHT",
				StageNumber:     "05",
				StageName:       "LIGHT",
				EnvironmentName: "FOREST",
				Workfile:        "sc150_forest_sh080_light_v012b",
				WorkfileName:    "sc150_forest_sh080_light",
				WorkfileVersion: "012b",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.Parse(tc.path)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.path, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q)\n got  %+v\n want %+v", tc.path, got, tc.want)
			}
		})
	}
}

func TestParseFailures(t *testing.T) {
	parser := New("/")

	cases := []struct {
		name string
		path string
		want error
	}{
		{
			name: "missing shot segment",
			path: "/x/06_PRODUCTION/SC030_PLAYGROUND/03_ANIMATION/sc030_playground_sh010_animation_v001.blend",
			want: ErrStructureMismatch,
		},
		{
			name: "missing stage segment",
			path: "/x/SC030_PLAYGROUND/SH010/sc030_playground_sh010_animation_v001.blend",
			want: ErrStructureMismatch,
		},
		{
			name: "scene number too short",
			path: "/x/SC30_PLAYGROUND/SH010/03_ANIMATION/f_v001.blend",
			want: ErrStructureMismatch,
		},
		{
			name: "no version suffix",
			path: "/x/SC030_PLAYGROUND/SH010/03_ANIMATION/sc030_playground_sh010_animation.blend",
			want: ErrVersionSuffixMismatch,
		},
		{
			name: "uppercase version delimiter",
			path: "/x/SC030_PLAYGROUND/SH010/03_ANIMATION/sc030_playground_sh010_animation_V001.blend",
			want: ErrVersionSuffixMismatch,
		},
		{
			name: "version without digits",
			path: "/x/SC030_PLAYGROUND/SH010/03_ANIMATION/sc030_playground_sh010_animation_vfinal.blend",
			want: ErrVersionSuffixMismatch,
		},
		{
			name: "backslash path on forward-slash parser",
			path: `C:\x\SC030_PLAYGROUND\SH010\03_ANIMATION\sc030_playground_sh010_animation_v001.blend`,
			want: ErrStructureMismatch,
		},
		{
			name: "empty path",
			path: "",
			want: ErrStructureMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(tc.path)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tc.path, tc.want)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.path, err, tc.want)
			}
		})
	}
}

func TestParseBackslashSeparator(t *testing.T) {
	parser := New(`\`)
	path := `C:\xxx\06_PRODUCTION\SC030_PLAYGROUND\SH010\03_ANIMATION\sc030_playground_sh010_animation_v001.blend`

	got, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", path, err)
	}
	if got.Scene != "SC030_PLAYGROUND" || got.Workfile != "sc030_playground_sh010_animation_v001" {
		t.Fatalf("unexpected parts: %+v", got)
	}

	// The same path must not parse on a forward-slash parser.
	if _, err := New("/").Parse(path); !errors.Is(err, ErrStructureMismatch) {
		t.Fatalf("forward-slash parser accepted backslash path: %v", err)
	}
}

// Re-parsing the derived workfile placed back into a synthetic path of
// the documented shape reproduces the same numeric parts.
func TestParseIdempotent(t *testing.T) {
	parser := New("/")
	path := "/render/share/06_PRODUCTION/SC045_HARBOR/SH120/02_LAYOUT/sc045_harbor_sh120_layout_v007.blend"

	first, err := parser.Parse(path)
	if err != nil {
		t.Fatal(err)
	}

	synthetic := fmt.Sprintf("/other/%s/%s/%s/%s.blend", first.Scene, first.Shot, first.Stage, first.Workfile)
	second, err := parser.Parse(synthetic)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", synthetic, err)
	}

	if second.SceneNumber != first.SceneNumber ||
		second.ShotNumber != first.ShotNumber ||
		second.StageNumber != first.StageNumber {
		t.Fatalf("re-parse diverged: first %+v, second %+v", first, second)
	}

	if len(second.SceneNumber) != 3 || len(second.ShotNumber) != 3 {
		t.Fatalf("scene/shot numbers not 3-character: %q %q", second.SceneNumber, second.ShotNumber)
	}
	if second.StageNumber+"_"+second.StageName != second.Stage {
		t.Fatalf("stage reconstruction failed: %q + %q != %q", second.StageNumber, second.StageName, second.Stage)
	}
}

func TestDisplayEnvironment(t *testing.T) {
	p := Parts{EnvironmentName: "PLAYGROUND"}
	if got := DisplayEnvironment(p); got != "Playground" {
		t.Fatalf("DisplayEnvironment = %q, want Playground", got)
	}
}
