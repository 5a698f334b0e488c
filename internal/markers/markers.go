// Package markers builds the timeline marker set a shot needs for
// camera export. Markers are plain name/frame pairs; the host
// application's scripts consume them and place them on its timeline.
package markers

import (
	"fmt"

	"slate/internal/project"
)

// Kind labels a timeline marker.
type Kind string

const (
	Start Kind = "START"
	End   Kind = "END"
	In    Kind = "IN"
	Out   Kind = "OUT"
)

// Marker is a named frame position on the shot timeline.
type Marker struct {
	Name  string `json:"name"`
	Frame int    `json:"frame"`
}

// Outer builds a camera range marker:
//
//	CAM_030_PLAYGROUND_SH010_START
func Outer(p project.Parts, kind Kind, frame int) Marker {
	return Marker{
		Name:  fmt.Sprintf("CAM_%s_%s_%s_%s", p.SceneNumber, p.EnvironmentName, p.Shot, kind),
		Frame: frame,
	}
}

// Inner builds an edit range marker; its name is the kind itself.
func Inner(kind Kind, frame int) Marker {
	return Marker{Name: string(kind), Frame: frame}
}

// ShotPlan assembles the ordered marker set for a shot: the START/END
// outer pair plus optional IN/OUT cut markers. Cut markers are emitted
// when cutIn/cutOut are non-negative.
func ShotPlan(p project.Parts, frameStart, frameEnd, cutIn, cutOut int) []Marker {
	plan := []Marker{Outer(p, Start, frameStart)}
	if cutIn >= 0 {
		plan = append(plan, Inner(In, cutIn))
	}
	if cutOut >= 0 {
		plan = append(plan, Inner(Out, cutOut))
	}
	return append(plan, Outer(p, End, frameEnd))
}
