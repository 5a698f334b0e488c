// Package project parses production file paths that follow the studio
// naming convention into their scene, shot, stage, and workfile parts.
//
// A convention path looks like:
//
//	/x/06_PRODUCTION/SC030_PLAYGROUND/SH010/03_ANIMATION/sc030_playground_sh010_animation_v001.blend
//
// Parsing is a pure string transform: no filesystem access, no host
// application state. The Parser carries the path separator it matches
// against; feeding it paths written with a different separator is a
// precondition violation and fails with ErrStructureMismatch rather
// than being silently repaired.
package project
