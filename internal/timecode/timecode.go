// Package timecode converts between frame counts and HH:MM:SS:FF
// timecodes and reads or stamps the timecode tag embedded in video
// containers.
package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadTimecode indicates a string is not a HH:MM:SS:FF timecode.
var ErrBadTimecode = errors.New("malformed timecode")

var timecodeRE = regexp.MustCompile(`^([0-9]{2}):([0-9]{2}):([0-9]{2})[:;]([0-9]{2})$`)

// Timecode is a non-drop-frame HH:MM:SS:FF timestamp.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
	Frames  int
}

// Parse reads a HH:MM:SS:FF string. A semicolon frame separator is
// accepted on input and normalized to a colon on output.
func Parse(s string) (Timecode, error) {
	m := timecodeRE.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("parse %q: %w", s, ErrBadTimecode)
	}
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	return Timecode{
		Hours:   atoi(m[1]),
		Minutes: atoi(m[2]),
		Seconds: atoi(m[3]),
		Frames:  atoi(m[4]),
	}, nil
}

// FromFrames converts an absolute frame number to a timecode at the
// given frame rate. fps must be positive.
func FromFrames(frame, fps int) (Timecode, error) {
	if fps <= 0 {
		return Timecode{}, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if frame < 0 {
		return Timecode{}, fmt.Errorf("frame must be non-negative, got %d", frame)
	}
	return Timecode{
		Hours:   frame / (fps * 3600),
		Minutes: frame / (fps * 60) % 60,
		Seconds: frame / fps % 60,
		Frames:  frame % fps,
	}, nil
}

// FrameNumber converts the timecode back to an absolute frame number
// at the given frame rate. The frames field must lie in [0, fps);
// this is the first point where the rate is known, so the range check
// lives here rather than in Parse.
func (t Timecode) FrameNumber(fps int) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if t.Frames < 0 || t.Frames >= fps {
		return 0, fmt.Errorf("frames field %d out of range at %d fps: %w", t.Frames, fps, ErrBadTimecode)
	}
	return t.Frames + (t.Seconds+t.Minutes*60+t.Hours*3600)*fps, nil
}

// String formats the timecode as HH:MM:SS:FF.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds, t.Frames)
}
