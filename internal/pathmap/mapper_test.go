package pathmap

import "testing"

func TestRepair(t *testing.T) {
	m := Mapper{RemoteDrive: "S"}

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "mangled drive form", in: "/s/3212-PREPRODUCTION/shot.blend", want: `S:\3212-PREPRODUCTION\shot.blend`},
		{name: "mixed separators", in: `S:/3212-PREPRODUCTION/shot.blend`, want: `S:\3212-PREPRODUCTION\shot.blend`},
		{name: "already clean", in: `S:\3212-PREPRODUCTION\shot.blend`, want: `S:\3212-PREPRODUCTION\shot.blend`},
		{name: "plain posix untouched", in: "/Volumes/PROJECTS/shot.blend", want: "/Volumes/PROJECTS/shot.blend"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Repair(tc.in); got != tc.want {
				t.Fatalf("Repair(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToRemote(t *testing.T) {
	m := Mapper{RemoteDrive: "S", LocalRoot: "/Volumes/VELKE_PROJEKTY"}

	got, ok := m.ToRemote("/Volumes/VELKE_PROJEKTY/SC030_PLAYGROUND/SH010/shot_v001.blend")
	if !ok || got != `S:\SC030_PLAYGROUND\SH010\shot_v001.blend` {
		t.Fatalf("ToRemote = %q ok=%v", got, ok)
	}

	// Already on the remote drive: untouched.
	got, ok = m.ToRemote(`S:\SC030_PLAYGROUND\shot_v001.blend`)
	if !ok || got != `S:\SC030_PLAYGROUND\shot_v001.blend` {
		t.Fatalf("ToRemote drive path = %q ok=%v", got, ok)
	}

	if _, ok := m.ToRemote("/home/elsewhere/shot.blend"); ok {
		t.Fatal("path outside LocalRoot should not map")
	}

	// A sibling directory sharing the root as a string prefix is
	// outside the mount.
	if got, ok := m.ToRemote("/Volumes/VELKE_PROJEKTY_ARCHIVE/shot_v001.blend"); ok {
		t.Fatalf("sibling-prefix path mapped: %q", got)
	}

	// The mount point itself maps to the bare drive root.
	got, ok = m.ToRemote("/Volumes/VELKE_PROJEKTY")
	if !ok || got != `S:\` {
		t.Fatalf("ToRemote root = %q ok=%v", got, ok)
	}
}

func TestToLocal(t *testing.T) {
	m := Mapper{RemoteDrive: "S", LocalRoot: "/Volumes/VELKE_PROJEKTY"}

	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "backslash drive path", in: `S:\SC030_PLAYGROUND\SH010\shot_v001.blend`, want: "/Volumes/VELKE_PROJEKTY/SC030_PLAYGROUND/SH010/shot_v001.blend", ok: true},
		{name: "forward slash drive path", in: "S:/SC030_PLAYGROUND/shot.blend", want: "/Volumes/VELKE_PROJEKTY/SC030_PLAYGROUND/shot.blend", ok: true},
		{name: "mangled lowercase form", in: "/s/SC030_PLAYGROUND/shot.blend", want: "/Volumes/VELKE_PROJEKTY/SC030_PLAYGROUND/shot.blend", ok: true},
		{name: "not a drive path", in: "/Volumes/OTHER/shot.blend", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.ToLocal(tc.in)
			if ok != tc.ok {
				t.Fatalf("ToLocal(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ToLocal(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToFarm(t *testing.T) {
	m := Mapper{FarmDrive: "K"}

	in := "/x/y/06_PRODUCTION/SC030_PLAYGROUND/SH010/shot_v001.blend"
	want := `K:\06_PRODUCTION\SC030_PLAYGROUND\SH010\shot_v001.blend`
	if got := m.ToFarm(in); got != want {
		t.Fatalf("ToFarm(%q) = %q, want %q", in, got, want)
	}

	// No phase segment: unchanged.
	if got := m.ToFarm("/x/y/shot.blend"); got != "/x/y/shot.blend" {
		t.Fatalf("ToFarm without phase = %q", got)
	}
}

func TestPhaseDir(t *testing.T) {
	got, ok := PhaseDir("/x/SC030_PLAYGROUND/SH010/03_ANIMATION", "00_PUBLISH", "/")
	if !ok || got != "/x/SC030_PLAYGROUND/SH010/00_PUBLISH" {
		t.Fatalf("PhaseDir = %q ok=%v", got, ok)
	}

	// Shot segment at the end of the directory.
	got, ok = PhaseDir("/x/SC030_PLAYGROUND/SH010", "00_PUBLISH", "/")
	if !ok || got != "/x/SC030_PLAYGROUND/SH010/00_PUBLISH" {
		t.Fatalf("PhaseDir trailing shot = %q ok=%v", got, ok)
	}

	if _, ok := PhaseDir("/x/no/shot/here", "00_PUBLISH", "/"); ok {
		t.Fatal("PhaseDir matched a path without SH### segment")
	}
}
