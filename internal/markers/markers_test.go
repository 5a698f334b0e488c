package markers

import (
	"testing"

	"slate/internal/project"
)

var parts = project.Parts{
	Scene:           "SC070_BRANCH",
	SceneNumber:     "070",
	Shot:            "SH050",
	ShotNumber:      "050",
	EnvironmentName: "BRANCH",
}

func TestOuter(t *testing.T) {
	m := Outer(parts, Start, 1001)
	if m.Name != "CAM_070_BRANCH_SH050_START" {
		t.Fatalf("name = %q", m.Name)
	}
	if m.Frame != 1001 {
		t.Fatalf("frame = %d", m.Frame)
	}

	if m := Outer(parts, End, 1100); m.Name != "CAM_070_BRANCH_SH050_END" {
		t.Fatalf("end name = %q", m.Name)
	}
}

func TestInner(t *testing.T) {
	if m := Inner(In, 1010); m.Name != "IN" || m.Frame != 1010 {
		t.Fatalf("inner = %+v", m)
	}
}

func TestShotPlan(t *testing.T) {
	plan := ShotPlan(parts, 1001, 1100, 1010, 1090)
	names := make([]string, 0, len(plan))
	for _, m := range plan {
		names = append(names, m.Name)
	}
	want := []string{"CAM_070_BRANCH_SH050_START", "IN", "OUT", "CAM_070_BRANCH_SH050_END"}
	if len(names) != len(want) {
		t.Fatalf("plan = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("plan[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Without cut markers only the outer pair remains.
	plan = ShotPlan(parts, 1001, 1100, -1, -1)
	if len(plan) != 2 || plan[0].Name != "CAM_070_BRANCH_SH050_START" || plan[1].Name != "CAM_070_BRANCH_SH050_END" {
		t.Fatalf("outer-only plan = %+v", plan)
	}
}
