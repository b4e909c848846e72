package utils

import "testing"

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points       int
		wantLevel    int
		wantProgress int
	}{
		{-5, 1, 0},
		{0, 1, 0},
		{50, 1, 50},
		{99, 1, 99},
		{100, 2, 0},
		{150, 2, 25},
		{299, 2, 99},
		{300, 3, 0},
		{450, 3, 50},
		{600, 4, 0},
	}
	for _, c := range cases {
		level, progress := LevelForPoints(c.points)
		if level != c.wantLevel || progress != c.wantProgress {
			t.Fatalf("LevelForPoints(%d) = (%d, %d), want (%d, %d)",
				c.points, level, progress, c.wantLevel, c.wantProgress)
		}
	}
}

func TestLevelForPoints_ProgressBounds(t *testing.T) {
	for p := 0; p < 2000; p++ {
		level, progress := LevelForPoints(p)
		if level < 1 {
			t.Fatalf("points %d: level %d < 1", p, level)
		}
		if progress < 0 || progress > 100 {
			t.Fatalf("points %d: progress %d out of range", p, progress)
		}
	}
}

func TestCapPoints(t *testing.T) {
	if got := CapPoints(15, 10); got != 10 {
		t.Fatalf("CapPoints(15, 10) = %d, want 10", got)
	}
	if got := CapPoints(3, 10); got != 3 {
		t.Fatalf("CapPoints(3, 10) = %d, want 3", got)
	}
	if got := CapPoints(-2, 10); got != 0 {
		t.Fatalf("CapPoints(-2, 10) = %d, want 0", got)
	}
	if got := CapPoints(10, 10); got != 10 {
		t.Fatalf("CapPoints(10, 10) = %d, want 10", got)
	}
}
