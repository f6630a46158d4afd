package engine

import (
	"testing"
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func TestGetLevelInfoBoundaries(t *testing.T) {
	info := GetLevelInfo(0)
	if info.Level != 1 {
		t.Fatalf("level at 0 XP = %d, want 1", info.Level)
	}
	if info.Progress != 0 {
		t.Fatalf("progress at 0 XP = %v, want 0", info.Progress)
	}

	if got := GetLevelInfo(999).Level; got != 1 {
		t.Fatalf("level at 999 = %d, want 1", got)
	}
	if got := GetLevelInfo(1000).Level; got != 2 {
		t.Fatalf("level at 1000 = %d, want 2", got)
	}
	if got := GetLevelInfo(-50); got.Level != 1 || got.Progress != 0 {
		t.Fatalf("negative XP not clamped: %+v", got)
	}
}

func TestGetLevelInfoMonotone(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 20000; xp += 137 {
		level := GetLevelInfo(xp).Level
		if level < prev {
			t.Fatalf("level decreased at xp=%d: %d < %d", xp, level, prev)
		}
		prev = level
	}
}

func TestCalculateTaskXPPureInPriority(t *testing.T) {
	due := time.Now().AddDate(0, 0, 3)
	a := storage.Task{Title: "Write report", Priority: "A", DueDate: &due}
	b := storage.Task{Title: "Something else entirely", Description: "notes", Priority: "A"}
	if CalculateTaskXP(a) != CalculateTaskXP(b) {
		t.Fatalf("XP depends on more than priority: %d vs %d", CalculateTaskXP(a), CalculateTaskXP(b))
	}

	want := map[string]int{"E": 5, "D": 10, "C": 20, "B": 35, "A": 50, "S": 75}
	for p, xp := range want {
		if got := CalculateTaskXP(storage.Task{Priority: p}); got != xp {
			t.Fatalf("XP for %s = %d, want %d", p, got, xp)
		}
	}

	// Legacy word forms map through the same table.
	if got := CalculateTaskXP(storage.Task{Priority: "urgent"}); got != 50 {
		t.Fatalf("XP for legacy urgent = %d, want 50 (A)", got)
	}
	if got := CalculateTaskXP(storage.Task{Priority: "Boss"}); got != 75 {
		t.Fatalf("XP for legacy Boss = %d, want 75 (S)", got)
	}
}

func TestGetRankInfoThresholds(t *testing.T) {
	cases := []struct {
		totalXP int
		title   string
	}{
		{0, "Novice"},
		{XPForLevel(5) - 1, "Novice"},
		{XPForLevel(5), "Apprentice"},
		{XPForLevel(10), "Adept"},
		{XPForLevel(50), "Shadow Monarch"},
		{XPForLevel(500), "Shadow Monarch"}, // clamps at the top
		{-10, "Novice"},
	}
	for _, tc := range cases {
		if got := GetRankInfo(tc.totalXP).Title; got != tc.title {
			t.Fatalf("rank at %d XP = %q, want %q", tc.totalXP, got, tc.title)
		}
	}
}

func TestGetRankInfoMonotone(t *testing.T) {
	ranks := Ranks()
	idxOf := func(title string) int {
		for i, r := range ranks {
			if r.Title == title {
				return i
			}
		}
		t.Fatalf("unknown rank title %q", title)
		return -1
	}

	prev := 0
	for xp := 0; xp <= XPForLevel(60); xp += 531 {
		idx := idxOf(GetRankInfo(xp).Title)
		if idx < prev {
			t.Fatalf("rank decreased at xp=%d", xp)
		}
		prev = idx
	}
}

func TestParsePriority(t *testing.T) {
	for input, want := range map[string]Priority{
		"s": PriorityS, "S": PriorityS, "e": PriorityE,
		"low": PriorityD, "medium": PriorityC, "high": PriorityB,
		"urgent": PriorityA, "Boss": PriorityS,
	} {
		got, err := ParsePriority(input)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParsePriority(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParsePriority("mega"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}
