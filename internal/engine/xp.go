package engine

import "github.com/talha426/Shadow-Console-Track/internal/storage"

// LevelSize is the XP span of a single level band: level = totalXP/LevelSize + 1.
const LevelSize = 1000

// priorityXP maps each letter rank to its fixed reward.
var priorityXP = map[Priority]int{
	PriorityE: 5,
	PriorityD: 10,
	PriorityC: 20,
	PriorityB: 35,
	PriorityA: 50,
	PriorityS: 75,
}

// XPForPriority returns the fixed reward for a priority tier.
// Unknown priorities fall back to the default tier.
func XPForPriority(p Priority) int {
	if xp, ok := priorityXP[p]; ok {
		return xp
	}
	return priorityXP[DefaultPriority]
}

// CalculateTaskXP returns the XP a mission grants on completion. It is a
// pure function of the mission's priority; title, dates and everything
// else are ignored.
func CalculateTaskXP(t storage.Task) int {
	return XPForPriority(PriorityFromStored(t.Priority))
}

// LevelInfo describes the player's position within the current level band.
type LevelInfo struct {
	Level     int
	CurrentXP int     // XP earned inside the current band
	XPToNext  int     // total span of the band
	Progress  float64 // percent of the band earned, in [0,100]
}

// GetLevelInfo computes the level curve position for a cumulative XP value.
// Negative input is clamped to 0, so totalXP=0 always yields level 1 with
// zero progress.
func GetLevelInfo(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}
	level := totalXP/LevelSize + 1
	currentXP := totalXP % LevelSize
	progress := float64(currentXP) / float64(LevelSize) * 100
	return LevelInfo{
		Level:     level,
		CurrentXP: currentXP,
		XPToNext:  LevelSize,
		Progress:  progress,
	}
}

// XPForLevel returns the cumulative XP threshold at which the given level
// starts. Level 1 starts at 0.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * LevelSize
}
