package engine

// RankDef is one row of the rank threshold table. MinLevel values are
// ascending and ties resolve to the higher rank.
type RankDef struct {
	Rank     string
	Title    string
	Color    string // lipgloss-compatible ANSI color code
	MinLevel int
}

// rankTable is ordered by ascending MinLevel. Levels beyond the top cutoff
// clamp to the top rank.
var rankTable = []RankDef{
	{Rank: "E", Title: "Novice", Color: "244", MinLevel: 1},
	{Rank: "D", Title: "Apprentice", Color: "34", MinLevel: 5},
	{Rank: "C", Title: "Adept", Color: "39", MinLevel: 10},
	{Rank: "B", Title: "Expert", Color: "63", MinLevel: 15},
	{Rank: "A", Title: "Elite", Color: "205", MinLevel: 20},
	{Rank: "S", Title: "Master", Color: "214", MinLevel: 30},
	{Rank: "SS", Title: "Grandmaster", Color: "196", MinLevel: 40},
	{Rank: "Monarch", Title: "Shadow Monarch", Color: "220", MinLevel: 50},
}

// RankInfo is the derived rank for a cumulative XP value.
type RankInfo struct {
	Rank        string
	Title       string
	Color       string
	CurrentXP   int
	NextLevelXP int // threshold of the next rank's starting level; 0 at the top rank
}

// GetRankInfo maps total XP through the rank threshold table: the highest
// rank whose level cutoff is <= the derived level wins. Negative XP clamps
// to 0 (rank Novice).
func GetRankInfo(totalXP int) RankInfo {
	if totalXP < 0 {
		totalXP = 0
	}
	level := GetLevelInfo(totalXP).Level

	idx := 0
	for i, def := range rankTable {
		if level >= def.MinLevel {
			idx = i
		}
	}

	info := RankInfo{
		Rank:      rankTable[idx].Rank,
		Title:     rankTable[idx].Title,
		Color:     rankTable[idx].Color,
		CurrentXP: totalXP,
	}
	if idx+1 < len(rankTable) {
		info.NextLevelXP = XPForLevel(rankTable[idx+1].MinLevel)
	}
	return info
}

// Ranks returns the full threshold table, lowest first.
func Ranks() []RankDef {
	out := make([]RankDef, len(rankTable))
	copy(out, rankTable)
	return out
}
