package engine

import "time"

// Shadow Mode focus sessions grant a flat completion bonus, with an
// extra reward for sessions longer than the default block.
const (
	FocusSessionXP      = 75
	FocusLongBonusXP    = 25
	FocusDefaultMinutes = 25
)

// FocusXP returns the XP earned for a completed focus session of the
// given length. The long-session bonus applies past the default block.
func FocusXP(duration time.Duration) int {
	xp := FocusSessionXP
	if duration > FocusDefaultMinutes*time.Minute {
		xp += FocusLongBonusXP
	}
	return xp
}
