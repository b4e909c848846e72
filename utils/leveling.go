package utils

// Leveling: advancing out of level n costs n*100 lifetime points, so level 2
// is reached at 100 points, level 3 at 300, level 4 at 600 and so on.

// LevelForPoints maps lifetime points to (level, progress), where progress is
// the percentage (0-100) of the way through the current level.
func LevelForPoints(totalPoints int) (level, progress int) {
	if totalPoints < 0 {
		totalPoints = 0
	}
	level = 1
	remaining := totalPoints
	for remaining >= level*100 {
		remaining -= level * 100
		level++
	}
	progress = remaining / level // remaining * 100 / (level * 100)
	return level, progress
}

// CapPoints clamps a teacher-entered point value to [0, maxPoints].
func CapPoints(requested, maxPoints int) int {
	if requested < 0 {
		return 0
	}
	if requested > maxPoints {
		return maxPoints
	}
	return requested
}
