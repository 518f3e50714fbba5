// Package xpmath holds the leveling curve. The curve is part of the data
// contract: stored XP totals only mean something relative to it, so changes
// here re-level every member.
package xpmath

// XPForLevel returns the total XP required to hold the given level:
// 50L² + 100L. Level 0 costs nothing.
func XPForLevel(level int) int64 {
	l := int64(level)
	return 50*l*l + 100*l
}

// LevelFromXP returns the highest level the XP total covers.
func LevelFromXP(xp int64) int {
	level := 0
	for xp >= XPForLevel(level+1) {
		level++
	}
	return level
}
