package tetris

import (
	"math"
	"time"
)

// lineScores is the base award per lock event indexed by rows cleared.
var lineScores = [5]int{0, 100, 300, 500, 800}

const (
	softDropPoints = 1
	hardDropPoints = 2
)

// LineScore returns the points for clearing lines rows at once on level.
// Events of more than four rows score as four.
func LineScore(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	lines = min(lines, len(lineScores)-1)
	return lineScores[lines] * max(level, 1)
}

// LevelFor returns the level reached after lines total cleared rows.
func LevelFor(start, lines, linesPerLevel int) int {
	if linesPerLevel <= 0 {
		return start
	}
	return start + lines/linesPerLevel
}

// GravityInterval returns how long a piece waits before falling one row on
// the given level, following the guideline curve (0.8 - (level-1)*0.007)^(level-1)
// seconds. The curve flattens at level 20.
func GravityInterval(level int) time.Duration {
	level = min(max(level, 1), 20)
	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
	return time.Duration(seconds * float64(time.Second))
}
