package gamification

import "math"

// AssessmentXP returns XP for completing an adaptive assessment. Longer
// sessions (more items before convergence) earn slightly more.
func AssessmentXP(itemsAnswered int) int {
	return 50 + 2*itemsAnswered
}

// QuizXP returns XP for a correct quiz answer based on difficulty (0-100).
func QuizXP(difficultyScore int) int {
	if difficultyScore <= 20 {
		return 5
	}
	if difficultyScore <= 40 {
		return 8
	}
	if difficultyScore <= 60 {
		return 10
	}
	if difficultyScore <= 80 {
		return 13
	}
	return 16
}

// ChallengeBonus adds XP when a question sits above the user's mastery.
func ChallengeBonus(mastery, difficultyScore int) int {
	gap := difficultyScore - mastery
	if gap <= 0 {
		return 0
	}
	if gap <= 10 {
		return 2
	}
	if gap <= 20 {
		return 5
	}
	return 8
}

// PlanGoalXP returns XP for closing one development-plan goal.
func PlanGoalXP() int { return 20 }

// PlanCompletionXP returns XP for completing a whole development plan.
func PlanCompletionXP() int { return 100 }

// ContentXP returns XP for finishing a learning-content entry, within
// sane bounds even if the frontmatter declares something wild.
func ContentXP(declared int) int {
	if declared <= 0 {
		return 10
	}
	if declared > 50 {
		return 50
	}
	return declared
}

// StreakMultiplier returns the XP multiplier for a daily streak.
func StreakMultiplier(currentStreak int) float64 {
	if currentStreak < 3 {
		return 1.0
	}
	if currentStreak < 7 {
		return 1.15
	}
	if currentStreak < 14 {
		return 1.25
	}
	if currentStreak < 30 {
		return 1.5
	}
	return 2.0
}

// ApplyStreakMultiplier rounds the multiplied XP to the nearest integer.
func ApplyStreakMultiplier(xp int, multiplier float64) int {
	return int(math.Round(float64(xp) * multiplier))
}

// XPForLevel returns the total XP required to reach a level.
// The curve is quadratic: each level costs 100 XP more than the last.
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level - 1)
	return 50 * n * (n + 1)
}

// LevelForXP returns the level a total XP amount corresponds to.
func LevelForXP(totalXP int64) int {
	level := 1
	for XPForLevel(level+1) <= totalXP {
		level++
	}
	return level
}
