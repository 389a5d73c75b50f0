package quiz

import "math"

// ExpectedAccuracy returns the probability a user with the given mastery
// gets a question with the given difficulty correct.
// Uses a sigmoid centered on 0 with scaling factor 12.5.
func ExpectedAccuracy(mastery, difficultyScore int) float64 {
	x := float64(mastery-difficultyScore) / 12.5
	return 1.0 / (1.0 + math.Exp(-x))
}

// KFactor returns the adjustment strength based on how many questions
// the user has answered on this topic.
func KFactor(questionsAnswered int) float64 {
	if questionsAnswered < 20 {
		return 3.0 // New to the topic: fast convergence
	}
	if questionsAnswered < 100 {
		return 2.0 // Intermediate: moderate adjustment
	}
	return 1.0 // Mature: stable, small adjustments
}

// ComputeNewMastery calculates the updated mastery score after answering.
func ComputeNewMastery(currentMastery, difficultyScore int, correct bool, questionsAnswered int) int {
	expected := ExpectedAccuracy(currentMastery, difficultyScore)
	k := KFactor(questionsAnswered)

	var result float64
	if correct {
		result = 1.0
	}

	adjustment := (result - expected) * k
	newMastery := float64(currentMastery) + adjustment

	if newMastery < 0 {
		newMastery = 0
	}
	if newMastery > 100 {
		newMastery = 100
	}

	return int(math.Round(newMastery))
}

// TargetDifficulty computes the center of the difficulty window
// based on topic mastery and the user's slider preference.
//
// slider=0:   target = mastery - 15  (all easier)
// slider=50:  target = mastery       (centered on mastery)
// slider=100: target = mastery + 15  (all harder)
func TargetDifficulty(mastery, slider int) int {
	offset := float64(slider-50) * 0.3
	target := float64(mastery) + offset
	if target < 0 {
		target = 0
	}
	if target > 100 {
		target = 100
	}
	return int(math.Round(target))
}
