package gamification

import "testing"

func TestAssessmentXP(t *testing.T) {
	tests := []struct {
		items int
		want  int
	}{
		{20, 90},
		{25, 100},
		{40, 130},
	}
	for _, tt := range tests {
		if got := AssessmentXP(tt.items); got != tt.want {
			t.Errorf("AssessmentXP(%d) = %d, want %d", tt.items, got, tt.want)
		}
	}
}

func TestQuizXP(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{10, 5},
		{20, 5},
		{21, 8},
		{50, 10},
		{75, 13},
		{95, 16},
	}
	for _, tt := range tests {
		if got := QuizXP(tt.difficulty); got != tt.want {
			t.Errorf("QuizXP(%d) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestChallengeBonus(t *testing.T) {
	tests := []struct {
		mastery    int
		difficulty int
		want       int
	}{
		{50, 40, 0},  // easier than mastery
		{50, 50, 0},  // at mastery
		{50, 55, 2},  // slightly above
		{50, 65, 5},  // above
		{50, 80, 8},  // far above
	}
	for _, tt := range tests {
		if got := ChallengeBonus(tt.mastery, tt.difficulty); got != tt.want {
			t.Errorf("ChallengeBonus(%d, %d) = %d, want %d", tt.mastery, tt.difficulty, got, tt.want)
		}
	}
}

func TestContentXPBounds(t *testing.T) {
	if got := ContentXP(0); got != 10 {
		t.Errorf("ContentXP(0) = %d, want default 10", got)
	}
	if got := ContentXP(-5); got != 10 {
		t.Errorf("ContentXP(-5) = %d, want default 10", got)
	}
	if got := ContentXP(25); got != 25 {
		t.Errorf("ContentXP(25) = %d, want 25", got)
	}
	if got := ContentXP(999); got != 50 {
		t.Errorf("ContentXP(999) = %d, want cap 50", got)
	}
}

func TestStreakMultiplier(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 1.15},
		{7, 1.25},
		{14, 1.5},
		{30, 2.0},
		{365, 2.0},
	}
	for _, tt := range tests {
		if got := StreakMultiplier(tt.streak); got != tt.want {
			t.Errorf("StreakMultiplier(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}

func TestApplyStreakMultiplier(t *testing.T) {
	if got := ApplyStreakMultiplier(10, 1.15); got != 12 {
		t.Errorf("ApplyStreakMultiplier(10, 1.15) = %d, want 12", got)
	}
	if got := ApplyStreakMultiplier(10, 1.0); got != 10 {
		t.Errorf("ApplyStreakMultiplier(10, 1.0) = %d, want 10", got)
	}
}

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{1, 0},
		{2, 100},
		{3, 300},
		{4, 600},
		{5, 1000},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{1000, 5},
		{1001, 5},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 50; level++ {
		threshold := XPForLevel(level)
		if got := LevelForXP(threshold); got != level {
			t.Errorf("LevelForXP(XPForLevel(%d)) = %d, want %d", level, got, level)
		}
		if level > 1 {
			if got := LevelForXP(threshold - 1); got != level-1 {
				t.Errorf("LevelForXP(%d) = %d, want %d", threshold-1, got, level-1)
			}
		}
	}
}
