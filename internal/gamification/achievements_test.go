package gamification

import (
	"testing"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func TestCheckAchievementsFresh(t *testing.T) {
	gam := &models.UserGamification{Level: 1}
	if earned := CheckAchievements(gam); len(earned) != 0 {
		t.Errorf("fresh user earned %v, want none", earned)
	}
}

func TestCheckAchievementsFirstAssessment(t *testing.T) {
	gam := &models.UserGamification{AssessmentsCompleted: 1, Level: 1}
	earned := toSet(CheckAchievements(gam))
	if !earned["first_assessment"] {
		t.Error("expected first_assessment")
	}
	if earned["assessments_3"] {
		t.Error("assessments_3 should require 3 completions")
	}
}

func TestCheckAchievementsThresholds(t *testing.T) {
	gam := &models.UserGamification{
		AssessmentsCompleted:   3,
		CurrentStreak:          14,
		QuestionsAnsweredTotal: 250,
		TotalXP:                10000,
		PlansCompleted:         5,
		ContentCompleted:       10,
		Level:                  5,
	}
	earned := toSet(CheckAchievements(gam))

	want := []string{
		"first_assessment", "assessments_3",
		"streak_3", "streak_7", "streak_14",
		"questions_50", "questions_250",
		"xp_1000", "xp_10000",
		"plan_first", "plans_5",
		"content_10",
		"level_5",
	}
	for _, key := range want {
		if !earned[key] {
			t.Errorf("expected %s to be earned", key)
		}
	}

	notWant := []string{"streak_30", "questions_1000", "xp_50000", "content_50", "level_10"}
	for _, key := range notWant {
		if earned[key] {
			t.Errorf("did not expect %s to be earned", key)
		}
	}
}

func TestAllCheckedKeysAreDefined(t *testing.T) {
	gam := &models.UserGamification{
		AssessmentsCompleted:   100,
		CurrentStreak:          365,
		QuestionsAnsweredTotal: 5000,
		TotalXP:                100000,
		PlansCompleted:         50,
		ContentCompleted:       100,
		Level:                  20,
	}
	for _, key := range CheckAchievements(gam) {
		if _, ok := Achievements[key]; !ok {
			t.Errorf("CheckAchievements returned undefined key %q", key)
		}
	}
}
