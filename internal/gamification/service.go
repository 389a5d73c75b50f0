package gamification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// award applies the streak multiplier, persists the XP, and logs the event.
// Returns the XP actually credited.
func (s *Service) award(userID int64, eventType string, baseXP int, metadata map[string]interface{}) int {
	gam, err := s.store.GetOrCreateGamification(userID)
	if err != nil {
		log.Printf("[gamification] failed to load state for user %d: %v", userID, err)
		return 0
	}

	multiplier := StreakMultiplier(gam.CurrentStreak)
	xp := ApplyStreakMultiplier(baseXP, multiplier)

	if _, err := s.store.AddXP(userID, xp); err != nil {
		log.Printf("[gamification] failed to add XP for user %d: %v", userID, err)
		return 0
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["base_xp"] = baseXP
	metadata["multiplier"] = multiplier
	s.store.LogXPEvent(userID, eventType, xp, metadata)

	s.checkAchievements(userID)
	return xp
}

// ── Assessment ──────────────────────────────────────────

// AwardAssessmentXP credits XP for a completed cognitive assessment.
func (s *Service) AwardAssessmentXP(userID int64, itemsAnswered int) int {
	if err := s.store.IncrementCompletionCounter(userID, "assessments_completed"); err != nil {
		s.store.GetOrCreateGamification(userID)
		s.store.IncrementCompletionCounter(userID, "assessments_completed")
	}
	return s.award(userID, "assessment_complete", AssessmentXP(itemsAnswered), map[string]interface{}{
		"items_answered": itemsAnswered,
	})
}

// ── Quizzing ────────────────────────────────────────────

// AwardQuizXP credits XP for one correct quiz answer.
// Returns 0 XP for incorrect answers but still updates counters.
func (s *Service) AwardQuizXP(userID int64, correct bool, difficultyScore, mastery int) int {
	s.store.GetOrCreateGamification(userID)
	if err := s.store.IncrementQuestionCounters(userID, correct); err != nil {
		log.Printf("[gamification] failed to increment counters for user %d: %v", userID, err)
	}
	if !correct {
		return 0
	}

	base := QuizXP(difficultyScore)
	challenge := ChallengeBonus(mastery, difficultyScore)
	return s.award(userID, "question_correct", base+challenge, map[string]interface{}{
		"difficulty_score": difficultyScore,
		"challenge_bonus":  challenge,
	})
}

// ── Plans ───────────────────────────────────────────────

func (s *Service) AwardPlanGoalXP(userID int64) int {
	return s.award(userID, "goal_complete", PlanGoalXP(), nil)
}

func (s *Service) AwardPlanCompletionXP(userID int64) int {
	if err := s.store.IncrementCompletionCounter(userID, "plans_completed"); err != nil {
		s.store.GetOrCreateGamification(userID)
		s.store.IncrementCompletionCounter(userID, "plans_completed")
	}
	return s.award(userID, "plan_complete", PlanCompletionXP(), nil)
}

// ── Content ─────────────────────────────────────────────

func (s *Service) AwardContentXP(userID int64, declaredXP int, slug string) int {
	if err := s.store.IncrementCompletionCounter(userID, "content_completed"); err != nil {
		s.store.GetOrCreateGamification(userID)
		s.store.IncrementCompletionCounter(userID, "content_completed")
	}
	return s.award(userID, "content_complete", ContentXP(declaredXP), map[string]interface{}{
		"slug": slug,
	})
}

// ── Streak ──────────────────────────────────────────────

func (s *Service) UpdateStreak(userID int64) error {
	gam, err := s.store.GetOrCreateGamification(userID)
	if err != nil {
		return fmt.Errorf("get gamification: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// Already active today — no change
	if gam.LastActiveDate != nil {
		lastActive := gam.LastActiveDate.Truncate(24 * time.Hour)
		if lastActive.Equal(today) {
			return nil
		}

		daysSinceLast := int(today.Sub(lastActive).Hours() / 24)

		switch {
		case daysSinceLast == 1:
			// Consecutive day — increment streak
			gam.CurrentStreak++
		case daysSinceLast == 2 && gam.StreakFreezesOwned > 0:
			// Missed yesterday but had a freeze — streak preserved
			gam.CurrentStreak++
			gam.StreakFreezeActive = false
			gam.StreakFreezesOwned--
		default:
			// Streak broken
			gam.CurrentStreak = 1
			gam.StreakFreezeActive = false
		}
	} else {
		// First ever activity
		gam.CurrentStreak = 1
	}

	if gam.CurrentStreak > gam.LongestStreak {
		gam.LongestStreak = gam.CurrentStreak
	}

	gam.LastActiveDate = &today

	if err := s.store.UpdateGamification(userID, gam); err != nil {
		return err
	}
	s.checkAchievements(userID)
	return nil
}

// ── Daily Goal ──────────────────────────────────────────

func (s *Service) UpdateDailyGoal(userID int64, questionsAnswered int) error {
	gam, err := s.store.GetOrCreateGamification(userID)
	if err != nil {
		return fmt.Errorf("get gamification: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	goalDate := gam.DailyGoalDate.Format("2006-01-02")

	// Reset if new day
	if today != goalDate {
		gam.DailyGoalProgress = 0
		gam.DailyGoalDate = time.Now().UTC()
	}

	wasCompleted := gam.DailyGoalProgress >= gam.DailyGoalTarget
	gam.DailyGoalProgress += questionsAnswered
	nowCompleted := gam.DailyGoalProgress >= gam.DailyGoalTarget

	if err := s.store.UpdateGamification(userID, gam); err != nil {
		return err
	}

	// Bonus XP when the goal is first met for the day
	if !wasCompleted && nowCompleted {
		s.award(userID, "daily_goal", 15, map[string]interface{}{
			"target": gam.DailyGoalTarget,
		})
	}
	return nil
}

func (s *Service) SetDailyGoal(userID int64, target int) error {
	validTargets := map[int]bool{3: true, 5: true, 10: true, 20: true}
	if !validTargets[target] {
		return fmt.Errorf("target must be 3, 5, 10, or 20")
	}
	s.store.GetOrCreateGamification(userID)
	return s.store.SetDailyGoalTarget(userID, target)
}

// ── Achievements ────────────────────────────────────────

func (s *Service) checkAchievements(userID int64) {
	gam, err := s.store.GetOrCreateGamification(userID)
	if err != nil {
		return
	}

	for _, key := range CheckAchievements(gam) {
		inserted, err := s.store.AwardAchievement(userID, key)
		if err != nil || !inserted {
			continue
		}
		def := Achievements[key]
		if def.XP > 0 {
			s.store.AddXP(userID, def.XP)
		}
		s.store.LogXPEvent(userID, "achievement", def.XP, map[string]interface{}{
			"achievement": key,
		})
		log.Printf("[gamification] user %d earned achievement %s", userID, key)
	}
}

// ── Summary & Leaderboard ───────────────────────────────

func (s *Service) Summary(userID int64) (*models.GamificationSummary, error) {
	gam, err := s.store.GetOrCreateGamification(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.store.GetUserAchievements(userID)
	if err != nil {
		achievements = []models.Achievement{}
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}

	// Report zero progress if the stored goal date is stale
	today := time.Now().UTC().Format("2006-01-02")
	if gam.DailyGoalDate.Format("2006-01-02") != today {
		gam.DailyGoalProgress = 0
	}

	return &models.GamificationSummary{
		Gamification: *gam,
		Achievements: achievements,
		NextLevelXP:  XPForLevel(gam.Level + 1),
	}, nil
}

func (s *Service) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := s.store.GetLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

func (s *Service) RecentXPEvents(userID int64, limit int) ([]models.XPEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	events, err := s.store.RecentXPEvents(userID, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.XPEvent{}
	}
	return events, nil
}

// ── Background Worker ───────────────────────────────────

// StartWeeklyResetWorker clears weekly XP shortly after midnight UTC
// every Monday so the leaderboard covers a rolling week.
func (s *Service) StartWeeklyResetWorker(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	log.Println("[gamification] Weekly reset worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[gamification] Weekly reset worker shutting down")
			return
		case t := <-ticker.C:
			utc := t.UTC()
			if utc.Weekday() == time.Monday && utc.Hour() == 0 {
				log.Println("[gamification] Running weekly leaderboard reset")
				if err := s.store.ResetWeeklyXP(); err != nil {
					log.Printf("[gamification] weekly reset failed: %v", err)
				}
			}
		}
	}
}
