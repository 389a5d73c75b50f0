package gamification

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Core Gamification CRUD ──────────────────────────────

func (s *Store) GetOrCreateGamification(userID int64) (*models.UserGamification, error) {
	_, err := s.db.Exec(
		`INSERT INTO user_gamification (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert gamification: %w", err)
	}

	var g models.UserGamification
	err = s.db.QueryRow(
		`SELECT user_id, total_xp, weekly_xp, weekly_xp_reset_at, level,
		        current_streak, longest_streak, last_active_date,
		        streak_freeze_active, streak_freezes_owned,
		        daily_goal_target, daily_goal_progress, daily_goal_date,
		        questions_answered_total, questions_correct_total,
		        assessments_completed, plans_completed, content_completed,
		        created_at, updated_at
		 FROM user_gamification WHERE user_id = $1`,
		userID,
	).Scan(&g.UserID, &g.TotalXP, &g.WeeklyXP, &g.WeeklyXPResetAt, &g.Level,
		&g.CurrentStreak, &g.LongestStreak, &g.LastActiveDate,
		&g.StreakFreezeActive, &g.StreakFreezesOwned,
		&g.DailyGoalTarget, &g.DailyGoalProgress, &g.DailyGoalDate,
		&g.QuestionsAnsweredTotal, &g.QuestionsCorrectTotal,
		&g.AssessmentsCompleted, &g.PlansCompleted, &g.ContentCompleted,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get gamification: %w", err)
	}
	return &g, nil
}

func (s *Store) UpdateGamification(userID int64, g *models.UserGamification) error {
	_, err := s.db.Exec(
		`UPDATE user_gamification SET
		    total_xp = $2, weekly_xp = $3, level = $4,
		    current_streak = $5, longest_streak = $6, last_active_date = $7,
		    streak_freeze_active = $8, streak_freezes_owned = $9,
		    daily_goal_target = $10, daily_goal_progress = $11, daily_goal_date = $12,
		    questions_answered_total = $13, questions_correct_total = $14,
		    assessments_completed = $15, plans_completed = $16, content_completed = $17,
		    updated_at = NOW()
		 WHERE user_id = $1`,
		userID, g.TotalXP, g.WeeklyXP, g.Level,
		g.CurrentStreak, g.LongestStreak, g.LastActiveDate,
		g.StreakFreezeActive, g.StreakFreezesOwned,
		g.DailyGoalTarget, g.DailyGoalProgress, g.DailyGoalDate,
		g.QuestionsAnsweredTotal, g.QuestionsCorrectTotal,
		g.AssessmentsCompleted, g.PlansCompleted, g.ContentCompleted,
	)
	return err
}

func (s *Store) IncrementQuestionCounters(userID int64, correct bool) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}
	_, err := s.db.Exec(
		`UPDATE user_gamification SET
		    questions_answered_total = questions_answered_total + 1,
		    questions_correct_total = questions_correct_total + $2,
		    updated_at = NOW()
		 WHERE user_id = $1`,
		userID, correctInc,
	)
	return err
}

// IncrementCompletionCounter bumps one of the completion counters.
// column must be one of the fixed names below; anything else is rejected
// so this can never interpolate arbitrary SQL.
func (s *Store) IncrementCompletionCounter(userID int64, column string) error {
	switch column {
	case "assessments_completed", "plans_completed", "content_completed":
	default:
		return fmt.Errorf("unknown counter column %q", column)
	}
	_, err := s.db.Exec(
		`UPDATE user_gamification SET `+column+` = `+column+` + 1, updated_at = NOW()
		 WHERE user_id = $1`,
		userID,
	)
	return err
}

// ── XP Operations ───────────────────────────────────────

// AddXP adds XP and recomputes the level in one round trip.
func (s *Store) AddXP(userID int64, amount int) (int64, error) {
	var total int64
	err := s.db.QueryRow(
		`UPDATE user_gamification SET
		    total_xp = total_xp + $2,
		    weekly_xp = weekly_xp + $2,
		    updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING total_xp`,
		userID, amount,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("add xp: %w", err)
	}

	_, err = s.db.Exec(
		`UPDATE user_gamification SET level = $2 WHERE user_id = $1`,
		userID, LevelForXP(total),
	)
	return total, err
}

func (s *Store) LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error {
	var metaJSON *string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err == nil {
			s := string(b)
			metaJSON = &s
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO xp_events (user_id, event_type, xp_amount, metadata)
		 VALUES ($1, $2, $3, $4)`,
		userID, eventType, xpAmount, metaJSON,
	)
	return err
}

func (s *Store) RecentXPEvents(userID int64, limit int) ([]models.XPEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, event_type, xp_amount, COALESCE(metadata::text, ''), created_at
		 FROM xp_events WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get xp events: %w", err)
	}
	defer rows.Close()

	var events []models.XPEvent
	for rows.Next() {
		var e models.XPEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.XPAmount, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan xp event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ── Achievements ────────────────────────────────────────

// AwardAchievement inserts the achievement if not already earned.
// Returns true when the row was actually inserted.
func (s *Store) AwardAchievement(userID int64, key string) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO achievements (user_id, achievement)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, achievement) DO NOTHING`,
		userID, key,
	)
	if err != nil {
		return false, fmt.Errorf("award achievement: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *Store) GetUserAchievements(userID int64) ([]models.Achievement, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, achievement, earned_at
		 FROM achievements WHERE user_id = $1
		 ORDER BY earned_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Achievement, &a.EarnedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// ── Leaderboard ─────────────────────────────────────────

func (s *Store) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT u.id, COALESCE(u.username, ''), u.name, g.weekly_xp, g.level,
		        ROW_NUMBER() OVER (ORDER BY g.weekly_xp DESC) as rank
		 FROM user_gamification g
		 JOIN users u ON u.id = g.user_id
		 WHERE g.weekly_xp > 0
		 ORDER BY g.weekly_xp DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Name, &e.WeeklyXP, &e.Level, &e.Rank); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ResetWeeklyXP() error {
	_, err := s.db.Exec(
		`UPDATE user_gamification SET weekly_xp = 0, weekly_xp_reset_at = NOW()`,
	)
	return err
}

func (s *Store) SetDailyGoalTarget(userID int64, target int) error {
	_, err := s.db.Exec(
		`UPDATE user_gamification SET daily_goal_target = $2, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, target,
	)
	return err
}
