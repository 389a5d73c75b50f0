package models

import "time"

// ── Core Gamification Structs ─────────────────────────────

type UserGamification struct {
	UserID                 int64      `json:"user_id"`
	TotalXP                int64      `json:"total_xp"`
	WeeklyXP               int64      `json:"weekly_xp"`
	WeeklyXPResetAt        time.Time  `json:"weekly_xp_reset_at"`
	Level                  int        `json:"level"`
	CurrentStreak          int        `json:"current_streak"`
	LongestStreak          int        `json:"longest_streak"`
	LastActiveDate         *time.Time `json:"last_active_date"`
	StreakFreezeActive     bool       `json:"streak_freeze_active"`
	StreakFreezesOwned     int        `json:"streak_freezes_owned"`
	DailyGoalTarget        int        `json:"daily_goal_target"`
	DailyGoalProgress      int        `json:"daily_goal_progress"`
	DailyGoalDate          time.Time  `json:"daily_goal_date"`
	QuestionsAnsweredTotal int        `json:"questions_answered_total"`
	QuestionsCorrectTotal  int        `json:"questions_correct_total"`
	AssessmentsCompleted   int        `json:"assessments_completed"`
	PlansCompleted         int        `json:"plans_completed"`
	ContentCompleted       int        `json:"content_completed"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type XPEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventType string    `json:"event_type"`
	XPAmount  int       `json:"xp_amount"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Achievement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Achievement string    `json:"achievement"`
	EarnedAt    time.Time `json:"earned_at"`
}

type LeaderboardEntry struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	WeeklyXP int64  `json:"weekly_xp"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
}

// ── API Request/Response Types ────────────────────────────

type SetDailyGoalRequest struct {
	Target int `json:"target"`
}

type GamificationSummary struct {
	Gamification UserGamification `json:"gamification"`
	Achievements []Achievement    `json:"achievements"`
	NextLevelXP  int64            `json:"next_level_xp"`
}
