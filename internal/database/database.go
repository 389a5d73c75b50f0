package database

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/dhtuganov/transformation-portal-sub002/internal/assessment"
	"github.com/dhtuganov/transformation-portal-sub002/internal/config"
	"github.com/dhtuganov/transformation-portal-sub002/internal/quiz"
)

func Connect(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'employee',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS assessment_items (
		id             BIGSERIAL PRIMARY KEY,
		dimension      VARCHAR(50) NOT NULL,
		pole           VARCHAR(1) NOT NULL,
		text           TEXT NOT NULL,
		difficulty     DOUBLE PRECISION NOT NULL,
		discrimination DOUBLE PRECISION NOT NULL CHECK (discrimination > 0),
		created_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_items_dimension ON assessment_items(dimension);

	CREATE TABLE IF NOT EXISTS assessment_sessions (
		id           VARCHAR(36) PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status       VARCHAR(20) NOT NULL DEFAULT 'in_progress',
		created_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		completed_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user ON assessment_sessions(user_id, status);

	CREATE TABLE IF NOT EXISTS assessment_responses (
		id          BIGSERIAL PRIMARY KEY,
		session_id  VARCHAR(36) NOT NULL REFERENCES assessment_sessions(id) ON DELETE CASCADE,
		item_id     BIGINT NOT NULL REFERENCES assessment_items(id),
		value       INT NOT NULL CHECK (value >= 1 AND value <= 5),
		answered_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(session_id, item_id)
	);

	CREATE INDEX IF NOT EXISTS idx_responses_session ON assessment_responses(session_id);

	CREATE TABLE IF NOT EXISTS cognitive_profiles (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		session_id   VARCHAR(36) NOT NULL REFERENCES assessment_sessions(id),
		type_code    VARCHAR(4) NOT NULL,
		dimensions   JSONB NOT NULL,
		completed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_user ON cognitive_profiles(user_id, completed_at DESC);

	CREATE TABLE IF NOT EXISTS quiz_questions (
		id               BIGSERIAL PRIMARY KEY,
		topic            VARCHAR(100) NOT NULL,
		prompt           TEXT NOT NULL,
		correct_choice_id VARCHAR(1) NOT NULL,
		explanation      TEXT NOT NULL,
		difficulty_score INT NOT NULL DEFAULT 50 CHECK (difficulty_score >= 0 AND difficulty_score <= 100),
		times_served     INT NOT NULL DEFAULT 0,
		times_correct    INT NOT NULL DEFAULT 0,
		created_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_questions_topic ON quiz_questions(topic, difficulty_score);

	CREATE TABLE IF NOT EXISTS quiz_choices (
		id          BIGSERIAL PRIMARY KEY,
		question_id BIGINT NOT NULL REFERENCES quiz_questions(id) ON DELETE CASCADE,
		choice_id   VARCHAR(1) NOT NULL,
		choice_text TEXT NOT NULL,
		is_correct  BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE(question_id, choice_id)
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_choices_question ON quiz_choices(question_id);

	CREATE TABLE IF NOT EXISTS quiz_history (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id        BIGINT NOT NULL REFERENCES quiz_questions(id) ON DELETE CASCADE,
		correct            BOOLEAN NOT NULL,
		selected_choice_id VARCHAR(1),
		time_spent_seconds REAL,
		answered_at        TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_history_user ON quiz_history(user_id, answered_at DESC);

	CREATE TABLE IF NOT EXISTS topic_mastery (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic              VARCHAR(100) NOT NULL,
		mastery            INT NOT NULL DEFAULT 50 CHECK (mastery >= 0 AND mastery <= 100),
		questions_answered INT NOT NULL DEFAULT 0,
		questions_correct  INT NOT NULL DEFAULT 0,
		last_updated       TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, topic)
	);

	CREATE TABLE IF NOT EXISTS user_gamification (
		user_id                  BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		total_xp                 BIGINT NOT NULL DEFAULT 0,
		weekly_xp                BIGINT NOT NULL DEFAULT 0,
		weekly_xp_reset_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		level                    INT NOT NULL DEFAULT 1,
		current_streak           INT NOT NULL DEFAULT 0,
		longest_streak           INT NOT NULL DEFAULT 0,
		last_active_date         DATE,
		streak_freeze_active     BOOLEAN NOT NULL DEFAULT FALSE,
		streak_freezes_owned     INT NOT NULL DEFAULT 0,
		daily_goal_target        INT NOT NULL DEFAULT 5,
		daily_goal_progress      INT NOT NULL DEFAULT 0,
		daily_goal_date          DATE DEFAULT CURRENT_DATE,
		questions_answered_total INT NOT NULL DEFAULT 0,
		questions_correct_total  INT NOT NULL DEFAULT 0,
		assessments_completed    INT NOT NULL DEFAULT 0,
		plans_completed          INT NOT NULL DEFAULT 0,
		content_completed        INT NOT NULL DEFAULT 0,
		created_at               TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at               TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS xp_events (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_type  VARCHAR(50) NOT NULL,
		xp_amount   INT NOT NULL,
		metadata    JSONB,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_xp_events_user ON xp_events(user_id, created_at);

	CREATE TABLE IF NOT EXISTS achievements (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		achievement VARCHAR(100) NOT NULL,
		earned_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, achievement)
	);

	CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id);

	CREATE TABLE IF NOT EXISTS development_plans (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title        VARCHAR(255) NOT NULL,
		status       VARCHAR(20) NOT NULL DEFAULT 'draft',
		period_start TIMESTAMP WITH TIME ZONE,
		period_end   TIMESTAMP WITH TIME ZONE,
		reviewer_id  BIGINT REFERENCES users(id),
		review_note  TEXT,
		created_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_plans_user ON development_plans(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_plans_status ON development_plans(status);

	CREATE TABLE IF NOT EXISTS plan_goals (
		id          BIGSERIAL PRIMARY KEY,
		plan_id     BIGINT NOT NULL REFERENCES development_plans(id) ON DELETE CASCADE,
		title       VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		focus_area  VARCHAR(100) NOT NULL DEFAULT '',
		status      VARCHAR(20) NOT NULL DEFAULT 'pending',
		progress    INT NOT NULL DEFAULT 0 CHECK (progress >= 0 AND progress <= 100),
		due_date    TIMESTAMP WITH TIME ZONE,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_goals_plan ON plan_goals(plan_id);

	CREATE TABLE IF NOT EXISTS content_completions (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		slug       VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, slug)
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seedAssessmentItems(db); err != nil {
		return fmt.Errorf("seed assessment items: %w", err)
	}
	if err := seedQuizQuestions(db); err != nil {
		return fmt.Errorf("seed quiz questions: %w", err)
	}

	return nil
}

// seedAssessmentItems loads the default item bank into an empty table.
func seedAssessmentItems(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM assessment_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range assessment.DefaultItems {
		_, err := tx.Exec(
			`INSERT INTO assessment_items (dimension, pole, text, difficulty, discrimination)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.Dimension, item.Pole, item.Text, item.Difficulty, item.Discrimination,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}

	return tx.Commit()
}

// seedQuizQuestions loads the starter question pool into an empty table.
func seedQuizQuestions(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM quiz_questions`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range quiz.DefaultQuestions {
		var questionID int64
		err := tx.QueryRow(
			`INSERT INTO quiz_questions (topic, prompt, correct_choice_id, explanation, difficulty_score)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			q.Topic, q.Prompt, q.CorrectChoiceID, q.Explanation, q.DifficultyScore,
		).Scan(&questionID)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}

		for _, c := range q.Choices {
			_, err := tx.Exec(
				`INSERT INTO quiz_choices (question_id, choice_id, choice_text, is_correct)
				 VALUES ($1, $2, $3, $4)`,
				questionID, c.ChoiceID, c.Text, c.ChoiceID == q.CorrectChoiceID,
			)
			if err != nil {
				return fmt.Errorf("insert choice: %w", err)
			}
		}
	}

	return tx.Commit()
}

// generateUsernameBase creates a lowercase alphanumeric base from a user's name.
func generateUsernameBase(name string) string {
	var result []byte
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			result = append(result, byte(c))
		}
	}
	if len(result) == 0 {
		return "user"
	}
	if len(result) > 12 {
		result = result[:12]
	}
	return string(result)
}

// rng is a seeded random source for username generation.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateUsername creates a unique username from a name by appending random digits.
// It tries once; the caller retries on a unique constraint violation.
func GenerateUsername(name string) string {
	return fmt.Sprintf("%s%04d", generateUsernameBase(name), rng.Intn(10000))
}
