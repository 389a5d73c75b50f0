package quiz

import (
	"database/sql"
	"fmt"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Questions ───────────────────────────────────────────

func (s *Store) GetQuestionWithChoices(questionID int64) (*models.QuizQuestion, error) {
	var q models.QuizQuestion
	err := s.db.QueryRow(
		`SELECT id, topic, prompt, correct_choice_id, explanation,
		        difficulty_score, times_served, times_correct, created_at
		 FROM quiz_questions WHERE id = $1`,
		questionID,
	).Scan(&q.ID, &q.Topic, &q.Prompt, &q.CorrectChoiceID, &q.Explanation,
		&q.DifficultyScore, &q.TimesServed, &q.TimesCorrect, &q.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question %d not found", questionID)
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, question_id, choice_id, choice_text, is_correct
		 FROM quiz_choices WHERE question_id = $1 ORDER BY choice_id`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get choices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.QuizChoice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceID, &c.ChoiceText, &c.IsCorrect); err != nil {
			return nil, fmt.Errorf("scan choice: %w", err)
		}
		q.Choices = append(q.Choices, c)
	}
	return &q, rows.Err()
}

// GetDrillQuestions returns up to count questions for a topic inside the
// difficulty window, preferring questions the user has not seen, in
// random order with answer data stripped.
func (s *Store) GetDrillQuestions(userID int64, topic string, minDiff, maxDiff, count int) ([]models.DrillQuestion, error) {
	rows, err := s.db.Query(
		`SELECT q.id, q.topic, q.prompt, q.difficulty_score
		 FROM quiz_questions q
		 WHERE q.topic = $2
		   AND q.difficulty_score BETWEEN $3 AND $4
		 ORDER BY
		   (q.id IN (SELECT question_id FROM quiz_history WHERE user_id = $1)),
		   RANDOM()
		 LIMIT $5`,
		userID, topic, minDiff, maxDiff, count,
	)
	if err != nil {
		return nil, fmt.Errorf("get drill questions: %w", err)
	}
	defer rows.Close()

	var questions []models.DrillQuestion
	for rows.Next() {
		var q models.DrillQuestion
		if err := rows.Scan(&q.ID, &q.Topic, &q.Prompt, &q.DifficultyScore); err != nil {
			return nil, fmt.Errorf("scan drill question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		choices, err := s.drillChoices(questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Choices = choices
	}
	return questions, nil
}

func (s *Store) drillChoices(questionID int64) ([]models.DrillChoice, error) {
	rows, err := s.db.Query(
		`SELECT choice_id, choice_text
		 FROM quiz_choices WHERE question_id = $1 ORDER BY choice_id`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get drill choices: %w", err)
	}
	defer rows.Close()

	var choices []models.DrillChoice
	for rows.Next() {
		var c models.DrillChoice
		if err := rows.Scan(&c.ChoiceID, &c.ChoiceText); err != nil {
			return nil, fmt.Errorf("scan drill choice: %w", err)
		}
		choices = append(choices, c)
	}
	return choices, rows.Err()
}

func (s *Store) IncrementServed(questionID int64) error {
	_, err := s.db.Exec(
		`UPDATE quiz_questions SET times_served = times_served + 1 WHERE id = $1`,
		questionID,
	)
	return err
}

func (s *Store) IncrementCorrect(questionID int64) error {
	_, err := s.db.Exec(
		`UPDATE quiz_questions SET times_correct = times_correct + 1 WHERE id = $1`,
		questionID,
	)
	return err
}

func (s *Store) ListTopics() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT topic FROM quiz_questions ORDER BY topic`,
	)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// ── Answer History ──────────────────────────────────────

func (s *Store) RecordAnswer(userID, questionID int64, correct bool, selectedChoiceID *string, timeSpentSeconds *float64) error {
	_, err := s.db.Exec(
		`INSERT INTO quiz_history (user_id, question_id, correct, selected_choice_id, time_spent_seconds)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, questionID, correct, selectedChoiceID, timeSpentSeconds,
	)
	return err
}

func (s *Store) GetHistory(userID int64, page, pageSize int) ([]models.QuizHistoryEntry, int, error) {
	var total int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM quiz_history WHERE user_id = $1`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT h.question_id, q.topic, q.prompt, h.correct, h.selected_choice_id, h.answered_at
		 FROM quiz_history h
		 JOIN quiz_questions q ON q.id = h.question_id
		 WHERE h.user_id = $1
		 ORDER BY h.answered_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("get history: %w", err)
	}
	defer rows.Close()

	var entries []models.QuizHistoryEntry
	for rows.Next() {
		var e models.QuizHistoryEntry
		if err := rows.Scan(&e.QuestionID, &e.Topic, &e.Prompt, &e.Correct, &e.SelectedChoiceID, &e.AnsweredAt); err != nil {
			return nil, 0, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// ── Topic Mastery ───────────────────────────────────────

func (s *Store) GetOrCreateMastery(userID int64, topic string) (*models.TopicMastery, error) {
	_, err := s.db.Exec(
		`INSERT INTO topic_mastery (user_id, topic) VALUES ($1, $2)
		 ON CONFLICT (user_id, topic) DO NOTHING`,
		userID, topic,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert mastery: %w", err)
	}

	var m models.TopicMastery
	err = s.db.QueryRow(
		`SELECT id, user_id, topic, mastery, questions_answered, questions_correct, last_updated
		 FROM topic_mastery WHERE user_id = $1 AND topic = $2`,
		userID, topic,
	).Scan(&m.ID, &m.UserID, &m.Topic, &m.Mastery, &m.QuestionsAnswered, &m.QuestionsCorrect, &m.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("get mastery: %w", err)
	}
	return &m, nil
}

func (s *Store) UpdateMastery(userID int64, topic string, newMastery int, correct bool) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}
	_, err := s.db.Exec(
		`UPDATE topic_mastery SET
		    mastery = $3,
		    questions_answered = questions_answered + 1,
		    questions_correct = questions_correct + $4,
		    last_updated = NOW()
		 WHERE user_id = $1 AND topic = $2`,
		userID, topic, newMastery, correctInc,
	)
	return err
}

func (s *Store) AllMastery(userID int64) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT topic, mastery FROM topic_mastery WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get mastery map: %w", err)
	}
	defer rows.Close()

	topics := make(map[string]int)
	for rows.Next() {
		var topic string
		var mastery int
		if err := rows.Scan(&topic, &mastery); err != nil {
			return nil, err
		}
		topics[topic] = mastery
	}
	return topics, rows.Err()
}
