package models

import "time"

// QuizQuestion is a multiple-choice question attached to a learning topic.
type QuizQuestion struct {
	ID              int64        `json:"id"`
	Topic           string       `json:"topic"`
	Prompt          string       `json:"prompt"`
	Choices         []QuizChoice `json:"choices,omitempty"`
	CorrectChoiceID string       `json:"correct_choice_id,omitempty"`
	Explanation     string       `json:"explanation,omitempty"`
	DifficultyScore int          `json:"difficulty_score"`
	TimesServed     int          `json:"times_served"`
	TimesCorrect    int          `json:"times_correct"`
	CreatedAt       time.Time    `json:"created_at"`
}

type QuizChoice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceID   string `json:"choice_id"`
	ChoiceText string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct,omitempty"`
}

// DrillQuestion is a question as served to the client: answer data stripped.
type DrillQuestion struct {
	ID              int64         `json:"id"`
	Topic           string        `json:"topic"`
	Prompt          string        `json:"prompt"`
	Choices         []DrillChoice `json:"choices"`
	DifficultyScore int           `json:"difficulty_score"`
}

type DrillChoice struct {
	ChoiceID   string `json:"choice_id"`
	ChoiceText string `json:"choice_text"`
}

// TopicMastery is a user's 0-100 mastery estimate for one topic.
type TopicMastery struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Topic             string    `json:"topic"`
	Mastery           int       `json:"mastery"`
	QuestionsAnswered int       `json:"questions_answered"`
	QuestionsCorrect  int       `json:"questions_correct"`
	LastUpdated       time.Time `json:"last_updated"`
}

// ── API Request/Response Types ────────────────────────────

type QuizDrillRequest struct {
	Topic  string `json:"topic"`
	Count  int    `json:"count"`
	Slider int    `json:"difficulty_slider"`
}

type SubmitQuizAnswerRequest struct {
	QuestionID       int64    `json:"question_id"`
	SelectedChoiceID string   `json:"selected_choice_id"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds,omitempty"`
}

type SubmitQuizAnswerResponse struct {
	Correct         bool         `json:"correct"`
	CorrectChoiceID string       `json:"correct_choice_id"`
	Explanation     string       `json:"explanation"`
	Choices         []QuizChoice `json:"choices"`
	NewMastery      int          `json:"new_mastery"`
	XPAwarded       int          `json:"xp_awarded"`
}

type MasteryResponse struct {
	Topics map[string]int `json:"topics"`
}

type QuizHistoryEntry struct {
	QuestionID       int64     `json:"question_id"`
	Topic            string    `json:"topic"`
	Prompt           string    `json:"prompt"`
	Correct          bool      `json:"correct"`
	SelectedChoiceID *string   `json:"selected_choice_id,omitempty"`
	AnsweredAt       time.Time `json:"answered_at"`
}

type QuizHistoryResponse struct {
	Entries  []QuizHistoryEntry `json:"entries"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
