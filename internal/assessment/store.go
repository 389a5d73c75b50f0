package assessment

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadItems reads the full item bank from the database, id ascending.
func (s *Store) LoadItems() ([]models.AssessmentItem, error) {
	rows, err := s.db.Query(
		`SELECT id, dimension, pole, text, difficulty, discrimination
		 FROM assessment_items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer rows.Close()

	var items []models.AssessmentItem
	for rows.Next() {
		var item models.AssessmentItem
		if err := rows.Scan(&item.ID, &item.Dimension, &item.Pole, &item.Text,
			&item.Difficulty, &item.Discrimination); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ── Sessions ────────────────────────────────────────────

func (s *Store) CreateSession(sessionID string, userID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO assessment_sessions (id, user_id, status, created_at)
		 VALUES ($1, $2, $3, NOW())`,
		sessionID, userID, models.SessionInProgress,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// OpenSessionID returns the user's in-progress session, if any.
func (s *Store) OpenSessionID(userID int64) (string, error) {
	var id string
	err := s.db.QueryRow(
		`SELECT id FROM assessment_sessions
		 WHERE user_id = $1 AND status = $2
		 ORDER BY created_at DESC LIMIT 1`,
		userID, models.SessionInProgress,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open session lookup: %w", err)
	}
	return id, nil
}

func (s *Store) SessionOwner(sessionID string) (int64, models.SessionStatus, error) {
	var userID int64
	var status models.SessionStatus
	err := s.db.QueryRow(
		`SELECT user_id, status FROM assessment_sessions WHERE id = $1`,
		sessionID,
	).Scan(&userID, &status)
	if err == sql.ErrNoRows {
		return 0, "", sql.ErrNoRows
	}
	if err != nil {
		return 0, "", fmt.Errorf("session lookup: %w", err)
	}
	return userID, status, nil
}

func (s *Store) CompleteSession(sessionID string) error {
	_, err := s.db.Exec(
		`UPDATE assessment_sessions SET status = $2, completed_at = NOW() WHERE id = $1`,
		sessionID, models.SessionComplete,
	)
	return err
}

// ── Responses ───────────────────────────────────────────

func (s *Store) RecordResponse(sessionID string, itemID int64, value int, answeredAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO assessment_responses (session_id, item_id, value, answered_at)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, itemID, value, answeredAt,
	)
	if err != nil {
		return fmt.Errorf("record response: %w", err)
	}
	return nil
}

// LoadResponses returns a session's answers in recording order, used to
// rebuild in-flight sessions after a restart.
func (s *Store) LoadResponses(sessionID string) ([]models.AssessmentResponse, error) {
	rows, err := s.db.Query(
		`SELECT item_id, value, answered_at FROM assessment_responses
		 WHERE session_id = $1 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}
	defer rows.Close()

	var responses []models.AssessmentResponse
	for rows.Next() {
		var r models.AssessmentResponse
		if err := rows.Scan(&r.ItemID, &r.Value, &r.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// ── Profiles ────────────────────────────────────────────

func (s *Store) SaveProfile(profile *models.CognitiveProfile) error {
	dims, err := json.Marshal(profile.Dimensions)
	if err != nil {
		return fmt.Errorf("marshal dimensions: %w", err)
	}
	err = s.db.QueryRow(
		`INSERT INTO cognitive_profiles (user_id, session_id, type_code, dimensions, completed_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		profile.UserID, profile.SessionID, profile.TypeCode, dims, profile.CompletedAt,
	).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Store) LatestProfile(userID int64) (*models.CognitiveProfile, error) {
	var p models.CognitiveProfile
	var dims []byte
	err := s.db.QueryRow(
		`SELECT id, user_id, session_id, type_code, dimensions, completed_at
		 FROM cognitive_profiles WHERE user_id = $1
		 ORDER BY completed_at DESC LIMIT 1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.SessionID, &p.TypeCode, &dims, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dims, &p.Dimensions); err != nil {
		return nil, fmt.Errorf("unmarshal dimensions: %w", err)
	}
	return &p, nil
}

// ExportProfiles returns every stored profile, newest first.
func (s *Store) ExportProfiles() ([]models.CognitiveProfile, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, session_id, type_code, dimensions, completed_at
		 FROM cognitive_profiles ORDER BY completed_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("export profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.CognitiveProfile
	for rows.Next() {
		var p models.CognitiveProfile
		var dims []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.SessionID, &p.TypeCode, &dims, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		if err := json.Unmarshal(dims, &p.Dimensions); err != nil {
			return nil, fmt.Errorf("unmarshal dimensions: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
