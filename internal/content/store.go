package content

import (
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// MarkCompleted records a completion; returns false when the user had
// already completed this entry.
func (s *Store) MarkCompleted(userID int64, slug string) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO content_completions (user_id, slug)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, slug) DO NOTHING`,
		userID, slug,
	)
	if err != nil {
		return false, fmt.Errorf("mark completed: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *Store) CompletedSlugs(userID int64) (map[string]bool, error) {
	rows, err := s.db.Query(
		`SELECT slug FROM content_completions WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get completions: %w", err)
	}
	defer rows.Close()

	slugs := make(map[string]bool)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs[slug] = true
	}
	return slugs, rows.Err()
}
