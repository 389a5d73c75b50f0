package plans

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

// CreatePlan inserts a plan and its goals in one transaction.
func (s *Store) CreatePlan(userID int64, req models.CreatePlanRequest) (*models.DevelopmentPlan, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var planID int64
	err = tx.QueryRow(
		`INSERT INTO development_plans (user_id, title, status, period_start, period_end)
		 VALUES ($1, $2, 'draft', $3, $4)
		 RETURNING id`,
		userID, req.Title, req.PeriodStart, req.PeriodEnd,
	).Scan(&planID)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	for _, g := range req.Goals {
		_, err = tx.Exec(
			`INSERT INTO plan_goals (plan_id, title, description, focus_area, status, progress, due_date)
			 VALUES ($1, $2, $3, $4, 'pending', 0, $5)`,
			planID, g.Title, g.Description, g.FocusArea, g.DueDate,
		)
		if err != nil {
			return nil, fmt.Errorf("insert goal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.GetPlan(planID)
}

func (s *Store) GetPlan(planID int64) (*models.DevelopmentPlan, error) {
	var p models.DevelopmentPlan
	err := s.db.QueryRow(
		`SELECT id, user_id, title, status, period_start, period_end,
		        reviewer_id, review_note, created_at, updated_at
		 FROM development_plans WHERE id = $1`,
		planID,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Status, &p.PeriodStart, &p.PeriodEnd,
		&p.ReviewerID, &p.ReviewNote, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	goals, err := s.planGoals(planID)
	if err != nil {
		return nil, err
	}
	p.Goals = goals
	return &p, nil
}

func (s *Store) planGoals(planID int64) ([]models.PlanGoal, error) {
	rows, err := s.db.Query(
		`SELECT id, plan_id, title, description, focus_area, status, progress,
		        due_date, created_at, updated_at
		 FROM plan_goals WHERE plan_id = $1 ORDER BY id`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	defer rows.Close()

	var goals []models.PlanGoal
	for rows.Next() {
		var g models.PlanGoal
		if err := rows.Scan(&g.ID, &g.PlanID, &g.Title, &g.Description, &g.FocusArea,
			&g.Status, &g.Progress, &g.DueDate, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) ListPlansByUser(userID int64) ([]models.DevelopmentPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, status, period_start, period_end,
		        reviewer_id, review_note, created_at, updated_at
		 FROM development_plans WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	return scanPlans(rows)
}

// ListPlansForReview returns plans waiting on a manager decision.
func (s *Store) ListPlansForReview() ([]models.DevelopmentPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, status, period_start, period_end,
		        reviewer_id, review_note, created_at, updated_at
		 FROM development_plans WHERE status = 'in_review'
		 ORDER BY updated_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list review queue: %w", err)
	}
	defer rows.Close()

	return scanPlans(rows)
}

func scanPlans(rows *sql.Rows) ([]models.DevelopmentPlan, error) {
	var plans []models.DevelopmentPlan
	for rows.Next() {
		var p models.DevelopmentPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Status, &p.PeriodStart, &p.PeriodEnd,
			&p.ReviewerID, &p.ReviewNote, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Store) UpdatePlanStatus(planID int64, status models.PlanStatus) error {
	_, err := s.db.Exec(
		`UPDATE development_plans SET status = $2, updated_at = NOW() WHERE id = $1`,
		planID, status,
	)
	return err
}

func (s *Store) SetReview(planID int64, reviewerID int64, note string, status models.PlanStatus) error {
	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	_, err := s.db.Exec(
		`UPDATE development_plans SET
		    status = $2, reviewer_id = $3, review_note = $4, updated_at = NOW()
		 WHERE id = $1`,
		planID, status, reviewerID, notePtr,
	)
	return err
}

func (s *Store) GetGoal(goalID int64) (*models.PlanGoal, error) {
	var g models.PlanGoal
	err := s.db.QueryRow(
		`SELECT id, plan_id, title, description, focus_area, status, progress,
		        due_date, created_at, updated_at
		 FROM plan_goals WHERE id = $1`,
		goalID,
	).Scan(&g.ID, &g.PlanID, &g.Title, &g.Description, &g.FocusArea,
		&g.Status, &g.Progress, &g.DueDate, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

func (s *Store) UpdateGoal(goalID int64, status models.GoalStatus, progress int) error {
	_, err := s.db.Exec(
		`UPDATE plan_goals SET status = $2, progress = $3, updated_at = NOW()
		 WHERE id = $1`,
		goalID, status, progress,
	)
	return err
}
