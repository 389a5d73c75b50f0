package models

import "time"

type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanActive    PlanStatus = "active"
	PlanInReview  PlanStatus = "in_review"
	PlanCompleted PlanStatus = "completed"
	PlanArchived  PlanStatus = "archived"
)

var ValidPlanStatuses = map[PlanStatus]bool{
	PlanDraft:     true,
	PlanActive:    true,
	PlanInReview:  true,
	PlanCompleted: true,
	PlanArchived:  true,
}

type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalDone       GoalStatus = "done"
)

// DevelopmentPlan is an individual development plan (IPR) owned by one user.
type DevelopmentPlan struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Status      PlanStatus `json:"status"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	ReviewerID  *int64     `json:"reviewer_id,omitempty"`
	ReviewNote  *string    `json:"review_note,omitempty"`
	Goals       []PlanGoal `json:"goals,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PlanGoal struct {
	ID          int64      `json:"id"`
	PlanID      int64      `json:"plan_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FocusArea   string     `json:"focus_area"`
	Status      GoalStatus `json:"status"`
	Progress    int        `json:"progress"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ── API Request/Response Types ────────────────────────────

type CreatePlanRequest struct {
	Title       string     `json:"title"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	Goals       []PlanGoal `json:"goals,omitempty"`
}

type UpdateGoalRequest struct {
	Status   *GoalStatus `json:"status,omitempty"`
	Progress *int        `json:"progress,omitempty"`
}

type ReviewPlanRequest struct {
	Action string `json:"action"` // "approve" or "return"
	Note   string `json:"note,omitempty"`
}

type GeneratePlanDraftRequest struct {
	FocusAreas []string `json:"focus_areas,omitempty"`
	GoalCount  int      `json:"goal_count,omitempty"`
}
