package plans

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dhtuganov/transformation-portal-sub002/internal/assessment"
	"github.com/dhtuganov/transformation-portal-sub002/internal/gamification"
	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
	"github.com/dhtuganov/transformation-portal-sub002/internal/planner"
)

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrGoalNotFound  = errors.New("goal not found")
	ErrNotPlanOwner  = errors.New("not the plan owner")
	ErrNoProfile     = errors.New("no cognitive profile; complete an assessment first")
	ErrBadTransition = errors.New("invalid status transition")
)

type Service struct {
	store             *Store
	generator         *planner.Generator
	assessmentService *assessment.Service
	gamService        *gamification.Service
}

func NewService(store *Store, gen *planner.Generator, as *assessment.Service) *Service {
	return &Service{store: store, generator: gen, assessmentService: as}
}

// SetGamificationService injects the gamification service for XP awards.
func (s *Service) SetGamificationService(gs *gamification.Service) {
	s.gamService = gs
}

// ── CRUD ────────────────────────────────────────────────

func (s *Service) CreatePlan(userID int64, req models.CreatePlanRequest) (*models.DevelopmentPlan, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return s.store.CreatePlan(userID, req)
}

// GetPlan returns the plan when the requester owns it or holds a
// manager/admin role.
func (s *Service) GetPlan(planID, userID int64, role models.Role) (*models.DevelopmentPlan, error) {
	plan, err := s.store.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID && role != models.RoleManager && role != models.RoleAdmin {
		return nil, ErrNotPlanOwner
	}
	return plan, nil
}

func (s *Service) ListPlans(userID int64) ([]models.DevelopmentPlan, error) {
	plans, err := s.store.ListPlansByUser(userID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.DevelopmentPlan{}
	}
	return plans, nil
}

func (s *Service) ReviewQueue() ([]models.DevelopmentPlan, error) {
	plans, err := s.store.ListPlansForReview()
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.DevelopmentPlan{}
	}
	return plans, nil
}

// ── Draft Generation ────────────────────────────────────

// GenerateDraft proposes a plan from the user's latest cognitive profile
// and persists it in draft status.
func (s *Service) GenerateDraft(ctx context.Context, userID int64, req models.GeneratePlanDraftRequest) (*models.DevelopmentPlan, error) {
	profile, err := s.assessmentService.LatestProfile(userID)
	if err != nil {
		return nil, ErrNoProfile
	}

	draft, llmResp, err := s.generator.GenerateDraft(ctx, profile, req.FocusAreas, req.GoalCount)
	if err != nil {
		return nil, fmt.Errorf("generate draft: %w", err)
	}
	if llmResp != nil {
		log.Printf("[plans] draft generated for user %d: %d goals, %d prompt + %d output tokens",
			userID, len(draft.Goals), llmResp.PromptTokens, llmResp.OutputTokens)
	}

	createReq := models.CreatePlanRequest{
		Title: fmt.Sprintf("Development plan (%s)", profile.TypeCode),
	}
	for _, g := range draft.Goals {
		createReq.Goals = append(createReq.Goals, models.PlanGoal{
			Title:       g.Title,
			Description: g.Description,
			FocusArea:   g.FocusArea,
		})
	}

	return s.store.CreatePlan(userID, createReq)
}

// ── Lifecycle ───────────────────────────────────────────

// Activate moves a draft plan into active status.
func (s *Service) Activate(planID, userID int64) (*models.DevelopmentPlan, error) {
	plan, err := s.ownedPlan(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanDraft {
		return nil, fmt.Errorf("%w: %s -> active", ErrBadTransition, plan.Status)
	}
	if err := s.store.UpdatePlanStatus(planID, models.PlanActive); err != nil {
		return nil, err
	}
	return s.store.GetPlan(planID)
}

// SubmitForReview moves an active plan into the manager review queue.
func (s *Service) SubmitForReview(planID, userID int64) (*models.DevelopmentPlan, error) {
	plan, err := s.ownedPlan(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanActive {
		return nil, fmt.Errorf("%w: %s -> in_review", ErrBadTransition, plan.Status)
	}
	if err := s.store.UpdatePlanStatus(planID, models.PlanInReview); err != nil {
		return nil, err
	}
	return s.store.GetPlan(planID)
}

// Review records a manager decision: approve completes the plan,
// return sends it back to active with a note.
func (s *Service) Review(planID, reviewerID int64, req models.ReviewPlanRequest) (*models.DevelopmentPlan, error) {
	plan, err := s.store.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanInReview {
		return nil, fmt.Errorf("%w: plan is %s, not in_review", ErrBadTransition, plan.Status)
	}

	switch req.Action {
	case "approve":
		if err := s.store.SetReview(planID, reviewerID, req.Note, models.PlanCompleted); err != nil {
			return nil, err
		}
		if s.gamService != nil {
			s.gamService.AwardPlanCompletionXP(plan.UserID)
			s.gamService.UpdateStreak(plan.UserID)
		}
	case "return":
		if err := s.store.SetReview(planID, reviewerID, req.Note, models.PlanActive); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("action must be approve or return")
	}

	return s.store.GetPlan(planID)
}

// Archive retires a plan in any terminal or abandoned state.
func (s *Service) Archive(planID, userID int64) (*models.DevelopmentPlan, error) {
	plan, err := s.ownedPlan(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan.Status == models.PlanInReview {
		return nil, fmt.Errorf("%w: cannot archive a plan under review", ErrBadTransition)
	}
	if err := s.store.UpdatePlanStatus(planID, models.PlanArchived); err != nil {
		return nil, err
	}
	return s.store.GetPlan(planID)
}

// ── Goals ───────────────────────────────────────────────

func (s *Service) UpdateGoal(goalID, userID int64, req models.UpdateGoalRequest) (*models.PlanGoal, error) {
	goal, err := s.store.GetGoal(goalID)
	if err != nil {
		return nil, err
	}
	plan, err := s.ownedPlan(goal.PlanID, userID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanActive && plan.Status != models.PlanDraft {
		return nil, fmt.Errorf("%w: goals are frozen while plan is %s", ErrBadTransition, plan.Status)
	}

	status := goal.Status
	progress := goal.Progress
	if req.Status != nil {
		switch *req.Status {
		case models.GoalPending, models.GoalInProgress, models.GoalDone:
			status = *req.Status
		default:
			return nil, fmt.Errorf("invalid goal status %q", *req.Status)
		}
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, fmt.Errorf("progress must be 0-100")
		}
		progress = *req.Progress
	}
	// A done goal is by definition fully progressed
	if status == models.GoalDone {
		progress = 100
	}

	wasDone := goal.Status == models.GoalDone
	if err := s.store.UpdateGoal(goalID, status, progress); err != nil {
		return nil, err
	}

	if !wasDone && status == models.GoalDone && s.gamService != nil {
		s.gamService.AwardPlanGoalXP(userID)
		s.gamService.UpdateStreak(userID)
	}

	return s.store.GetGoal(goalID)
}

func (s *Service) ownedPlan(planID, userID int64) (*models.DevelopmentPlan, error) {
	plan, err := s.store.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrNotPlanOwner
	}
	return plan, nil
}
