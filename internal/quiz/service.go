package quiz

import (
	"fmt"
	"log"

	"github.com/dhtuganov/transformation-portal-sub002/internal/gamification"
	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

type Service struct {
	store      *Store
	gamService *gamification.Service
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SetGamificationService injects the gamification service for XP/streak/goal tracking.
func (s *Service) SetGamificationService(gs *gamification.Service) {
	s.gamService = gs
}

// ── Adaptive Drill Serving ──────────────────────────────

// GetDrill serves questions for a topic inside a difficulty window
// centered on the user's mastery, shifted by the slider preference.
func (s *Service) GetDrill(userID int64, req models.QuizDrillRequest) ([]models.DrillQuestion, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if req.Count <= 0 {
		req.Count = 6
	}
	slider := req.Slider
	if slider <= 0 {
		slider = 50
	}
	if slider > 100 {
		slider = 100
	}

	mastery, err := s.store.GetOrCreateMastery(userID, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("get mastery: %w", err)
	}

	target := TargetDifficulty(mastery.Mastery, slider)
	minDiff := max(0, target-15)
	maxDiff := min(100, target+15)

	questions, err := s.store.GetDrillQuestions(userID, req.Topic, minDiff, maxDiff, req.Count)
	if err != nil {
		return nil, err
	}

	// Widen the window when the topic pool is thin
	if len(questions) < req.Count {
		more, err := s.store.GetDrillQuestions(userID, req.Topic, max(0, target-35), min(100, target+35), req.Count)
		if err == nil && len(more) > len(questions) {
			questions = more
		}
	}

	if questions == nil {
		questions = []models.DrillQuestion{}
	}
	return questions, nil
}

// ── Answer Submission + Mastery Updates ─────────────────

func (s *Service) SubmitAnswer(userID int64, req models.SubmitQuizAnswerRequest) (*models.SubmitQuizAnswerResponse, error) {
	question, err := s.store.GetQuestionWithChoices(req.QuestionID)
	if err != nil {
		return nil, err
	}

	isCorrect := question.CorrectChoiceID == req.SelectedChoiceID

	s.store.IncrementServed(question.ID)
	if isCorrect {
		s.store.IncrementCorrect(question.ID)
	}

	if err := s.store.RecordAnswer(userID, question.ID, isCorrect, &req.SelectedChoiceID, req.TimeSpentSeconds); err != nil {
		log.Printf("WARN: failed to record quiz answer: %v", err)
	}

	// Update topic mastery
	mastery, err := s.store.GetOrCreateMastery(userID, question.Topic)
	if err != nil {
		return nil, fmt.Errorf("get mastery: %w", err)
	}
	newMastery := ComputeNewMastery(mastery.Mastery, question.DifficultyScore, isCorrect, mastery.QuestionsAnswered)
	if err := s.store.UpdateMastery(userID, question.Topic, newMastery, isCorrect); err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	// Gamification: award XP, update daily goal, streak, counters
	var xpAwarded int
	if s.gamService != nil {
		xpAwarded = s.gamService.AwardQuizXP(userID, isCorrect, question.DifficultyScore, newMastery)
		s.gamService.UpdateDailyGoal(userID, 1)
		s.gamService.UpdateStreak(userID)
	}

	return &models.SubmitQuizAnswerResponse{
		Correct:         isCorrect,
		CorrectChoiceID: question.CorrectChoiceID,
		Explanation:     question.Explanation,
		Choices:         question.Choices,
		NewMastery:      newMastery,
		XPAwarded:       xpAwarded,
	}, nil
}

// ── Mastery & History ───────────────────────────────────

func (s *Service) Mastery(userID int64) (*models.MasteryResponse, error) {
	topics, err := s.store.AllMastery(userID)
	if err != nil {
		return nil, err
	}
	return &models.MasteryResponse{Topics: topics}, nil
}

func (s *Service) Topics() ([]string, error) {
	topics, err := s.store.ListTopics()
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []string{}
	}
	return topics, nil
}

func (s *Service) History(userID int64, page, pageSize int) (*models.QuizHistoryResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := s.store.GetHistory(userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.QuizHistoryEntry{}
	}
	return &models.QuizHistoryResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
