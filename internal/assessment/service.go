package assessment

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhtuganov/transformation-portal-sub002/internal/gamification"
	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// ErrSessionNotFound is returned when a session id is unknown or belongs
// to another user.
var ErrSessionNotFound = errors.New("assessment: session not found")

// sessionEntry serializes access to one live session. The engine mutates
// per-dimension state non-atomically, so one request at a time per session.
type sessionEntry struct {
	mu   sync.Mutex
	sess *Session
}

type Service struct {
	store  *Store
	bank   *ItemBank
	params Params

	gamService *gamification.Service

	mu   sync.Mutex
	live map[string]*sessionEntry
}

func NewService(store *Store, bank *ItemBank, params Params) *Service {
	return &Service{
		store:  store,
		bank:   bank,
		params: params,
		live:   make(map[string]*sessionEntry),
	}
}

// SetGamificationService injects the gamification service for XP awards.
func (s *Service) SetGamificationService(gs *gamification.Service) {
	s.gamService = gs
}

// StartSession resumes the user's open session or creates a fresh one,
// returning the first item to administer.
func (s *Service) StartSession(userID int64) (*models.StartSessionResponse, error) {
	sessionID, err := s.store.OpenSessionID(userID)
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
		if err := s.store.CreateSession(sessionID, userID); err != nil {
			return nil, err
		}
		log.Printf("[assessment] user=%d started session %s", userID, sessionID)
	}

	entry, err := s.entry(sessionID, userID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	item, err := entry.sess.NextItem()
	if errors.Is(err, ErrSessionComplete) {
		// An open session row with a finished engine state should not
		// occur; finalize defensively rather than serving it again.
		return nil, fmt.Errorf("assessment: session %s already resolved", sessionID)
	}
	if err != nil {
		return nil, err
	}

	return &models.StartSessionResponse{
		SessionID: sessionID,
		Status:    string(models.SessionInProgress),
		Item:      serveItem(item),
	}, nil
}

// SubmitAnswer records one response and returns either the next item or,
// on completion, the finalized cognitive profile.
func (s *Service) SubmitAnswer(userID int64, sessionID string, req models.AnswerRequest) (*models.AnswerResponse, error) {
	entry, err := s.entry(sessionID, userID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	answeredAt := time.Now().UTC()
	if err := entry.sess.RecordResponse(req.ItemID, req.Value, answeredAt); err != nil {
		return nil, err
	}

	if err := s.store.RecordResponse(sessionID, req.ItemID, req.Value, answeredAt); err != nil {
		log.Printf("WARN: failed to persist response for session %s: %v", sessionID, err)
	}

	item, err := entry.sess.NextItem()
	if errors.Is(err, ErrSessionComplete) {
		return s.finalize(entry.sess)
	}
	if err != nil {
		return nil, err
	}

	return &models.AnswerResponse{
		Status: string(models.SessionInProgress),
		Item:   serveItem(item),
	}, nil
}

func (s *Service) finalize(sess *Session) (*models.AnswerResponse, error) {
	profile, err := sess.Profile()
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveProfile(profile); err != nil {
		return nil, err
	}
	if err := s.store.CompleteSession(sess.ID); err != nil {
		log.Printf("WARN: failed to mark session %s complete: %v", sess.ID, err)
	}

	var xp int
	if s.gamService != nil {
		xp = s.gamService.AwardAssessmentXP(sess.UserID, sess.ItemsAnswered())
		s.gamService.UpdateStreak(sess.UserID)
	}

	s.mu.Lock()
	delete(s.live, sess.ID)
	s.mu.Unlock()

	log.Printf("[assessment] user=%d session=%s complete: type=%s items=%d",
		sess.UserID, sess.ID, profile.TypeCode, sess.ItemsAnswered())

	return &models.AnswerResponse{
		Status:    string(models.SessionComplete),
		Profile:   profile,
		XPAwarded: xp,
	}, nil
}

// Progress reports the session's dimension pointer and answer counts.
func (s *Service) Progress(userID int64, sessionID string) (*models.SessionProgress, error) {
	entry, err := s.entry(sessionID, userID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	progress := &models.SessionProgress{
		SessionID:      sessionID,
		Status:         entry.sess.Status(),
		ItemsAnswered:  entry.sess.ItemsAnswered(),
		DimensionsDone: entry.sess.DimensionsDone(),
	}
	if d, ok := entry.sess.CurrentDimension(); ok {
		progress.CurrentDimension = &d
	}
	return progress, nil
}

// LatestProfile returns the user's most recent completed profile.
func (s *Service) LatestProfile(userID int64) (*models.CognitiveProfile, error) {
	return s.store.LatestProfile(userID)
}

// ExportProfiles builds the admin export envelope.
func (s *Service) ExportProfiles() (*models.ProfileExportEnvelope, error) {
	profiles, err := s.store.ExportProfiles()
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.CognitiveProfile{}
	}
	return &models.ProfileExportEnvelope{
		Version:    1,
		ExportedAt: time.Now().UTC(),
		Profiles:   profiles,
	}, nil
}

// entry returns the live in-memory session, rehydrating from persisted
// responses when the process has restarted since the session began.
func (s *Service) entry(sessionID string, userID int64) (*sessionEntry, error) {
	s.mu.Lock()
	if e, ok := s.live[sessionID]; ok {
		s.mu.Unlock()
		if e.sess.UserID != userID {
			return nil, ErrSessionNotFound
		}
		return e, nil
	}
	s.mu.Unlock()

	owner, status, err := s.store.SessionOwner(sessionID)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrSessionNotFound
	}
	if status == models.SessionComplete {
		return nil, ErrSessionComplete
	}

	sess, err := s.rehydrate(sessionID, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.live[sessionID]; ok {
		return e, nil
	}
	e := &sessionEntry{sess: sess}
	s.live[sessionID] = e
	return e, nil
}

// rehydrate replays persisted responses through a fresh session. The
// engine is deterministic, so the rebuilt state matches the state before
// restart. NextItem runs before each replayed answer so exhaustion-forced
// dimension switches happen at the same points they originally did.
func (s *Service) rehydrate(sessionID string, userID int64) (*Session, error) {
	responses, err := s.store.LoadResponses(sessionID)
	if err != nil {
		return nil, err
	}

	sess := NewSession(sessionID, userID, s.bank, s.params)
	for _, r := range responses {
		if _, err := sess.NextItem(); err != nil && !errors.Is(err, ErrSessionComplete) {
			return nil, fmt.Errorf("rehydrate session %s: %w", sessionID, err)
		}
		if err := sess.RecordResponse(r.ItemID, r.Value, r.AnsweredAt); err != nil {
			return nil, fmt.Errorf("rehydrate session %s: replay item %d: %w", sessionID, r.ItemID, err)
		}
	}
	if len(responses) > 0 {
		log.Printf("[assessment] rehydrated session %s with %d responses", sessionID, len(responses))
	}
	return sess, nil
}

func serveItem(item *models.AssessmentItem) *models.ServedItem {
	return &models.ServedItem{
		ID:        item.ID,
		Dimension: item.Dimension,
		Text:      item.Text,
	}
}
