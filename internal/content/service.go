package content

import (
	"errors"
	"fmt"

	"github.com/dhtuganov/transformation-portal-sub002/internal/assessment"
	"github.com/dhtuganov/transformation-portal-sub002/internal/gamification"
)

var ErrEntryNotFound = errors.New("content entry not found")

type Service struct {
	library           *Library
	store             *Store
	assessmentService *assessment.Service
	gamService        *gamification.Service
}

func NewService(library *Library, store *Store, as *assessment.Service) *Service {
	return &Service{library: library, store: store, assessmentService: as}
}

// SetGamificationService injects the gamification service for XP awards.
func (s *Service) SetGamificationService(gs *gamification.Service) {
	s.gamService = gs
}

// List returns entry summaries annotated with the user's completion state.
type ListedEntry struct {
	Entry
	Completed bool `json:"completed"`
}

func (s *Service) List(userID int64) ([]ListedEntry, error) {
	done, err := s.store.CompletedSlugs(userID)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	entries := s.library.List()
	out := make([]ListedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ListedEntry{Entry: e, Completed: done[e.Slug]})
	}
	return out, nil
}

func (s *Service) Get(slug string) (*Entry, error) {
	e, ok := s.library.Get(slug)
	if !ok {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

// Complete marks an entry done and awards its XP once per user.
func (s *Service) Complete(userID int64, slug string) (int, error) {
	entry, ok := s.library.Get(slug)
	if !ok {
		return 0, ErrEntryNotFound
	}

	inserted, err := s.store.MarkCompleted(userID, slug)
	if err != nil {
		return 0, err
	}
	if !inserted {
		// Repeat completion earns nothing
		return 0, nil
	}

	var xp int
	if s.gamService != nil {
		xp = s.gamService.AwardContentXP(userID, entry.XPReward, slug)
		s.gamService.UpdateStreak(userID)
	}
	return xp, nil
}

// Recommend suggests entries matching the poles of the user's latest
// cognitive profile. Without a profile it falls back to the full list.
func (s *Service) Recommend(userID int64, limit int) ([]Entry, error) {
	profile, err := s.assessmentService.LatestProfile(userID)
	if err != nil {
		entries := s.library.List()
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		return entries, nil
	}

	poles := make([]string, 0, len(profile.Dimensions))
	for _, d := range profile.Dimensions {
		poles = append(poles, d.Pole)
	}
	return s.library.Recommend(poles, limit), nil
}
