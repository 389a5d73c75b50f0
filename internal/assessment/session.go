package assessment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

var (
	// ErrSessionComplete is returned for any mutating call on a session
	// that has already produced its result.
	ErrSessionComplete = errors.New("assessment: session already complete")

	// ErrNotComplete is returned when the profile is requested before the
	// session has resolved every dimension.
	ErrNotComplete = errors.New("assessment: session not complete")
)

// dimensionState tracks one dimension's progress within a session.
type dimensionState struct {
	theta         float64
	standardError float64
	administered  map[int64]bool
	scored        []ScoredResponse
	responses     []models.AssessmentResponse
	stopped       bool
}

// Session is the mutable state of one in-progress or completed assessment.
// It is pure in-memory computation; persistence belongs to the caller.
// A session is not safe for concurrent use — callers serialize per session.
type Session struct {
	ID     string
	UserID int64

	bank   *ItemBank
	params Params
	order  []models.Dimension

	dimIdx  int
	status  models.SessionStatus
	dims    map[models.Dimension]*dimensionState
	profile *models.CognitiveProfile
}

// NewSession creates a session at the start of the first dimension.
func NewSession(id string, userID int64, bank *ItemBank, params Params) *Session {
	s := &Session{
		ID:     id,
		UserID: userID,
		bank:   bank,
		params: params,
		order:  models.DimensionOrder,
		status: models.SessionInProgress,
		dims:   make(map[models.Dimension]*dimensionState, len(models.DimensionOrder)),
	}
	for _, d := range s.order {
		s.dims[d] = &dimensionState{
			standardError: math.Inf(1),
			administered:  make(map[int64]bool),
		}
	}
	return s
}

// Status reports whether the session is still in progress.
func (s *Session) Status() models.SessionStatus {
	return s.status
}

// CurrentDimension returns the dimension awaiting responses. The second
// return is false once the session is complete.
func (s *Session) CurrentDimension() (models.Dimension, bool) {
	if s.status == models.SessionComplete {
		return "", false
	}
	return s.order[s.dimIdx], true
}

// NextItem selects the item to administer next. Selector exhaustion is
// absorbed here: an exhausted dimension is force-completed regardless of
// its stopping-criteria state and the session advances.
func (s *Session) NextItem() (*models.AssessmentItem, error) {
	for {
		d, ok := s.CurrentDimension()
		if !ok {
			return nil, ErrSessionComplete
		}

		ds := s.dims[d]
		item, err := SelectNextItem(s.bank, d, ds.theta, ds.administered)
		if errors.Is(err, ErrExhausted) {
			ds.stopped = true
			s.advance()
			continue
		}
		if err != nil {
			return nil, err
		}
		return item, nil
	}
}

// RecordResponse records one answer for the current dimension, re-estimates
// theta and standard error from the dimension's full history, and evaluates
// the stopping criteria. Finalized results are never touched: once the
// session is complete every further call fails with ErrSessionComplete.
func (s *Session) RecordResponse(itemID int64, value int, answeredAt time.Time) error {
	d, ok := s.CurrentDimension()
	if !ok {
		return ErrSessionComplete
	}

	item, err := s.bank.Item(itemID)
	if err != nil {
		return err
	}
	if item.Dimension != d {
		return fmt.Errorf("assessment: item %d belongs to %s, current dimension is %s",
			itemID, item.Dimension, d)
	}
	if value < 1 || value > 5 {
		return fmt.Errorf("assessment: response value %d outside 1-5", value)
	}

	ds := s.dims[d]
	if ds.administered[itemID] {
		return fmt.Errorf("assessment: item %d already administered in this session", itemID)
	}

	ds.administered[itemID] = true
	ds.scored = append(ds.scored, ScoredResponse{Item: item, Score: FavorScore(item, value)})
	ds.responses = append(ds.responses, models.AssessmentResponse{
		ItemID:     itemID,
		Value:      value,
		AnsweredAt: answeredAt,
	})

	ds.theta, ds.standardError = EstimateTheta(ds.scored, s.params)

	if s.shouldStop(ds) {
		ds.stopped = true
		s.advance()
	}
	return nil
}

// shouldStop applies the dimension stopping criteria: precision reached
// with a minimum-item floor, or the hard item cap. The stopped flag is
// sticky, so the decision never reverts as history grows.
func (s *Session) shouldStop(ds *dimensionState) bool {
	if ds.stopped {
		return true
	}
	n := len(ds.responses)
	if n >= s.params.MaxItemsPerDimension {
		return true
	}
	return ds.standardError <= s.params.PrecisionThreshold && n >= s.params.MinItemsPerDimension
}

// ShouldStop reports whether the dimension has gathered enough information.
func (s *Session) ShouldStop(d models.Dimension) bool {
	return s.shouldStop(s.dims[d])
}

// advance moves the dimension pointer past every stopped dimension and
// finalizes the session when none remain. Dimensions are traversed once
// in fixed order and never revisited.
func (s *Session) advance() {
	for s.dimIdx < len(s.order) && s.dims[s.order[s.dimIdx]].stopped {
		s.dimIdx++
	}
	if s.dimIdx >= len(s.order) {
		s.complete()
	}
}

// complete maps final thetas to poles and freezes the profile.
// Pole resolution is theta > 0 for the first-listed pole, otherwise the
// second: an exact zero deliberately ties to the second pole.
func (s *Session) complete() {
	s.status = models.SessionComplete

	profile := &models.CognitiveProfile{
		UserID:      s.UserID,
		SessionID:   s.ID,
		CompletedAt: time.Now().UTC(),
	}
	code := make([]byte, 0, len(s.order))
	for _, d := range s.order {
		ds := s.dims[d]
		poles := models.DimensionPoles[d]
		pole := poles[1]
		if ds.theta > 0 {
			pole = poles[0]
		}
		code = append(code, pole...)
		profile.Dimensions = append(profile.Dimensions, models.DimensionResult{
			Dimension:     d,
			Pole:          pole,
			Theta:         ds.theta,
			StandardError: ds.standardError,
			Confidence:    confidence(ds.theta, ds.standardError),
			ItemsUsed:     len(ds.responses),
		})
	}
	profile.TypeCode = string(code)
	s.profile = profile
}

// confidence derives a [0,1] preference-strength measure from the theta
// magnitude relative to its uncertainty.
func confidence(theta, standardError float64) float64 {
	if math.IsInf(standardError, 1) {
		return 0
	}
	c := math.Abs(theta) / (math.Abs(theta) + standardError)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Profile returns the finalized result. Only defined once complete.
func (s *Session) Profile() (*models.CognitiveProfile, error) {
	if s.status != models.SessionComplete {
		return nil, ErrNotComplete
	}
	return s.profile, nil
}

// Theta exposes a dimension's current estimate for progress reporting.
func (s *Session) Theta(d models.Dimension) (theta, standardError float64) {
	ds := s.dims[d]
	return ds.theta, ds.standardError
}

// ItemsAnswered counts recorded responses across all dimensions.
func (s *Session) ItemsAnswered() int {
	n := 0
	for _, ds := range s.dims {
		n += len(ds.responses)
	}
	return n
}

// DimensionsDone counts resolved dimensions.
func (s *Session) DimensionsDone() int {
	n := 0
	for _, ds := range s.dims {
		if ds.stopped {
			n++
		}
	}
	return n
}

// Responses returns the recorded answers for a dimension, oldest first.
func (s *Session) Responses(d models.Dimension) []models.AssessmentResponse {
	return s.dims[d].responses
}
