package models

import "time"

// Dimension is one of the four bipolar axes the assessment measures.
type Dimension string

const (
	DimensionEnergy    Dimension = "energy_orientation"
	DimensionInfo      Dimension = "information_gathering"
	DimensionDecision  Dimension = "decision_making"
	DimensionLifestyle Dimension = "lifestyle"
)

// DimensionOrder is the fixed traversal order of an assessment session.
// Poles concatenate in this order to form the four-letter type code.
var DimensionOrder = []Dimension{
	DimensionEnergy,
	DimensionInfo,
	DimensionDecision,
	DimensionLifestyle,
}

var ValidDimensions = map[Dimension]bool{
	DimensionEnergy:    true,
	DimensionInfo:      true,
	DimensionDecision:  true,
	DimensionLifestyle: true,
}

// DimensionPoles maps each dimension to its two poles. The first pole is
// resolved when final theta is positive, the second otherwise.
var DimensionPoles = map[Dimension][2]string{
	DimensionEnergy:    {"E", "I"},
	DimensionInfo:      {"N", "S"},
	DimensionDecision:  {"T", "F"},
	DimensionLifestyle: {"J", "P"},
}

// AssessmentItem is one question in the item bank. Immutable once loaded.
type AssessmentItem struct {
	ID             int64     `json:"id"`
	Dimension      Dimension `json:"dimension"`
	Pole           string    `json:"pole"`
	Text           string    `json:"text"`
	Difficulty     float64   `json:"difficulty"`
	Discrimination float64   `json:"discrimination"`
}

// AssessmentResponse is a respondent's answer to one administered item.
// Value is on a 1-5 agreement scale toward the item's pole.
type AssessmentResponse struct {
	ItemID     int64     `json:"item_id"`
	Value      int       `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

// DimensionResult is the resolved outcome for one dimension.
type DimensionResult struct {
	Dimension     Dimension `json:"dimension"`
	Pole          string    `json:"pole"`
	Theta         float64   `json:"theta"`
	StandardError float64   `json:"standard_error"`
	Confidence    float64   `json:"confidence"`
	ItemsUsed     int       `json:"items_used"`
}

// CognitiveProfile is the read-only result of a completed session.
type CognitiveProfile struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	SessionID   string            `json:"session_id"`
	TypeCode    string            `json:"type_code"`
	Dimensions  []DimensionResult `json:"dimensions"`
	CompletedAt time.Time         `json:"completed_at"`
}

// ── API Request/Response Types ────────────────────────────

// ServedItem is an item as presented to the respondent: no parameters
// or polarity leak to the client.
type ServedItem struct {
	ID        int64     `json:"id"`
	Dimension Dimension `json:"dimension"`
	Text      string    `json:"text"`
}

type StartSessionResponse struct {
	SessionID string      `json:"session_id"`
	Status    string      `json:"status"`
	Item      *ServedItem `json:"item"`
}

type AnswerRequest struct {
	ItemID int64 `json:"item_id"`
	Value  int   `json:"value"`
}

type AnswerResponse struct {
	Status    string            `json:"status"`
	Item      *ServedItem       `json:"item,omitempty"`
	Profile   *CognitiveProfile `json:"profile,omitempty"`
	XPAwarded int               `json:"xp_awarded,omitempty"`
}

type SessionProgress struct {
	SessionID        string        `json:"session_id"`
	Status           SessionStatus `json:"status"`
	CurrentDimension *Dimension    `json:"current_dimension,omitempty"`
	ItemsAnswered    int           `json:"items_answered"`
	DimensionsDone   int           `json:"dimensions_done"`
}

type ProfileExportEnvelope struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Profiles   []CognitiveProfile `json:"profiles"`
}
