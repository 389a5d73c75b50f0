package planner

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedDraft is the parsed output of a draft generation call.
type GeneratedDraft struct {
	Goals []GeneratedGoal `json:"goals"`
}

type GeneratedGoal struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	FocusArea      string `json:"focus_area"`
	SuggestedWeeks int    `json:"suggested_weeks"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func ParseResponse(responseBody string) (*GeneratedDraft, error) {
	cleaned := stripCodeFences(responseBody)

	var draft GeneratedDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateDraft(draft *GeneratedDraft) error {
	var errs []string

	if len(draft.Goals) == 0 {
		return &ValidationError{Errors: []string{"no goals in draft"}}
	}
	if len(draft.Goals) > 10 {
		errs = append(errs, fmt.Sprintf("too many goals: %d (max 10)", len(draft.Goals)))
	}

	for i, g := range draft.Goals {
		gNum := i + 1

		if strings.TrimSpace(g.Title) == "" {
			errs = append(errs, fmt.Sprintf("goal %d: empty title", gNum))
		}
		if len(g.Title) > 200 {
			errs = append(errs, fmt.Sprintf("goal %d: title length %d exceeds 200", gNum, len(g.Title)))
		}

		descLen := len(g.Description)
		if descLen < 30 || descLen > 1500 {
			errs = append(errs, fmt.Sprintf("goal %d: description length %d outside range [30, 1500]", gNum, descLen))
		}

		if strings.TrimSpace(g.FocusArea) == "" {
			errs = append(errs, fmt.Sprintf("goal %d: empty focus_area", gNum))
		}

		if g.SuggestedWeeks < 0 || g.SuggestedWeeks > 52 {
			errs = append(errs, fmt.Sprintf("goal %d: suggested_weeks %d outside range [0, 52]", gNum, g.SuggestedWeeks))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
