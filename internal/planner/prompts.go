package planner

import (
	"fmt"
	"strings"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

var poleDescriptions = map[string]string{
	"E": "Extraversion — energized by people and external activity; thinks out loud",
	"I": "Introversion — energized by reflection and focused work; thinks before speaking",
	"N": "Intuition — drawn to patterns, possibilities and the big picture",
	"S": "Sensing — drawn to concrete facts, details and practical experience",
	"T": "Thinking — decides by logic, consistency and objective criteria",
	"F": "Feeling — decides by values, empathy and impact on people",
	"J": "Judging — prefers structure, plans and closure",
	"P": "Perceiving — prefers flexibility, options and adapting as things unfold",
}

var dimensionLabels = map[models.Dimension]string{
	models.DimensionEnergy:    "Energy orientation",
	models.DimensionInfo:      "Information gathering",
	models.DimensionDecision:  "Decision making",
	models.DimensionLifestyle: "Lifestyle",
}

// DraftSystemPrompt instructs the model to act as a development coach
// and emit strict JSON.
func DraftSystemPrompt() string {
	return `You are an experienced corporate learning and development coach. You design individual development plans for employees based on their cognitive style profile.

Your goals must be:
- Specific and behavioral: an observable action the employee can practice, not a vague aspiration
- Achievable within a quarter or two of normal work
- Tied to the employee's cognitive style: either leveraging a strength or deliberately stretching a less-preferred mode
- Measurable: a reader should be able to tell whether the goal was done

You MUST respond with valid JSON only, no prose before or after, in exactly this shape:

{
  "goals": [
    {
      "title": "short imperative goal title",
      "description": "2-4 sentences describing the concrete practice, how often, and how progress is observed",
      "focus_area": "one of the requested focus areas, or a lowercase_snake_case area you chose",
      "suggested_weeks": 6
    }
  ]
}`
}

// BuildDraftUserPrompt renders the profile and constraints into the
// generation request.
func BuildDraftUserPrompt(profile *models.CognitiveProfile, focusAreas []string, goalCount int) string {
	if goalCount <= 0 {
		goalCount = 3
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create %d development goals for an employee with cognitive type %s.\n\n", goalCount, profile.TypeCode)

	b.WriteString("Profile detail (per dimension, with measurement confidence 0-1):\n")
	for _, d := range profile.Dimensions {
		label := dimensionLabels[d.Dimension]
		if label == "" {
			label = string(d.Dimension)
		}
		desc := poleDescriptions[d.Pole]
		fmt.Fprintf(&b, "- %s: %s (confidence %.2f)\n", label, desc, d.Confidence)
	}

	if len(focusAreas) > 0 {
		fmt.Fprintf(&b, "\nRequested focus areas: %s\n", strings.Join(focusAreas, ", "))
		b.WriteString("Every goal's focus_area must come from this list.\n")
	} else {
		b.WriteString("\nNo focus areas were requested; choose areas that best fit the profile.\n")
	}

	b.WriteString("\nBalance the set: at least one goal should build on a clear preference, and at least one should stretch a less-preferred mode. Treat low-confidence dimensions as flexible rather than fixed traits.\n")
	b.WriteString("\nRespond with JSON only.")

	return b.String()
}
