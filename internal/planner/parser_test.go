package planner

import (
	"context"
	"strings"
	"testing"
)

const validDraftJSON = `{
  "goals": [
    {
      "title": "Practice structured feedback",
      "description": "Prepare one piece of specific feedback before each weekly 1:1 and deliver it using the situation-behavior-impact structure.",
      "focus_area": "communication",
      "suggested_weeks": 6
    },
    {
      "title": "Facilitate a cross-team session",
      "description": "Volunteer to run one cross-team working session, set the agenda in advance and close with written decisions and owners.",
      "focus_area": "leadership",
      "suggested_weeks": 8
    }
  ]
}`

func TestParseResponseValid(t *testing.T) {
	draft, err := ParseResponse(validDraftJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if len(draft.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(draft.Goals))
	}
	if draft.Goals[0].FocusArea != "communication" {
		t.Errorf("goal 1 focus_area = %q, want communication", draft.Goals[0].FocusArea)
	}
	if draft.Goals[1].SuggestedWeeks != 8 {
		t.Errorf("goal 2 suggested_weeks = %d, want 8", draft.Goals[1].SuggestedWeeks)
	}
}

func TestParseResponseCodeFences(t *testing.T) {
	fenced := "```json\n" + validDraftJSON + "\n```"
	draft, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("ParseResponse with fences failed: %v", err)
	}
	if len(draft.Goals) != 2 {
		t.Errorf("expected 2 goals, got %d", len(draft.Goals))
	}

	bareFence := "```\n" + validDraftJSON + "\n```"
	if _, err := ParseResponse(bareFence); err != nil {
		t.Errorf("ParseResponse with bare fences failed: %v", err)
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	_, err := ParseResponse("here are your goals: do better")
	if err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}

func TestParseResponseNoGoals(t *testing.T) {
	_, err := ParseResponse(`{"goals": []}`)
	if err == nil {
		t.Fatal("expected error for empty goals")
	}
	if !strings.Contains(err.Error(), "no goals") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseResponseRejectsBadGoals(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"empty title",
			`{"goals":[{"title":"","description":"A sufficiently long description of the concrete practice to follow.","focus_area":"communication","suggested_weeks":4}]}`,
			"empty title",
		},
		{
			"short description",
			`{"goals":[{"title":"Do a thing","description":"Too short.","focus_area":"communication","suggested_weeks":4}]}`,
			"description length",
		},
		{
			"empty focus area",
			`{"goals":[{"title":"Do a thing","description":"A sufficiently long description of the concrete practice to follow.","focus_area":"  ","suggested_weeks":4}]}`,
			"empty focus_area",
		},
		{
			"weeks out of range",
			`{"goals":[{"title":"Do a thing","description":"A sufficiently long description of the concrete practice to follow.","focus_area":"communication","suggested_weeks":99}]}`,
			"suggested_weeks",
		},
	}

	for _, tt := range tests {
		_, err := ParseResponse(tt.json)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err.Error(), tt.want)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  {}  ", "{}"},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMockClientOutputParses(t *testing.T) {
	resp, err := NewMockClient().Generate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("mock Generate failed: %v", err)
	}
	draft, err := ParseResponse(resp.Content)
	if err != nil {
		t.Fatalf("mock output failed validation: %v", err)
	}
	if len(draft.Goals) == 0 {
		t.Error("mock draft has no goals")
	}
}
