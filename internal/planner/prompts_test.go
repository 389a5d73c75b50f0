package planner

import (
	"strings"
	"testing"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

func sampleProfile() *models.CognitiveProfile {
	return &models.CognitiveProfile{
		TypeCode: "ENTJ",
		Dimensions: []models.DimensionResult{
			{Dimension: models.DimensionEnergy, Pole: "E", Confidence: 0.82},
			{Dimension: models.DimensionInfo, Pole: "N", Confidence: 0.74},
			{Dimension: models.DimensionDecision, Pole: "T", Confidence: 0.91},
			{Dimension: models.DimensionLifestyle, Pole: "J", Confidence: 0.35},
		},
	}
}

func TestBuildDraftUserPromptIncludesProfile(t *testing.T) {
	prompt := BuildDraftUserPrompt(sampleProfile(), []string{"communication", "leadership"}, 4)

	if !strings.Contains(prompt, "ENTJ") {
		t.Error("prompt missing type code")
	}
	if !strings.Contains(prompt, "4 development goals") {
		t.Error("prompt missing goal count")
	}
	if !strings.Contains(prompt, "communication, leadership") {
		t.Error("prompt missing focus areas")
	}
	if !strings.Contains(prompt, "Extraversion") {
		t.Error("prompt missing pole description")
	}
	if !strings.Contains(prompt, "0.35") {
		t.Error("prompt missing confidence value")
	}
}

func TestBuildDraftUserPromptDefaults(t *testing.T) {
	prompt := BuildDraftUserPrompt(sampleProfile(), nil, 0)

	if !strings.Contains(prompt, "3 development goals") {
		t.Error("expected default goal count of 3")
	}
	if !strings.Contains(prompt, "No focus areas were requested") {
		t.Error("expected no-focus-areas instruction")
	}
}

func TestDraftSystemPromptDemandsJSON(t *testing.T) {
	sys := DraftSystemPrompt()
	if !strings.Contains(sys, "valid JSON only") {
		t.Error("system prompt must demand JSON-only output")
	}
	if !strings.Contains(sys, `"goals"`) {
		t.Error("system prompt must show the goals shape")
	}
}
