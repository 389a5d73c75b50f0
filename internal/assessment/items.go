package assessment

import "github.com/dhtuganov/transformation-portal-sub002/internal/models"

// ItemRecord is the static shape the bank is seeded from, before the
// database assigns ids.
type ItemRecord struct {
	Dimension      models.Dimension
	Pole           string
	Text           string
	Difficulty     float64
	Discrimination float64
}

// DefaultItems is the built-in item pool: ten items per dimension with
// difficulties spread across the theta scale and a mix of forward- and
// reverse-keyed statements. Seeded into the database on first migration.
var DefaultItems = []ItemRecord{
	// Energy orientation (E/I)
	{models.DimensionEnergy, "E", "After a long day, a team gathering recharges me more than time alone.", -2.0, 1.1},
	{models.DimensionEnergy, "E", "I think out loud and refine ideas by talking them through with colleagues.", -1.4, 1.3},
	{models.DimensionEnergy, "I", "I prefer to process a difficult problem privately before discussing it.", -0.9, 1.2},
	{models.DimensionEnergy, "E", "I volunteer to present results to a large audience without hesitation.", -0.4, 1.5},
	{models.DimensionEnergy, "I", "Open-plan offices drain my focus faster than they energize me.", 0.0, 1.6},
	{models.DimensionEnergy, "E", "At company events I seek out people I have never met.", 0.4, 1.4},
	{models.DimensionEnergy, "I", "I do my best work in long stretches of uninterrupted solitary focus.", 0.9, 1.3},
	{models.DimensionEnergy, "E", "Being the first to speak in a meeting comes naturally to me.", 1.4, 1.2},
	{models.DimensionEnergy, "I", "I decline optional social meetings to protect quiet working time.", 1.9, 1.0},
	{models.DimensionEnergy, "E", "A week of back-to-back workshops sounds energizing rather than exhausting.", 2.3, 0.9},

	// Information gathering (N/S)
	{models.DimensionInfo, "N", "I am drawn to discussing where our field will be in ten years.", -2.1, 1.0},
	{models.DimensionInfo, "S", "I trust methods that have proven themselves over promising novelties.", -1.5, 1.2},
	{models.DimensionInfo, "N", "When reading a report I look for the pattern behind the numbers first.", -1.0, 1.4},
	{models.DimensionInfo, "S", "I notice concrete details in a workspace that others walk past.", -0.5, 1.3},
	{models.DimensionInfo, "N", "I enjoy reframing a routine task as an instance of a bigger idea.", 0.0, 1.6},
	{models.DimensionInfo, "S", "Step-by-step instructions help me more than a statement of intent.", 0.5, 1.5},
	{models.DimensionInfo, "N", "Colleagues say my proposals are imaginative more often than practical.", 1.0, 1.3},
	{models.DimensionInfo, "S", "I verify an idea against real examples before I take it seriously.", 1.5, 1.2},
	{models.DimensionInfo, "N", "Metaphors and analogies are how I naturally explain complex work.", 2.0, 1.0},
	{models.DimensionInfo, "S", "Speculation about distant possibilities feels like wasted meeting time.", 2.4, 0.8},

	// Decision making (T/F)
	{models.DimensionDecision, "T", "A decision is sound when the reasoning holds, even if people dislike it.", -2.2, 1.0},
	{models.DimensionDecision, "F", "I weigh how a reorganization will feel to those affected before its logic.", -1.6, 1.1},
	{models.DimensionDecision, "T", "In a heated debate I stay anchored to the facts rather than the mood.", -1.1, 1.3},
	{models.DimensionDecision, "F", "Keeping the team's trust matters more to me than winning the argument.", -0.5, 1.4},
	{models.DimensionDecision, "T", "I give critical feedback directly even when it will sting.", 0.0, 1.6},
	{models.DimensionDecision, "F", "I soften difficult messages so the relationship survives the content.", 0.5, 1.5},
	{models.DimensionDecision, "T", "Objective criteria should settle promotions, not loyalty or need.", 1.0, 1.4},
	{models.DimensionDecision, "F", "I have changed a correct decision because of the distress it caused.", 1.5, 1.2},
	{models.DimensionDecision, "T", "Being called impartial pleases me more than being called warm.", 2.0, 1.0},
	{models.DimensionDecision, "F", "An efficient plan that demoralizes the team is a bad plan.", 2.4, 0.9},

	// Lifestyle (J/P)
	{models.DimensionLifestyle, "J", "I close open questions early; an unresolved decision nags at me.", -2.1, 1.0},
	{models.DimensionLifestyle, "P", "I keep options open as long as possible in case better ones appear.", -1.5, 1.1},
	{models.DimensionLifestyle, "J", "My calendar for next week is planned before Monday morning.", -1.0, 1.4},
	{models.DimensionLifestyle, "P", "A sudden change of plan feels like an opportunity, not a disruption.", -0.5, 1.3},
	{models.DimensionLifestyle, "J", "I finish work well ahead of a deadline rather than close to it.", 0.0, 1.6},
	{models.DimensionLifestyle, "P", "I do my best work in the energy of the final stretch.", 0.5, 1.5},
	{models.DimensionLifestyle, "J", "Checklists and rituals structure most of my working day.", 1.0, 1.3},
	{models.DimensionLifestyle, "P", "Detailed long-range plans feel confining; I prefer to improvise.", 1.5, 1.2},
	{models.DimensionLifestyle, "J", "An unplanned free day makes me restless until I have scheduled it.", 2.0, 1.0},
	{models.DimensionLifestyle, "P", "I happily start a project before the requirements are settled.", 2.4, 0.9},
}
