package gamification

import "github.com/dhtuganov/transformation-portal-sub002/internal/models"

// AchievementDef defines a single achievement.
type AchievementDef struct {
	Name        string
	Description string
	XP          int
}

// Achievements maps achievement keys to their definitions.
var Achievements = map[string]AchievementDef{
	"first_assessment": {Name: "Know Thyself", Description: "Complete your first cognitive assessment", XP: 50},
	"assessments_3":    {Name: "Self-Scholar", Description: "Complete 3 cognitive assessments", XP: 100},
	"streak_3":         {Name: "Getting Started", Description: "3-day streak", XP: 10},
	"streak_7":         {Name: "Week Warrior", Description: "7-day streak", XP: 25},
	"streak_14":        {Name: "Dedicated", Description: "14-day streak", XP: 50},
	"streak_30":        {Name: "Monthly Master", Description: "30-day streak", XP: 100},
	"streak_100":       {Name: "Centurion", Description: "100-day streak", XP: 500},
	"questions_50":     {Name: "Warming Up", Description: "Answer 50 quiz questions", XP: 15},
	"questions_250":    {Name: "Scholar", Description: "Answer 250 quiz questions", XP: 50},
	"questions_1000":   {Name: "Expert", Description: "Answer 1000 quiz questions", XP: 150},
	"xp_1000":          {Name: "Rising Star", Description: "Earn 1,000 total XP", XP: 10},
	"xp_10000":         {Name: "Powerhouse", Description: "Earn 10,000 total XP", XP: 50},
	"xp_50000":         {Name: "Legend", Description: "Earn 50,000 total XP", XP: 200},
	"plan_first":       {Name: "Growth Mindset", Description: "Complete your first development plan", XP: 75},
	"plans_5":          {Name: "Serial Improver", Description: "Complete 5 development plans", XP: 200},
	"content_10":       {Name: "Bookworm", Description: "Finish 10 learning entries", XP: 40},
	"content_50":       {Name: "Librarian", Description: "Finish 50 learning entries", XP: 150},
	"level_5":          {Name: "Climber", Description: "Reach level 5", XP: 25},
	"level_10":         {Name: "Summiteer", Description: "Reach level 10", XP: 75},
}

// CheckAchievements returns achievement keys the user currently qualifies for
// based on their gamification state. The caller is responsible for checking
// which ones are already earned and only awarding new ones.
func CheckAchievements(gam *models.UserGamification) []string {
	var earned []string

	if gam.AssessmentsCompleted >= 1 {
		earned = append(earned, "first_assessment")
	}
	if gam.AssessmentsCompleted >= 3 {
		earned = append(earned, "assessments_3")
	}

	if gam.CurrentStreak >= 3 {
		earned = append(earned, "streak_3")
	}
	if gam.CurrentStreak >= 7 {
		earned = append(earned, "streak_7")
	}
	if gam.CurrentStreak >= 14 {
		earned = append(earned, "streak_14")
	}
	if gam.CurrentStreak >= 30 {
		earned = append(earned, "streak_30")
	}
	if gam.CurrentStreak >= 100 {
		earned = append(earned, "streak_100")
	}

	if gam.QuestionsAnsweredTotal >= 50 {
		earned = append(earned, "questions_50")
	}
	if gam.QuestionsAnsweredTotal >= 250 {
		earned = append(earned, "questions_250")
	}
	if gam.QuestionsAnsweredTotal >= 1000 {
		earned = append(earned, "questions_1000")
	}

	if gam.TotalXP >= 1000 {
		earned = append(earned, "xp_1000")
	}
	if gam.TotalXP >= 10000 {
		earned = append(earned, "xp_10000")
	}
	if gam.TotalXP >= 50000 {
		earned = append(earned, "xp_50000")
	}

	if gam.PlansCompleted >= 1 {
		earned = append(earned, "plan_first")
	}
	if gam.PlansCompleted >= 5 {
		earned = append(earned, "plans_5")
	}

	if gam.ContentCompleted >= 10 {
		earned = append(earned, "content_10")
	}
	if gam.ContentCompleted >= 50 {
		earned = append(earned, "content_50")
	}

	if gam.Level >= 5 {
		earned = append(earned, "level_5")
	}
	if gam.Level >= 10 {
		earned = append(earned, "level_10")
	}

	return earned
}
