package quiz

// SeedChoice is one option in a seeded question.
type SeedChoice struct {
	ChoiceID string
	Text     string
}

// SeedQuestion is a quiz question in the starter pool.
type SeedQuestion struct {
	Topic           string
	Prompt          string
	Choices         []SeedChoice
	CorrectChoiceID string
	Explanation     string
	DifficultyScore int
}

// DefaultQuestions provides the starter question pool. Each topic spans a
// spread of difficulties so the adaptive window has something to serve at
// every mastery level.
var DefaultQuestions = []SeedQuestion{
	// ── effective_feedback ──────────────────────────────
	{
		Topic:  "effective_feedback",
		Prompt: "A colleague's report missed the deadline. Which opener keeps the feedback constructive?",
		Choices: []SeedChoice{
			{"a", "You always hand things in late."},
			{"b", "The report arrived two days after the deadline, which delayed the client review."},
			{"c", "I guess deadlines aren't your thing."},
			{"d", "Other people manage to deliver on time."},
		},
		CorrectChoiceID: "b",
		Explanation:     "Effective feedback describes the specific observable behavior and its impact, not a generalization about the person.",
		DifficultyScore: 25,
	},
	{
		Topic:  "effective_feedback",
		Prompt: "What does the SBI model stand for?",
		Choices: []SeedChoice{
			{"a", "Summary, Background, Intent"},
			{"b", "Situation, Behavior, Impact"},
			{"c", "Statement, Belief, Inference"},
			{"d", "Standard, Baseline, Improvement"},
		},
		CorrectChoiceID: "b",
		Explanation:     "SBI structures feedback around the Situation it happened in, the Behavior observed, and the Impact it had.",
		DifficultyScore: 35,
	},
	{
		Topic:  "effective_feedback",
		Prompt: "When is the feedback sandwich (positive–negative–positive) most likely to backfire?",
		Choices: []SeedChoice{
			{"a", "When the recipient is junior"},
			{"b", "When used predictably, so praise starts signaling incoming criticism"},
			{"c", "When delivered in writing"},
			{"d", "When the positives outnumber the negatives"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Routine sandwiching teaches people to discount praise as a preamble, eroding trust in genuine recognition.",
		DifficultyScore: 60,
	},
	{
		Topic:  "effective_feedback",
		Prompt: "A peer reacts defensively to your feedback. What is the most productive next step?",
		Choices: []SeedChoice{
			{"a", "Repeat the point more firmly"},
			{"b", "Withdraw the feedback to preserve the relationship"},
			{"c", "Ask what they heard and explore the gap between intent and perception"},
			{"d", "Escalate to their manager"},
		},
		CorrectChoiceID: "c",
		Explanation:     "Defensiveness usually signals a perceived threat; checking what was heard reopens dialogue without abandoning the message.",
		DifficultyScore: 75,
	},

	// ── team_communication ──────────────────────────────
	{
		Topic:  "team_communication",
		Prompt: "Which channel fits a decision that needs a permanent, searchable record?",
		Choices: []SeedChoice{
			{"a", "A hallway conversation"},
			{"b", "A written summary shared with the team"},
			{"c", "A quick voice call"},
			{"d", "A private direct message"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Decisions that others depend on belong in a durable, accessible written form.",
		DifficultyScore: 20,
	},
	{
		Topic:  "team_communication",
		Prompt: "What is active listening primarily about?",
		Choices: []SeedChoice{
			{"a", "Preparing your reply while the other person talks"},
			{"b", "Attending fully and reflecting back what you understood"},
			{"c", "Agreeing with the speaker to keep rapport"},
			{"d", "Taking verbatim notes"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Active listening means full attention plus verification — paraphrasing to confirm the message landed as intended.",
		DifficultyScore: 30,
	},
	{
		Topic:  "team_communication",
		Prompt: "A distributed team keeps re-litigating settled decisions. Which practice addresses the root cause?",
		Choices: []SeedChoice{
			{"a", "Longer status meetings"},
			{"b", "A decision log with context and owners, linked where work happens"},
			{"c", "Fewer stakeholders per decision"},
			{"d", "Recording every meeting"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Re-litigation usually means the decision and its rationale were never captured where people could find them.",
		DifficultyScore: 65,
	},
	{
		Topic:  "team_communication",
		Prompt: "In a tense cross-team thread, which move de-escalates while keeping the issue alive?",
		Choices: []SeedChoice{
			{"a", "Restating the shared goal, then separating facts under dispute from interpretations"},
			{"b", "Adding more senior people to the thread"},
			{"c", "Switching to sarcasm to lighten the mood"},
			{"d", "Going silent until the thread dies down"},
		},
		CorrectChoiceID: "a",
		Explanation:     "Anchoring on the shared goal and untangling facts from interpretations lowers the temperature without burying the disagreement.",
		DifficultyScore: 80,
	},

	// ── time_management ─────────────────────────────────
	{
		Topic:  "time_management",
		Prompt: "The Eisenhower matrix sorts tasks along which two axes?",
		Choices: []SeedChoice{
			{"a", "Effort and cost"},
			{"b", "Urgency and importance"},
			{"c", "Risk and reward"},
			{"d", "Duration and difficulty"},
		},
		CorrectChoiceID: "b",
		Explanation:     "The matrix separates the urgent from the important so that important-but-not-urgent work gets scheduled rather than crowded out.",
		DifficultyScore: 25,
	},
	{
		Topic:  "time_management",
		Prompt: "What is timeboxing?",
		Choices: []SeedChoice{
			{"a", "Working until a task is finished, however long it takes"},
			{"b", "Allocating a fixed time window to a task and stopping when it ends"},
			{"c", "Batching similar tasks together"},
			{"d", "Delegating tasks with deadlines attached"},
		},
		CorrectChoiceID: "b",
		Explanation:     "A timebox caps the investment up front; the constraint forces prioritization within the window.",
		DifficultyScore: 35,
	},
	{
		Topic:  "time_management",
		Prompt: "Your calendar is fully booked yet strategic work never happens. What is the most effective intervention?",
		Choices: []SeedChoice{
			{"a", "Working evenings to fit it in"},
			{"b", "Blocking recurring focus time first and defending it like a meeting"},
			{"c", "Declining all meetings for a month"},
			{"d", "Waiting for a quieter quarter"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Unscheduled priorities lose to scheduled demands; strategic work survives only when it claims calendar space with the same standing as meetings.",
		DifficultyScore: 55,
	},
	{
		Topic:  "time_management",
		Prompt: "Context switching is expensive mainly because of what?",
		Choices: []SeedChoice{
			{"a", "The minutes spent opening different tools"},
			{"b", "Attention residue — part of your focus stays on the previous task"},
			{"c", "Managers noticing the switches"},
			{"d", "Calendar fragmentation"},
		},
		CorrectChoiceID: "b",
		Explanation:     "The dominant cost is cognitive: after a switch, residual attention on the prior task suppresses performance on the new one.",
		DifficultyScore: 70,
	},

	// ── conflict_resolution ─────────────────────────────
	{
		Topic:  "conflict_resolution",
		Prompt: "Two teammates disagree about an approach. What should you establish first?",
		Choices: []SeedChoice{
			{"a", "Who is more senior"},
			{"b", "Whether they are solving the same problem with the same constraints"},
			{"c", "Which approach is cheaper"},
			{"d", "What the rest of the team prefers"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Many conflicts dissolve once hidden differences in goals or constraints are surfaced; until then, debating solutions is premature.",
		DifficultyScore: 40,
	},
	{
		Topic:  "conflict_resolution",
		Prompt: "In the Thomas-Kilmann model, 'collaborating' differs from 'compromising' in what way?",
		Choices: []SeedChoice{
			{"a", "Collaborating seeks a solution fully satisfying both parties; compromising trades partial losses"},
			{"b", "Collaborating is faster"},
			{"c", "Compromising requires a mediator"},
			{"d", "They are synonyms"},
		},
		CorrectChoiceID: "a",
		Explanation:     "Compromise splits the difference; collaboration invests in finding an option that meets both parties' underlying interests.",
		DifficultyScore: 60,
	},
	{
		Topic:  "conflict_resolution",
		Prompt: "A conflict keeps resurfacing after being 'resolved'. What does this most often indicate?",
		Choices: []SeedChoice{
			{"a", "The people involved are simply incompatible"},
			{"b", "The settlement addressed positions but not underlying interests"},
			{"c", "Not enough meetings were held"},
			{"d", "The conflict needed an executive decision"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Agreements that paper over unmet interests are unstable; the tension returns through new surface disputes.",
		DifficultyScore: 75,
	},

	// ── change_management ───────────────────────────────
	{
		Topic:  "change_management",
		Prompt: "Why do change initiatives commonly fail even with a sound plan?",
		Choices: []SeedChoice{
			{"a", "Plans are usually wrong"},
			{"b", "The people affected were not brought along — no urgency, ownership, or early wins"},
			{"c", "Budgets are always too small"},
			{"d", "Timelines are too long"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Execution lives with the people affected; without felt urgency and visible early wins, the plan stays on paper.",
		DifficultyScore: 45,
	},
	{
		Topic:  "change_management",
		Prompt: "During a reorganization, what should leaders communicate when answers are not yet known?",
		Choices: []SeedChoice{
			{"a", "Nothing, until everything is decided"},
			{"b", "What is known, what is not, and when the next update comes"},
			{"c", "Optimistic guesses to keep morale up"},
			{"d", "Only the final org chart"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Silence gets filled by rumor; naming the unknowns and committing to an update cadence preserves trust through uncertainty.",
		DifficultyScore: 55,
	},
	{
		Topic:  "change_management",
		Prompt: "Resistance to change is most usefully treated as what?",
		Choices: []SeedChoice{
			{"a", "A discipline problem"},
			{"b", "Information about unaddressed costs and risks the change imposes"},
			{"c", "Evidence the change is wrong"},
			{"d", "Noise to be ignored"},
		},
		CorrectChoiceID: "b",
		Explanation:     "Resistance encodes data: who bears the costs, what is at risk, what was missed. Mining it improves both the change and its adoption.",
		DifficultyScore: 70,
	},
}
