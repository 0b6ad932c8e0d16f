package insights

// Canned copy used by the pipelines. Every table is read-only; builders copy slices
// before handing prompts out.

const (
	noDataInsight		= "Start journaling to get personalized insights!"
	noDataRecommendation	= "Write your first journal entry to start discovering your mood patterns."
)

var moodPrompts = map[string]SmartPrompt{
	MoodExcited: {
		ID:			"mood-excited",
		PromptText:		"What has you feeling so excited? Capture this energy while it's fresh.",
		Category:		CategoryCelebration,
		Context:		"mood",
		Priority:		PriorityMedium,
		SuggestedActivities:	[]string{"share the news with a friend", "plan your next goal"},
	},
	MoodHappy: {
		ID:			"mood-happy",
		PromptText:		"What made you happy today? Let's hold on to these good moments.",
		Category:		CategoryGratitude,
		Context:		"mood",
		Priority:		PriorityMedium,
		SuggestedActivities:	[]string{"gratitude list", "spend time with people you love"},
	},
	MoodFine: {
		ID:			"mood-fine",
		PromptText:		"You're feeling fine today. What's one small thing that could make it even better?",
		Category:		CategoryReflection,
		Context:		"mood",
		Priority:		PriorityLow,
		SuggestedActivities:	[]string{"short walk", "try something new"},
	},
	MoodNeutral: {
		ID:			"mood-neutral",
		PromptText:		"How would you describe today in three words?",
		Category:		CategoryReflection,
		Context:		"mood",
		Priority:		PriorityLow,
		SuggestedActivities:	[]string{"light exercise", "listen to music"},
	},
	MoodSad: {
		ID:			"mood-sad",
		PromptText:		"It's okay to feel sad. What's weighing on your heart right now?",
		Category:		CategoryCrisis,
		Context:		"mood",
		Priority:		PriorityHigh,
		SuggestedActivities:	[]string{"talk to a friend", "gentle walk outside"},
	},
	MoodStressed: {
		ID:			"mood-stressed",
		PromptText:		"What's causing you stress right now? Let's break it down together.",
		Category:		CategoryCrisis,
		Context:		"mood",
		Priority:		PriorityHigh,
		SuggestedActivities:	[]string{"deep breathing", "write a short priority list"},
	},
	MoodAnxious: {
		ID:			"mood-anxious",
		PromptText:		"Let's ground ourselves. What are five things you can see around you right now?",
		Category:		CategoryCrisis,
		Context:		"mood",
		Priority:		PriorityHigh,
		SuggestedActivities:	[]string{"box breathing", "5-4-3-2-1 grounding"},
	},
	MoodAngry: {
		ID:			"mood-angry",
		PromptText:		"What triggered your anger? Writing it out can help you work through it.",
		Category:		CategoryCrisis,
		Context:		"mood",
		Priority:		PriorityHigh,
		SuggestedActivities:	[]string{"physical exercise", "step away for a few minutes"},
	},
}

// activityPromptOrder fixes the order activity prompts are emitted in.
var activityPromptOrder = []string{"exercise", "meditation", "gratitude"}

var activityPrompts = map[string]SmartPrompt{
	"exercise": {
		ID:		"activity-exercise",
		PromptText:	"You've been moving your body lately. How does exercise change the way you feel afterwards?",
		Category:	CategoryGrowth,
		Context:	"activity",
		Priority:	PriorityMedium,
	},
	"meditation": {
		ID:		"activity-meditation",
		PromptText:	"What did you notice during your last meditation? Did anything surprise you?",
		Category:	CategoryReflection,
		Context:	"activity",
		Priority:	PriorityMedium,
	},
	"gratitude": {
		ID:		"activity-gratitude",
		PromptText:	"You've been practicing gratitude. What's something small you appreciated today?",
		Category:	CategoryGratitude,
		Context:	"activity",
		Priority:	PriorityMedium,
	},
}

var (
	negativeStreakPrompt	= SmartPrompt{
		ID:			"pattern-negative-streak",
		PromptText:		"The last few days seem to have been hard. What would help you feel even a little better right now?",
		Category:		CategoryMood,
		Context:		"pattern",
		Priority:		PriorityHigh,
		SuggestedActivities:	[]string{"reach out to someone you trust", "rest"},
	}
	positiveStreakPrompt	= SmartPrompt{
		ID:		"pattern-positive-streak",
		PromptText:	"You're on a positive streak! What has been contributing to these good days?",
		Category:	CategoryCelebration,
		Context:	"pattern",
		Priority:	PriorityMedium,
	}
	lowActivityPrompt	= SmartPrompt{
		ID:		"pattern-low-activity",
		PromptText:	"Try noting what you did today. Tracking activities helps reveal what lifts your mood.",
		Category:	CategoryGrowth,
		Context:	"pattern",
		Priority:	PriorityLow,
	}
)

var (
	morningPrompt	= SmartPrompt{
		ID:		"time-morning",
		PromptText:	"Good morning! What's one intention you'd like to set for today?",
		Category:	CategoryReflection,
		Context:	"time_of_day",
		Priority:	PriorityMedium,
	}
	afternoonPrompt	= SmartPrompt{
		ID:		"time-afternoon",
		PromptText:	"How is your day going so far? Take a moment to check in with yourself.",
		Category:	CategoryReflection,
		Context:	"time_of_day",
		Priority:	PriorityLow,
	}
	eveningPrompt	= SmartPrompt{
		ID:		"time-evening",
		PromptText:	"As the day winds down, what are three things you're grateful for?",
		Category:	CategoryGratitude,
		Context:	"time_of_day",
		Priority:	PriorityMedium,
	}
)

var crisisPrompts = []SmartPrompt{
	{
		ID:		"support-reach-out",
		PromptText:	"You don't have to go through this alone. Who is one person you could reach out to today?",
		Category:	CategoryCrisis,
		Priority:	PriorityHigh,
		Context:	"support",
	},
	{
		ID:		"support-self-kindness",
		PromptText:	"What is one small act of kindness you can offer yourself right now?",
		Category:	CategoryCrisis,
		Priority:	PriorityHigh,
		Context:	"support",
	},
	{
		ID:		"support-breathe",
		PromptText:	"Take a slow breath in and out. What do you need most in this moment?",
		Category:	CategoryCrisis,
		Priority:	PriorityHigh,
		Context:	"support",
	},
}

var celebrationPrompts = []SmartPrompt{
	{
		ID:		"celebrate-win",
		PromptText:	"What's a recent win, big or small, that you want to remember?",
		Category:	CategoryCelebration,
		Priority:	PriorityMedium,
		Context:	"celebration",
	},
	{
		ID:		"celebrate-share",
		PromptText:	"Who would you like to share your good news with?",
		Category:	CategoryCelebration,
		Priority:	PriorityMedium,
		Context:	"celebration",
	},
}

// Mood transitions used by the predictor when a trend is detected, keyed on the newest mood.
var decliningMoodNext = map[string]string{
	MoodExcited:	MoodHappy,
	MoodHappy:	MoodFine,
	MoodFine:	MoodSad,
	MoodNeutral:	MoodSad,
	MoodSad:	MoodStressed,
	MoodStressed:	MoodAnxious,
	MoodAnxious:	MoodAnxious,
	MoodAngry:	MoodAngry,
}

var improvingMoodNext = map[string]string{
	MoodSad:	MoodFine,
	MoodFine:	MoodHappy,
	MoodHappy:	MoodExcited,
	MoodExcited:	MoodExcited,
	MoodNeutral:	MoodHappy,
	MoodStressed:	MoodFine,
	MoodAnxious:	MoodNeutral,
	MoodAngry:	MoodNeutral,
}

var (
	breathingSuggestion	= WellnessSuggestion{
		Type:			SuggestionMindfulness,
		Title:			"Breathing exercise",
		Description:		"Breathe in for 4 counts, hold for 4, and breathe out for 6. Repeat for a few minutes.",
		Priority:		PriorityHigh,
		EstimatedDuration:	"5 minutes",
		MoodImpact:		ImpactPositive,
	}
	selfCareSuggestion	= WellnessSuggestion{
		Type:			SuggestionSelfCare,
		Title:			"Self-care routine",
		Description:		"Set aside time for something restorative: a warm shower, a favourite meal or an early night.",
		Priority:		PriorityHigh,
		EstimatedDuration:	"20 minutes",
		MoodImpact:		ImpactPositive,
	}
	groundingSuggestion	= WellnessSuggestion{
		Type:			SuggestionMindfulness,
		Title:			"Grounding exercise",
		Description:		"Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell and 1 you can taste.",
		Priority:		PriorityHigh,
		EstimatedDuration:	"5 minutes",
		MoodImpact:		ImpactPositive,
	}
	socialSuggestion	= WellnessSuggestion{
		Type:			SuggestionSocial,
		Title:			"Connect with someone",
		Description:		"Send a message or call a friend or family member you feel comfortable with.",
		Priority:		PriorityMedium,
		EstimatedDuration:	"15 minutes",
		MoodImpact:		ImpactPositive,
	}
	physicalSuggestion	= WellnessSuggestion{
		Type:			SuggestionActivity,
		Title:			"Light physical activity",
		Description:		"Take a walk, stretch or do some gentle movement to lift your energy.",
		Priority:		PriorityMedium,
		EstimatedDuration:	"20 minutes",
		MoodImpact:		ImpactPositive,
	}
	gratitudeSuggestion	= WellnessSuggestion{
		Type:			SuggestionMindfulness,
		Title:			"Gratitude practice",
		Description:		"Write down three things you're grateful for today.",
		Priority:		PriorityLow,
		EstimatedDuration:	"5 minutes",
		MoodImpact:		ImpactPositive,
	}
)
