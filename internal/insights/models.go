package insights

type Trend string

const (
	TrendIncreasing	Trend	= "increasing"
	TrendDecreasing	Trend	= "decreasing"
	TrendStable	Trend	= "stable"
	TrendImproving	Trend	= "improving"
	TrendDeclining	Trend	= "declining"
)

type Correlation string

const (
	CorrelationPositive	Correlation	= "positive"
	CorrelationNegative	Correlation	= "negative"
	CorrelationNeutral	Correlation	= "neutral"
)

type RiskLevel string

const (
	RiskLow		RiskLevel	= "low"
	RiskMedium	RiskLevel	= "medium"
	RiskHigh	RiskLevel	= "high"
)

func (r RiskLevel) rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// atLeast never lowers the level.
func (r RiskLevel) atLeast(level RiskLevel) RiskLevel {
	if level.rank() > r.rank() {
		return level
	}
	return r
}

type Priority string

const (
	PriorityHigh	Priority	= "high"
	PriorityMedium	Priority	= "medium"
	PriorityLow	Priority	= "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type MoodPattern struct {
	Mood		string	`json:"mood"`
	Frequency	int	`json:"frequency"`
	Percentage	float64	`json:"percentage"`
	Trend		Trend	`json:"trend"`
}

type ActivityCorrelation struct {
	Activity	string		`json:"activity"`
	MoodImprovement	float64		`json:"moodImprovement"`
	Frequency	int		`json:"frequency"`
	Correlation	Correlation	`json:"correlation"`
}

type WeeklyInsight struct {
	WeekStartDate	string		`json:"weekStartDate"`
	AverageMood	float64		`json:"averageMood"`
	TotalEntries	int		`json:"totalEntries"`
	TopActivities	[]string	`json:"topActivities"`
	MoodTrend	Trend		`json:"moodTrend"`
	KeyInsights	[]string	`json:"keyInsights"`
}

type PatternReport struct {
	MoodPatterns		[]MoodPattern		`json:"moodPatterns"`
	ActivityCorrelations	[]ActivityCorrelation	`json:"activityCorrelations"`
	WeeklyTrends		[]WeeklyInsight		`json:"weeklyTrends"`
	PersonalizedInsights	[]string		`json:"personalizedInsights"`
	Recommendations		[]string		`json:"recommendations"`
	RiskFactors		[]string		`json:"riskFactors"`
	PositivePatterns	[]string		`json:"positivePatterns"`
}

type MoodPrediction struct {
	PredictedMood		string		`json:"predictedMood"`
	Confidence		float64		`json:"confidence"`
	RiskLevel		RiskLevel	`json:"riskLevel"`
	Factors			[]string	`json:"factors"`
	Recommendations		[]string	`json:"recommendations"`
	ProactiveActions	[]string	`json:"proactiveActions"`
}

type SuggestionType string

const (
	SuggestionActivity	SuggestionType	= "activity"
	SuggestionMindfulness	SuggestionType	= "mindfulness"
	SuggestionSocial	SuggestionType	= "social"
	SuggestionSelfCare	SuggestionType	= "self_care"
)

type MoodImpact string

const (
	ImpactPositive	MoodImpact	= "positive"
	ImpactNeutral	MoodImpact	= "neutral"
	ImpactNegative	MoodImpact	= "negative"
)

type WellnessSuggestion struct {
	Type			SuggestionType	`json:"type"`
	Title			string		`json:"title"`
	Description		string		`json:"description"`
	Priority		Priority	`json:"priority"`
	EstimatedDuration	string		`json:"estimatedDuration"`
	MoodImpact		MoodImpact	`json:"moodImpact"`
}

// PredictionReport bundles the predictor's two results for transport.
type PredictionReport struct {
	Prediction	MoodPrediction		`json:"prediction"`
	Suggestions	[]WellnessSuggestion	`json:"suggestions"`
}

type PromptCategory string

const (
	CategoryMood		PromptCategory	= "mood"
	CategoryGratitude	PromptCategory	= "gratitude"
	CategoryReflection	PromptCategory	= "reflection"
	CategoryCrisis		PromptCategory	= "crisis"
	CategoryGrowth		PromptCategory	= "growth"
	CategoryCelebration	PromptCategory	= "celebration"
)

type SmartPrompt struct {
	ID			string		`json:"id"`
	PromptText		string		`json:"promptText"`
	Category		PromptCategory	`json:"category"`
	Priority		Priority	`json:"priority"`
	Context			string		`json:"context"`
	SuggestedActivities	[]string	`json:"suggestedActivities,omitempty"`
}
