package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"moodjournal/internal/journal"
)

const (
	minPredictionEntries	= 3
	trendWindow		= 7
	trendThreshold		= 0.3
	mediumSeverity		= 0.4
	highSeverity		= 0.7
	weekendGapThreshold	= 0.5
	morningMoodThreshold	= 3.5
	anxiousShareThreshold	= 0.3
	lowWellbeingStressShare	= 0.4
	maxSuggestions		= 4

	baseConfidence		= 0.5
	maxConfidence		= 0.95
	insufficientConfidence	= 0.3
)

// PredictMood folds four heuristics (trend, activities, time of day, stress) into one
// prediction. Entries are ordered newest first.
func (e *Engine) PredictMood(entries []journal.Entry) (MoodPrediction, []WellnessSuggestion) {
	if len(entries) < minPredictionEntries {
		return insufficientDataPrediction(), []WellnessSuggestion{physicalSuggestion, gratitudeSuggestion}
	}

	p := &MoodPrediction{
		PredictedMood:	MoodNeutral,
		Confidence:	baseConfidence,
		RiskLevel:	RiskLow,
		Factors:	[]string{},
	}

	analyzeTrend(p, entries)
	positives := analyzeActivities(p, entries)
	e.analyzeTime(p, entries)
	e.analyzeStress(p, entries)

	p.Confidence = round2(math.Max(0, math.Min(p.Confidence, maxConfidence)))
	p.Recommendations, p.ProactiveActions = predictionGuidance(p, positives)

	return *p, wellnessSuggestions(p)
}

func insufficientDataPrediction() MoodPrediction {
	return MoodPrediction{
		PredictedMood:		MoodNeutral,
		Confidence:		insufficientConfidence,
		RiskLevel:		RiskLow,
		Factors:		[]string{"Not enough journal entries for a reliable prediction"},
		Recommendations:	[]string{"Keep journaling daily so your mood patterns can be learned"},
		ProactiveActions:	[]string{"Log your mood and activities each day this week"},
	}
}

// analyzeTrend compares the older and newer halves of the most recent entries.
func analyzeTrend(p *MoodPrediction, entries []journal.Entry) {
	recent := entries
	if len(recent) > trendWindow {
		recent = recent[:trendWindow]
	}

	chronological := make([]int, len(recent))
	for i, entry := range recent {
		chronological[len(recent)-1-i] = MoodValue(entry.MoodTag)
	}

	mid := (len(chronological) + 1) / 2
	difference := mean(chronological[mid:]) - mean(chronological[:mid])
	severity := math.Abs(difference)
	latest := normalizeMood(entries[0].MoodTag)

	switch {
	case difference < -trendThreshold:
		p.Factors = append(p.Factors, fmt.Sprintf("Mood has been declining over recent entries (down %.1f points)", severity))
		if next, ok := decliningMoodNext[latest]; ok {
			p.PredictedMood = next
		}
		p.Confidence += 0.2
		if severity > highSeverity {
			p.RiskLevel = p.RiskLevel.atLeast(RiskHigh)
		} else if severity > mediumSeverity {
			p.RiskLevel = p.RiskLevel.atLeast(RiskMedium)
		}
	case difference > trendThreshold:
		p.Factors = append(p.Factors, fmt.Sprintf("Mood has been improving over recent entries (up %.1f points)", severity))
		if next, ok := improvingMoodNext[latest]; ok {
			p.PredictedMood = next
		}
		p.Confidence += 0.15
	}
}

// analyzeActivities returns the positively correlated activities so guidance can name them.
func analyzeActivities(p *MoodPrediction, entries []journal.Entry) []ActivityCorrelation {
	correlations := activityCorrelations(entries)
	positives := filterCorrelations(correlations, CorrelationPositive)
	negatives := filterCorrelations(correlations, CorrelationNegative)

	if len(positives) > 0 && p.PredictedMood == MoodNeutral {
		p.Factors = append(p.Factors, fmt.Sprintf("Activities linked to better moods: %s", joinActivities(positives)))
		p.PredictedMood = MoodHappy
		p.Confidence += 0.1
	}
	if len(negatives) > 0 && p.PredictedMood == MoodNeutral {
		p.Factors = append(p.Factors, fmt.Sprintf("Activities linked to lower moods: %s", joinActivities(negatives)))
		p.PredictedMood = MoodStressed
		p.Confidence += 0.1
	}
	return positives
}

func joinActivities(correlations []ActivityCorrelation) string {
	names := make([]string, 0, maxTopActivities)
	for i, c := range correlations {
		if i == maxTopActivities {
			break
		}
		names = append(names, c.Activity)
	}
	return strings.Join(names, ", ")
}

func (e *Engine) analyzeTime(p *MoodPrediction, entries []journal.Entry) {
	var weekend, weekday, morning []int
	for _, entry := range entries {
		t := e.local(entry.CreatedAt)
		value := MoodValue(entry.MoodTag)

		if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			weekend = append(weekend, value)
		} else {
			weekday = append(weekday, value)
		}
		if t.Hour() < 12 {
			morning = append(morning, value)
		}
	}

	if len(weekend) > 0 && len(weekday) > 0 && mean(weekend)-mean(weekday) > weekendGapThreshold {
		p.Factors = append(p.Factors, "Weekend effect: your mood tends to be better on weekends")
		p.Confidence += 0.1
	}

	if len(morning) > 0 && mean(morning) > morningMoodThreshold {
		p.Factors = append(p.Factors, "Morning mood pattern: your morning entries tend to be more positive")
		p.Confidence += 0.1
	}
}

func (e *Engine) analyzeStress(p *MoodPrediction, entries []journal.Entry) {
	if run := MaxNegativeRun(entries); run >= negativeRunThreshold {
		p.Factors = append(p.Factors, fmt.Sprintf("High stress: %d consecutive entries with negative moods", run))
		p.RiskLevel = p.RiskLevel.atLeast(RiskHigh)
		p.Confidence += 0.2
	}

	anxious := 0
	for _, entry := range entries {
		if normalizeMood(entry.MoodTag) == MoodAnxious {
			anxious++
		}
	}
	if share := float64(anxious) / float64(len(entries)); share >= anxiousShareThreshold {
		p.Factors = append(p.Factors, fmt.Sprintf("Anxiety pattern: %.0f%% of recent entries were anxious", share*100))
		p.RiskLevel = p.RiskLevel.atLeast(RiskMedium)
		p.Confidence += 0.15
		if p.PredictedMood == MoodNeutral {
			p.PredictedMood = MoodAnxious
		}
	}

	if share := lowWellbeingShare(entries, e.opts.LowWellbeingThreshold); share >= lowWellbeingStressShare {
		p.Factors = append(p.Factors, fmt.Sprintf("High stress: low wellbeing scores in %.0f%% of recent entries", share*100))
		p.RiskLevel = p.RiskLevel.atLeast(RiskHigh)
	}
}

func predictionGuidance(p *MoodPrediction, positives []ActivityCorrelation) ([]string, []string) {
	recommendations := []string{}
	actions := []string{}

	if p.RiskLevel == RiskHigh {
		recommendations = append(recommendations,
			"Consider reaching out to a mental health professional for support",
			"Make time for rest and self-care today")
		actions = append(actions, "Schedule a check-in with someone you trust this week")
	}

	switch p.PredictedMood {
	case MoodStressed, MoodAnxious:
		recommendations = append(recommendations,
			"Try a 5-minute breathing exercise when tension builds",
			"Break big tasks into smaller, manageable steps")
		actions = append(actions, "Block 10 minutes tomorrow for a calming activity")
	case MoodSad:
		recommendations = append(recommendations,
			"Reach out to a friend or loved one today",
			"Spend a little time outdoors or in natural light")
		actions = append(actions, "Plan one small enjoyable activity for tomorrow")
	case MoodAngry:
		recommendations = append(recommendations,
			"Take a short walk before responding to what's bothering you",
			"Write down what triggered the feeling to help process it")
		actions = append(actions, "Try a physical release such as exercise or stretching")
	default:
		actions = append(actions, "Continue your current wellbeing activities")
	}

	if len(positives) > 0 {
		actions = append(actions, fmt.Sprintf("Make time for %s; it tends to lift your mood", positives[0].Activity))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Keep journaling to track how your mood evolves")
	}
	return recommendations, actions
}

func wellnessSuggestions(p *MoodPrediction) []WellnessSuggestion {
	var suggestions []WellnessSuggestion

	if p.PredictedMood == MoodStressed || p.RiskLevel == RiskHigh {
		suggestions = append(suggestions, breathingSuggestion, selfCareSuggestion)
	}
	if p.PredictedMood == MoodAnxious {
		suggestions = append(suggestions, groundingSuggestion)
	}
	if p.PredictedMood == MoodSad {
		suggestions = append(suggestions, socialSuggestion)
	}
	suggestions = append(suggestions, physicalSuggestion, gratitudeSuggestion)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.rank() > suggestions[j].Priority.rank()
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
