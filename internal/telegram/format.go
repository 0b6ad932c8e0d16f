package telegram

import (
	"fmt"
	"strings"

	"moodjournal/internal/insights"
)

const (
	helpText	= "Commands:\n/insights - your mood patterns for the last 30 days\n/predict - what the next days might look like\n/prompts [mood] - journaling prompts for right now"
	notLinkedText	= "Your Telegram account is not linked yet. Open the app and use \"Link Telegram\" to get a link."
	failureText	= "Something went wrong. Please try again later."
)

func FormatPatternReport(report insights.PatternReport) string {
	var b strings.Builder

	b.WriteString("Your mood patterns\n")
	for _, p := range report.MoodPatterns {
		fmt.Fprintf(&b, "- %s: %d entries (%.0f%%, %s)\n", p.Mood, p.Frequency, p.Percentage, p.Trend)
	}

	if len(report.ActivityCorrelations) > 0 {
		b.WriteString("\nActivities\n")
		for _, c := range report.ActivityCorrelations {
			fmt.Fprintf(&b, "- %s: %+.2f (%s)\n", c.Activity, c.MoodImprovement, c.Correlation)
		}
	}

	writeSection(&b, "Insights", report.PersonalizedInsights)
	writeSection(&b, "Watch out for", report.RiskFactors)
	writeSection(&b, "Going well", report.PositivePatterns)
	writeSection(&b, "Recommendations", report.Recommendations)

	return strings.TrimRight(b.String(), "\n")
}

func FormatPrediction(report insights.PredictionReport) string {
	var b strings.Builder
	p := report.Prediction

	fmt.Fprintf(&b, "Predicted mood: %s\nConfidence: %.0f%%\nRisk level: %s\n", p.PredictedMood, p.Confidence*100, p.RiskLevel)
	writeSection(&b, "Why", p.Factors)
	writeSection(&b, "Recommendations", p.Recommendations)
	writeSection(&b, "Next steps", p.ProactiveActions)

	if len(report.Suggestions) > 0 {
		b.WriteString("\nSuggestions\n")
		for _, s := range report.Suggestions {
			fmt.Fprintf(&b, "- %s (%s): %s\n", s.Title, s.EstimatedDuration, s.Description)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func FormatPrompts(prompts []insights.SmartPrompt) string {
	if len(prompts) == 0 {
		return "No prompts right now. Try again later."
	}

	var b strings.Builder
	b.WriteString("Prompts for you\n")
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.PromptText)
		if len(p.SuggestedActivities) > 0 {
			fmt.Fprintf(&b, "   Ideas: %s\n", strings.Join(p.SuggestedActivities, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
}
