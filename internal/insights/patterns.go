package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"moodjournal/internal/journal"
)

const (
	trendUpFactor		= 1.2
	trendDownFactor		= 0.8
	correlationThreshold	= 0.5
	weekTrendThreshold	= 0.3
	minActivityOccurrences	= 2
	maxTopActivities	= 3
	consistencyWindowDays	= 7
	consistencyMinDays	= 5
	fewEntriesThreshold	= 10
	negativeRunThreshold	= 3
	lowWellbeingRiskShare	= 0.3
	highWellbeingMinShare	= 0.5
	maxPositivePatterns	= 3
)

// AnalyzePatterns builds the retrospective report for entries ordered newest first.
func (e *Engine) AnalyzePatterns(entries []journal.Entry) PatternReport {
	if len(entries) == 0 {
		return emptyPatternReport()
	}

	patterns := moodPatterns(entries)
	correlations := activityCorrelations(entries)
	weekly := e.weeklyTrends(entries)
	consistentDays := e.journaledDays(entries)

	return PatternReport{
		MoodPatterns:		patterns,
		ActivityCorrelations:	correlations,
		WeeklyTrends:		weekly,
		PersonalizedInsights:	personalizedInsights(patterns, correlations, weekly, consistentDays),
		Recommendations:	e.patternRecommendations(entries, patterns, correlations),
		RiskFactors:		e.riskFactors(entries, patterns),
		PositivePatterns:	e.positivePatterns(entries, patterns, correlations, consistentDays),
	}
}

func emptyPatternReport() PatternReport {
	return PatternReport{
		MoodPatterns:		[]MoodPattern{},
		ActivityCorrelations:	[]ActivityCorrelation{},
		WeeklyTrends:		[]WeeklyInsight{},
		PersonalizedInsights:	[]string{noDataInsight},
		Recommendations:	[]string{noDataRecommendation},
		RiskFactors:		[]string{},
		PositivePatterns:	[]string{},
	}
}

func entryMood(e journal.Entry) string {
	mood := normalizeMood(e.MoodTag)
	if mood == "" {
		return MoodNeutral
	}
	return mood
}

// moodPatterns tallies moods and compares the newer half of the list against the older half.
func moodPatterns(entries []journal.Entry) []MoodPattern {
	mid := len(entries) / 2
	recent, earlier := entries[:mid], entries[mid:]

	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		mood := entryMood(e)
		if _, seen := counts[mood]; !seen {
			order = append(order, mood)
		}
		counts[mood]++
	}

	patterns := make([]MoodPattern, 0, len(order))
	for _, mood := range order {
		recentCount := float64(countMood(recent, mood))
		earlierCount := float64(countMood(earlier, mood))

		trend := TrendStable
		if recentCount > earlierCount*trendUpFactor {
			trend = TrendIncreasing
		} else if recentCount < earlierCount*trendDownFactor {
			trend = TrendDecreasing
		}

		patterns = append(patterns, MoodPattern{
			Mood:		mood,
			Frequency:	counts[mood],
			Percentage:	float64(counts[mood]) / float64(len(entries)) * 100,
			Trend:		trend,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}

func countMood(entries []journal.Entry, mood string) int {
	n := 0
	for _, e := range entries {
		if entryMood(e) == mood {
			n++
		}
	}
	return n
}

// activityCorrelations measures the mean mood of entries containing each activity against
// the neutral baseline. Activities seen in fewer than two entries are dropped.
func activityCorrelations(entries []journal.Entry) []ActivityCorrelation {
	values := make(map[string][]int)
	var order []string
	for _, e := range entries {
		seen := make(map[string]bool, len(e.Activities))
		for _, raw := range e.Activities {
			activity := strings.TrimSpace(raw)
			if activity == "" || seen[activity] {
				continue
			}
			seen[activity] = true
			if _, ok := values[activity]; !ok {
				order = append(order, activity)
			}
			values[activity] = append(values[activity], MoodValue(e.MoodTag))
		}
	}

	correlations := make([]ActivityCorrelation, 0, len(order))
	for _, activity := range order {
		moods := values[activity]
		if len(moods) < minActivityOccurrences {
			continue
		}

		improvement := round2(mean(moods) - BaselineMood)
		correlation := CorrelationNeutral
		if improvement > correlationThreshold {
			correlation = CorrelationPositive
		} else if improvement < -correlationThreshold {
			correlation = CorrelationNegative
		}

		correlations = append(correlations, ActivityCorrelation{
			Activity:		activity,
			MoodImprovement:	improvement,
			Frequency:		len(moods),
			Correlation:		correlation,
		})
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return correlations[i].MoodImprovement > correlations[j].MoodImprovement
	})
	return correlations
}

func filterCorrelations(correlations []ActivityCorrelation, kind Correlation) []ActivityCorrelation {
	var out []ActivityCorrelation
	for _, c := range correlations {
		if c.Correlation == kind {
			out = append(out, c)
		}
	}
	return out
}

// weekStart returns local midnight of the Sunday starting t's week.
func weekStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

type weekBucket struct {
	start	time.Time
	entries	[]journal.Entry
}

func (e *Engine) weeklyTrends(entries []journal.Entry) []WeeklyInsight {
	buckets := make(map[string]*weekBucket)
	var order []string
	for _, entry := range entries {
		start := weekStart(e.local(entry.CreatedAt))
		key := start.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &weekBucket{start: start}
			buckets[key] = b
			order = append(order, key)
		}
		b.entries = append(b.entries, entry)
	}

	weeks := make([]WeeklyInsight, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		avg := averageMood(b.entries)
		trend := weekTrend(b.entries)

		weeks = append(weeks, WeeklyInsight{
			WeekStartDate:	key,
			AverageMood:	round2(avg),
			TotalEntries:	len(b.entries),
			TopActivities:	topActivities(b.entries, maxTopActivities),
			MoodTrend:	trend,
			KeyInsights:	weekKeyInsights(avg, trend),
		})
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		return buckets[weeks[i].WeekStartDate].start.After(buckets[weeks[j].WeekStartDate].start)
	})
	return weeks
}

// weekTrend compares the newer half of a week's entries with the older half.
func weekTrend(entries []journal.Entry) Trend {
	mid := len(entries) / 2
	if mid == 0 {
		return TrendStable
	}
	diff := averageMood(entries[:mid]) - averageMood(entries[mid:])
	switch {
	case diff > weekTrendThreshold:
		return TrendImproving
	case diff < -weekTrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func topActivities(entries []journal.Entry, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, raw := range e.Activities {
			activity := strings.TrimSpace(raw)
			if activity == "" {
				continue
			}
			if _, ok := counts[activity]; !ok {
				order = append(order, activity)
			}
			counts[activity]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

func weekKeyInsights(avg float64, trend Trend) []string {
	insights := []string{}
	switch {
	case avg > 4:
		insights = append(insights, fmt.Sprintf("Great week! Your average mood was %.1f out of 5.", avg))
	case avg < 2.5:
		insights = append(insights, fmt.Sprintf("This was a challenging week (average mood %.1f). Be kind to yourself.", avg))
	}

	switch trend {
	case TrendImproving:
		insights = append(insights, "Your mood improved as the week went on.")
	case TrendDeclining:
		insights = append(insights, "Your mood dipped toward the end of the week.")
	default:
		insights = append(insights, "Your mood stayed fairly steady this week.")
	}
	return insights
}

// journaledDays counts distinct local days with an entry in the seven days ending on
// the newest entry's day.
func (e *Engine) journaledDays(entries []journal.Entry) int {
	newest := entries[0].CreatedAt
	for _, entry := range entries[1:] {
		if entry.CreatedAt.After(newest) {
			newest = entry.CreatedAt
		}
	}
	newestLocal := e.local(newest)
	lastDay := time.Date(newestLocal.Year(), newestLocal.Month(), newestLocal.Day(), 0, 0, 0, 0, e.opts.Location)
	firstDay := lastDay.AddDate(0, 0, -(consistencyWindowDays - 1))

	days := make(map[string]bool)
	for _, entry := range entries {
		t := e.local(entry.CreatedAt)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.opts.Location)
		if day.Before(firstDay) || day.After(lastDay) {
			continue
		}
		days[day.Format("2006-01-02")] = true
	}
	return len(days)
}

func personalizedInsights(patterns []MoodPattern, correlations []ActivityCorrelation, weekly []WeeklyInsight, journaledDays int) []string {
	insights := []string{}

	dominant := patterns[0]
	switch dominant.Mood {
	case MoodHappy, MoodExcited:
		insights = append(insights, fmt.Sprintf("You've been feeling %s most often lately (%.0f%% of your entries). Keep doing what brings you joy!", dominant.Mood, dominant.Percentage))
	case MoodSad, MoodStressed:
		insights = append(insights, fmt.Sprintf("You've been feeling %s more often lately. Be gentle with yourself; difficult stretches do pass.", dominant.Mood))
	default:
		insights = append(insights, fmt.Sprintf("Your most common mood recently has been %s (%.0f%% of your entries).", dominant.Mood, dominant.Percentage))
	}

	if positives := filterCorrelations(correlations, CorrelationPositive); len(positives) > 0 {
		top := positives[0]
		insights = append(insights, fmt.Sprintf("%s seems to boost your mood: on days you log it, your mood sits %.1f points above neutral.", capitalize(top.Activity), top.MoodImprovement))
	}

	if journaledDays >= consistencyMinDays {
		insights = append(insights, fmt.Sprintf("You've journaled on %d of the last 7 days. That consistency helps you understand yourself better.", journaledDays))
	}

	if len(weekly) >= 2 {
		current, previous := weekly[0], weekly[1]
		if current.AverageMood > previous.AverageMood {
			insights = append(insights, fmt.Sprintf("Your average mood this week (%.1f) is higher than the week before (%.1f).", current.AverageMood, previous.AverageMood))
		} else if current.AverageMood < previous.AverageMood {
			insights = append(insights, fmt.Sprintf("Your average mood this week (%.1f) is lower than the week before (%.1f).", current.AverageMood, previous.AverageMood))
		}
	}

	return insights
}

func (e *Engine) patternRecommendations(entries []journal.Entry, patterns []MoodPattern, correlations []ActivityCorrelation) []string {
	recommendations := []string{}

	for _, p := range patterns {
		if IsNegativeMood(p.Mood) {
			recommendations = append(recommendations, "When difficult emotions come up, try a few minutes of mindfulness or reach out to someone you trust.")
			break
		}
	}

	if positives := filterCorrelations(correlations, CorrelationPositive); len(positives) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Make more room for %s; it's consistently linked to your better days.", positives[0].Activity))
	}

	if negatives := filterCorrelations(correlations, CorrelationNegative); len(negatives) > 0 {
		worst := negatives[len(negatives)-1]
		recommendations = append(recommendations, fmt.Sprintf("Notice how you feel around %s; it often shows up on harder days.", worst.Activity))
	}

	if len(entries) < fewEntriesThreshold {
		recommendations = append(recommendations, "Journal a little more often to unlock more accurate insights.")
	}

	if lowWellbeingShare(entries, e.opts.LowWellbeingThreshold) > lowWellbeingRiskShare {
		recommendations = append(recommendations, "Your wellbeing scores have been low. Consider planning some rest and support this week.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Keep journaling regularly to see how your wellbeing evolves.")
	}
	return recommendations
}

func (e *Engine) riskFactors(entries []journal.Entry, patterns []MoodPattern) []string {
	risks := []string{}

	if MaxNegativeRun(entries) >= negativeRunThreshold {
		risks = append(risks, "Multiple consecutive days with negative moods")
	}

	for _, p := range patterns {
		if IsNegativeMood(p.Mood) && p.Trend == TrendIncreasing {
			risks = append(risks, fmt.Sprintf("Declining mood trend: %s entries are becoming more frequent", p.Mood))
		}
	}

	if lowWellbeingShare(entries, e.opts.LowWellbeingThreshold) > lowWellbeingRiskShare {
		risks = append(risks, "Consistently low wellbeing scores")
	}
	return risks
}

func (e *Engine) positivePatterns(entries []journal.Entry, patterns []MoodPattern, correlations []ActivityCorrelation, journaledDays int) []string {
	positives := []string{}

	for i, c := range filterCorrelations(correlations, CorrelationPositive) {
		if i == maxPositivePatterns {
			break
		}
		positives = append(positives, fmt.Sprintf("%s is linked to better moods", capitalize(c.Activity)))
	}

	if IsPositiveMood(patterns[0].Mood) {
		positives = append(positives, "Positive moods are the most common in your recent entries")
	}

	for _, p := range patterns {
		if IsPositiveMood(p.Mood) && p.Trend == TrendIncreasing {
			positives = append(positives, fmt.Sprintf("%s days are becoming more frequent", capitalize(p.Mood)))
		}
	}

	if journaledDays >= consistencyMinDays {
		positives = append(positives, "Consistent journaling habit")
	}

	if highWellbeingShare(entries, e.opts.HighWellbeingThreshold) > highWellbeingMinShare {
		positives = append(positives, "Strong wellbeing scores in most of your entries")
	}
	return positives
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
