package insights

import (
	"sort"
	"strings"
	"time"

	"moodjournal/internal/journal"
)

const (
	maxPromptEntries	= 10
	streakWindow		= 3
	minStreak		= 2
	maxPrompts		= 5
)

// SelectPrompts ranks journaling prompts for the moment described by currentMood,
// recentActivities and the newest-first entries. now picks the time-of-day prompt.
func (e *Engine) SelectPrompts(currentMood string, recentActivities []string, entries []journal.Entry, now time.Time) []SmartPrompt {
	if len(entries) > maxPromptEntries {
		entries = entries[:maxPromptEntries]
	}

	mood := normalizeMood(currentMood)
	promptMood := mood
	if promptMood == "" && len(entries) > 0 {
		promptMood = normalizeMood(entries[0].MoodTag)
	}

	var prompts []SmartPrompt
	if p, ok := moodPrompts[promptMood]; ok {
		prompts = append(prompts, clonePrompt(p))
	}

	prompts = append(prompts, activityBasedPrompts(recentActivities)...)

	streakEntries := entries
	if len(streakEntries) > streakWindow {
		streakEntries = streakEntries[:streakWindow]
	}
	negativeStreak := leadingRun(streakEntries, IsNegativeMood) >= minStreak
	positiveStreak := leadingRun(streakEntries, IsPositiveMood) >= minStreak

	if negativeStreak {
		prompts = append(prompts, clonePrompt(negativeStreakPrompt))
	}
	if positiveStreak {
		prompts = append(prompts, clonePrompt(positiveStreakPrompt))
	}
	if len(entries) > 0 && loggedActivities(entries)*2 < len(entries) {
		prompts = append(prompts, clonePrompt(lowActivityPrompt))
	}

	prompts = append(prompts, clonePrompt(e.timeOfDayPrompt(now)))

	if negativeStreak || IsNegativeMood(mood) {
		for _, p := range crisisPrompts {
			prompts = append(prompts, clonePrompt(p))
		}
	}
	if positiveStreak || IsPositiveMood(mood) {
		for _, p := range celebrationPrompts {
			prompts = append(prompts, clonePrompt(p))
		}
	}

	sort.SliceStable(prompts, func(i, j int) bool {
		return prompts[i].Priority.rank() > prompts[j].Priority.rank()
	})
	if len(prompts) > maxPrompts {
		prompts = prompts[:maxPrompts]
	}
	return prompts
}

func activityBasedPrompts(recentActivities []string) []SmartPrompt {
	present := make(map[string]bool, len(recentActivities))
	for _, a := range recentActivities {
		present[strings.ToLower(strings.TrimSpace(a))] = true
	}

	var prompts []SmartPrompt
	for _, activity := range activityPromptOrder {
		if present[activity] {
			prompts = append(prompts, clonePrompt(activityPrompts[activity]))
		}
	}
	return prompts
}

func loggedActivities(entries []journal.Entry) int {
	total := 0
	for _, e := range entries {
		total += len(e.Activities)
	}
	return total
}

func (e *Engine) timeOfDayPrompt(now time.Time) SmartPrompt {
	switch hour := e.local(now).Hour(); {
	case hour < 12:
		return morningPrompt
	case hour < 18:
		return afternoonPrompt
	default:
		return eveningPrompt
	}
}

func clonePrompt(p SmartPrompt) SmartPrompt {
	if p.SuggestedActivities != nil {
		p.SuggestedActivities = append([]string(nil), p.SuggestedActivities...)
	}
	return p
}
