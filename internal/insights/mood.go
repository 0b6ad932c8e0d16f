package insights

import (
	"math"
	"strings"

	"moodjournal/internal/journal"
)

const (
	MoodExcited	= "excited"
	MoodHappy	= "happy"
	MoodFine	= "fine"
	MoodNeutral	= "neutral"
	MoodSad		= "sad"
	MoodStressed	= "stressed"
	MoodAnxious	= "anxious"
	MoodAngry	= "angry"
)

// BaselineMood is the neutral point correlations are measured against.
const BaselineMood = 3.0

var moodValues = map[string]int{
	MoodExcited:	5,
	MoodHappy:	4,
	MoodFine:	3,
	MoodNeutral:	3,
	MoodSad:	2,
	MoodStressed:	2,
	MoodAnxious:	1,
	MoodAngry:	1,
}

var negativeMoods = map[string]bool{
	MoodSad:	true,
	MoodStressed:	true,
	MoodAnxious:	true,
	MoodAngry:	true,
}

var positiveMoods = map[string]bool{
	MoodHappy:	true,
	MoodExcited:	true,
}

func normalizeMood(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// MoodValue maps a mood tag onto the 1-5 scale. Unknown tags are neutral.
func MoodValue(tag string) int {
	if v, ok := moodValues[normalizeMood(tag)]; ok {
		return v
	}
	return int(BaselineMood)
}

func IsKnownMood(tag string) bool {
	_, ok := moodValues[normalizeMood(tag)]
	return ok
}

func IsNegativeMood(tag string) bool {
	return negativeMoods[normalizeMood(tag)]
}

func IsPositiveMood(tag string) bool {
	return positiveMoods[normalizeMood(tag)]
}

// MaxNegativeRun is the longest run of consecutive entries carrying a negative mood.
func MaxNegativeRun(entries []journal.Entry) int {
	longest, current := 0, 0
	for _, e := range entries {
		if IsNegativeMood(e.MoodTag) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// leadingRun counts consecutive entries from the start of the list that satisfy match.
func leadingRun(entries []journal.Entry, match func(string) bool) int {
	n := 0
	for _, e := range entries {
		if !match(e.MoodTag) {
			break
		}
		n++
	}
	return n
}

func averageMood(entries []journal.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, e := range entries {
		total += MoodValue(e.MoodTag)
	}
	return float64(total) / float64(len(entries))
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func lowWellbeingShare(entries []journal.Entry, threshold float64) float64 {
	if len(entries) == 0 {
		return 0
	}
	low := 0
	for _, e := range entries {
		if e.WellbeingScore != nil && *e.WellbeingScore < threshold {
			low++
		}
	}
	return float64(low) / float64(len(entries))
}

func highWellbeingShare(entries []journal.Entry, threshold float64) float64 {
	if len(entries) == 0 {
		return 0
	}
	high := 0
	for _, e := range entries {
		if e.WellbeingScore != nil && *e.WellbeingScore >= threshold {
			high++
		}
	}
	return float64(high) / float64(len(entries))
}
