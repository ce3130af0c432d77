package content

import "strings"

// MinScore is the number of distinct keyword hits a category needs before
// Classify reports it.
const MinScore = 2

// Classify scores text against every pattern's keywords and returns the best
// category, or None when no category reaches MinScore. Each keyword counts
// once no matter how often it appears. On equal scores the category declared
// first wins.
func Classify(text string) Type {
	lower := strings.ToLower(text)

	best := None
	highest := 0
	for _, p := range patterns {
		score := Score(lower, p)
		if score > highest {
			highest = score
			best = p.Type
		}
	}

	if highest < MinScore {
		return None
	}
	return best
}

// Score counts how many of p's keywords occur in lower. lower must already be
// lower-cased.
func Score(lower string, p Pattern) int {
	score := 0
	for _, kw := range p.Keywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}
