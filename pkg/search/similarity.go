package search

import "strings"

// DefaultTolerance is the fraction of a word's length allowed as edit
// distance before two words stop counting as a fuzzy match.
const DefaultTolerance = 0.2

// minFuzzyWordLen keeps words under three characters out of fuzzy
// comparison.
const minFuzzyWordLen = 3

// EditDistance returns the Levenshtein distance between a and b with unit
// costs for insertion, deletion and substitution.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// FuzzyMatch reports whether target matches source with DefaultTolerance.
func FuzzyMatch(source, target string) bool {
	return fuzzyMatch(source, target, DefaultTolerance)
}

func fuzzyMatch(source, target string, tolerance float64) bool {
	if source == "" || target == "" {
		return false
	}

	src := strings.ToLower(source)
	tgt := strings.ToLower(target)

	if strings.Contains(src, tgt) || strings.Contains(tgt, src) {
		return true
	}

	sourceWords := strings.Fields(src)
	for _, tw := range strings.Fields(tgt) {
		twLen := len([]rune(tw))
		if twLen < minFuzzyWordLen {
			continue
		}
		threshold := int(float64(twLen) * tolerance)
		if threshold < 1 {
			threshold = 1
		}
		for _, sw := range sourceWords {
			if len([]rune(sw)) < minFuzzyWordLen {
				continue
			}
			if EditDistance(sw, tw) <= threshold {
				return true
			}
		}
	}
	return false
}
