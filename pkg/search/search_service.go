package search

import (
	"context"
	"sort"
	"strings"

	"tastebook/entities"
	"tastebook/pkg/recipe"
)

const (
	// defaultSearchLimit caps the unfiltered listing an empty query gets.
	defaultSearchLimit = 20

	suggestionLimit     = 5
	suggestionTolerance = 0.3
	maxSuggestDistance  = 2

	// Vocabulary words shorter than this are too noisy to suggest.
	minVocabularyWordLen = 4
)

type (
	SearchService interface {
		Search(ctx context.Context, query string) []*entities.Recipe
		SuggestSimilarTerms(ctx context.Context, query string) []string
	}

	searchService struct {
		recipeRepository recipe.RecipeRepository
	}
)

func NewSearchService(recipeRepository recipe.RecipeRepository) SearchService {
	return &searchService{recipeRepository: recipeRepository}
}

// Search evaluates the query in two passes. The exact pass (case-insensitive
// substring over name, description, keywords and ingredient parts) wins
// outright when it matches anything; only an empty exact pass falls through
// to fuzzy matching. Result order is collection order in either pass.
func (s *searchService) Search(ctx context.Context, query string) []*entities.Recipe {
	collection := s.recipeRepository.All(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		if len(collection) > defaultSearchLimit {
			return collection[:defaultSearchLimit]
		}
		return collection
	}

	needle := strings.ToLower(query)
	var exact []*entities.Recipe
	for _, rec := range collection {
		if matchesExact(rec, needle) {
			exact = append(exact, rec)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var fuzzy []*entities.Recipe
	for _, rec := range collection {
		if matchesFuzzy(rec, query) {
			fuzzy = append(fuzzy, rec)
		}
	}
	return fuzzy
}

func matchesExact(rec *entities.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(rec.Name), needle) ||
		strings.Contains(strings.ToLower(rec.Description), needle) {
		return true
	}
	for _, kw := range rec.Keywords {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	for _, part := range rec.RecipeIngredientParts {
		if strings.Contains(strings.ToLower(part), needle) {
			return true
		}
	}
	return false
}

func matchesFuzzy(rec *entities.Recipe, query string) bool {
	if FuzzyMatch(rec.Name, query) || FuzzyMatch(rec.Description, query) {
		return true
	}
	for _, kw := range rec.Keywords {
		if FuzzyMatch(kw, query) {
			return true
		}
	}
	for _, part := range rec.RecipeIngredientParts {
		if FuzzyMatch(part, query) {
			return true
		}
	}
	return false
}

// SuggestSimilarTerms produces "did you mean" candidates: vocabulary terms
// within a small edit distance of the query, closest first, at most five.
func (s *searchService) SuggestSimilarTerms(ctx context.Context, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	vocabulary := s.buildVocabulary(ctx)

	type candidate struct {
		term     string
		distance int
	}
	var accepted []candidate
	for term := range vocabulary {
		threshold := int(float64(len([]rune(term))) * suggestionTolerance)
		if threshold > maxSuggestDistance {
			threshold = maxSuggestDistance
		}
		d := EditDistance(term, query)
		if d <= threshold {
			accepted = append(accepted, candidate{term: term, distance: d})
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].distance != accepted[j].distance {
			return accepted[i].distance < accepted[j].distance
		}
		return accepted[i].term < accepted[j].term
	})

	out := make([]string, 0, suggestionLimit)
	for _, c := range accepted {
		if len(out) == suggestionLimit {
			break
		}
		out = append(out, c.term)
	}
	return out
}

// buildVocabulary collects words from recipe names and ingredient parts
// plus every keyword verbatim, all case-folded.
func (s *searchService) buildVocabulary(ctx context.Context) map[string]struct{} {
	vocabulary := make(map[string]struct{})
	addWords := func(text string) {
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if len([]rune(w)) >= minVocabularyWordLen {
				vocabulary[w] = struct{}{}
			}
		}
	}
	for _, rec := range s.recipeRepository.All(ctx) {
		addWords(rec.Name)
		for _, part := range rec.RecipeIngredientParts {
			addWords(part)
		}
		for _, kw := range rec.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				vocabulary[kw] = struct{}{}
			}
		}
	}
	return vocabulary
}
