package rarity

import (
	"unicode"

	gocache "github.com/patrickmn/go-cache"
)

// Lookup supplies a Zipf-style commonness measure for a word in a given
// language. Measures range from 0 to about 7; higher means more frequent
// usage, and exactly 0 means the word is out of vocabulary.
type Lookup interface {
	Frequency(word, language string) float64
}

const (
	// MaxScore is the top of the rarity scale: unknown or vanishingly rare.
	MaxScore = 8.0

	// zipfCeiling is the top of the commonness measure's natural range.
	zipfCeiling = 7.0

	// Words longer than this are scored as maximally rare without
	// consulting the dataset.
	longWordLimit = 50
)

// Scorer maps words to rarity scores using an injected frequency dataset.
// Scores are memoized per (word, language); the cache is safe for
// concurrent use and scoring is deterministic, so memoization never
// changes results.
type Scorer struct {
	lookup Lookup
	cache  *gocache.Cache
}

func NewScorer(lookup Lookup) *Scorer {
	return &Scorer{
		lookup: lookup,
		cache:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Score returns the rarity of word in language on a 0 to 8 scale: 0 is
// very common, 8 is very rare or unknown. An empty word scores 8 rather
// than failing, as do all-digit words and words over 50 runes.
func (s *Scorer) Score(word, language string) float64 {
	if word == "" {
		return MaxScore
	}
	key := language + "\x00" + word
	if v, ok := s.cache.Get(key); ok {
		return v.(float64)
	}
	score := s.compute(word, language)
	s.cache.Set(key, score, gocache.NoExpiration)
	return score
}

func (s *Scorer) compute(word, language string) float64 {
	if allDigits(word) {
		return MaxScore
	}
	if len([]rune(word)) > longWordLimit {
		return MaxScore
	}

	measure := s.lookup.Frequency(word, language)
	if measure <= 0 {
		return MaxScore
	}

	// Invert and rescale: a measure at the ceiling maps to 0, a measure
	// near 0 maps to just under 8. Clamp against overshoot on both ends.
	score := MaxScore - measure*MaxScore/zipfCeiling
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func allDigits(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
