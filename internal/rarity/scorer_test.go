package rarity

import (
	"strings"
	"testing"
)

type stubLookup struct {
	freqs map[string]float64
	calls int
}

func (s *stubLookup) Frequency(word, language string) float64 {
	s.calls++
	if language != "en" {
		return 0
	}
	return s.freqs[word]
}

func newStub(freqs map[string]float64) *stubLookup {
	return &stubLookup{freqs: freqs}
}

func TestScoreStaysInBounds(t *testing.T) {
	measures := map[string]float64{
		"a": 0, "b": 0.1, "c": 1, "d": 3.5, "e": 6.9, "f": 7,
		"overshoot": 7.5,
	}
	s := NewScorer(newStub(measures))
	for word := range measures {
		got := s.Score(word, "en")
		if got < 0 || got > MaxScore {
			t.Fatalf("score for %q out of bounds: %v", word, got)
		}
	}
}

func TestScoreUnknownWordIsMaxRarity(t *testing.T) {
	s := NewScorer(newStub(map[string]float64{"the": 6.9}))
	if got := s.Score("xyzzyqplm", "en"); got != MaxScore {
		t.Fatalf("expected unknown word to score %v, got %v", MaxScore, got)
	}
}

func TestScoreCeilingMapsToZero(t *testing.T) {
	s := NewScorer(newStub(map[string]float64{"the": 7}))
	if got := s.Score("the", "en"); got != 0 {
		t.Fatalf("expected measure at ceiling to score 0, got %v", got)
	}
}

func TestScoreOvershootClampsToZero(t *testing.T) {
	s := NewScorer(newStub(map[string]float64{"the": 7.4}))
	if got := s.Score("the", "en"); got != 0 {
		t.Fatalf("expected overshooting measure to clamp to 0, got %v", got)
	}
}

func TestScoreMonotonicInCommonness(t *testing.T) {
	freqs := map[string]float64{
		"w1": 1.2, "w2": 2.4, "w3": 3.1, "w4": 5.0, "w5": 6.8,
	}
	s := NewScorer(newStub(freqs))
	order := []string{"w5", "w4", "w3", "w2", "w1"}
	prev := -1.0
	for _, w := range order {
		got := s.Score(w, "en")
		if got < prev {
			t.Fatalf("score not non-increasing in commonness: %q scored %v after %v", w, got, prev)
		}
		prev = got
	}
}

func TestScoreDegenerateWords(t *testing.T) {
	s := NewScorer(newStub(map[string]float64{"the": 6.9}))
	cases := []struct {
		name string
		word string
	}{
		{"empty", ""},
		{"digits", "123"},
		{"single digit", "7"},
		{"very long", strings.Repeat("a", 51)},
	}
	for _, tc := range cases {
		if got := s.Score(tc.word, "en"); got != MaxScore {
			t.Fatalf("%s: expected %v, got %v", tc.name, MaxScore, got)
		}
	}
}

func TestScoreUnsupportedLanguageDegrades(t *testing.T) {
	s := NewScorer(newStub(map[string]float64{"the": 6.9}))
	if got := s.Score("the", "xx"); got != MaxScore {
		t.Fatalf("expected unsupported language to score everything %v, got %v", MaxScore, got)
	}
}

func TestScoreMemoizes(t *testing.T) {
	stub := newStub(map[string]float64{"fox": 4.2})
	s := NewScorer(stub)

	first := s.Score("fox", "en")
	second := s.Score("fox", "en")
	if first != second {
		t.Fatalf("cached score changed: %v vs %v", first, second)
	}
	if stub.calls != 1 {
		t.Fatalf("expected 1 lookup call, got %d", stub.calls)
	}

	// Same word in another language is a separate cache entry.
	s.Score("fox", "fr")
	if stub.calls != 2 {
		t.Fatalf("expected 2 lookup calls after language change, got %d", stub.calls)
	}
}
