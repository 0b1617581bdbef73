package rarity

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// DefaultMaxTextLength caps Analyze input in characters.
const DefaultMaxTextLength = 100000

// WordScore is one scored token. Score always lies in [0, 8].
type WordScore struct {
	Word  string  `json:"word" yaml:"word"`
	Score float64 `json:"score" yaml:"score"`
}

// Report is the result of analyzing one text. Scores holds every token in
// original text order, duplicates included. Average is 0 when the text
// produced no tokens.
type Report struct {
	Scores  []WordScore `json:"scores" yaml:"scores"`
	Average float64     `json:"average" yaml:"average"`
}

// Analyzer tokenizes texts and scores each token through a Scorer. It is
// stateless between calls and safe for concurrent use.
type Analyzer struct {
	scorer  *Scorer
	maxText int
}

// NewAnalyzer wires an Analyzer to a Scorer. A maxTextLength of 0 or less
// falls back to DefaultMaxTextLength.
func NewAnalyzer(scorer *Scorer, maxTextLength int) *Analyzer {
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}
	return &Analyzer{scorer: scorer, maxText: maxTextLength}
}

// Analyze scores every token of text in order. The only failure mode is
// input longer than the configured character limit; empty or
// punctuation-only text yields an empty report, not an error.
func (a *Analyzer) Analyze(text, language string) (*Report, error) {
	text = norm.NFKC.String(text)
	if n := len([]rune(text)); n > a.maxText {
		return nil, fmt.Errorf("text is %d characters, limit is %d", n, a.maxText)
	}

	tokens := Tokenize(text)
	scores := make([]WordScore, 0, len(tokens))
	total := 0.0
	for _, tok := range tokens {
		s := a.scorer.Score(tok, language)
		scores = append(scores, WordScore{Word: tok, Score: s})
		total += s
	}

	report := &Report{Scores: scores}
	if len(scores) > 0 {
		report.Average = total / float64(len(scores))
	}
	return report, nil
}

// Tokenize lower-cases text and splits it into maximal runs of Unicode
// letters and digits. Punctuation and whitespace are delimiters and are
// discarded; digits stay part of tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
