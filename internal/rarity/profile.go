package rarity

import "golang.org/x/text/unicode/norm"

// Window is a span of consecutive tokens with the mean rarity of its
// tokens. Token bounds index into the tokenized text.
type Window struct {
	Index      int     `json:"index" yaml:"index"`
	StartToken int     `json:"start_token" yaml:"start_token"`
	EndToken   int     `json:"end_token" yaml:"end_token"`
	Average    float64 `json:"average" yaml:"average"`
}

// Profile computes a windowed rarity curve over the text: overlapping
// sliding windows of windowTokens tokens, each carrying the mean rarity of
// its span. It shows where the dense vocabulary of a long text sits.
func (a *Analyzer) Profile(text, language string, windowTokens, overlapTokens int) []Window {
	if windowTokens <= 0 {
		return nil
	}
	if overlapTokens < 0 {
		overlapTokens = 0
	}
	if overlapTokens >= windowTokens {
		overlapTokens = windowTokens - 1
	}

	tokens := Tokenize(norm.NFKC.String(text))
	if len(tokens) == 0 {
		return nil
	}

	scores := make([]float64, len(tokens))
	for i, tok := range tokens {
		scores[i] = a.scorer.Score(tok, language)
	}

	step := windowTokens - overlapTokens
	windows := make([]Window, 0, (len(tokens)/step)+1)
	for start := 0; start < len(tokens); start += step {
		end := start + windowTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		total := 0.0
		for _, s := range scores[start:end] {
			total += s
		}
		windows = append(windows, Window{
			Index:      len(windows),
			StartToken: start,
			EndToken:   end,
			Average:    total / float64(end-start),
		})
		if end == len(tokens) {
			break
		}
	}

	return windows
}
