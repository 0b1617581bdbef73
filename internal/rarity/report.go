package rarity

import "sort"

// Ranked returns the distinct words of the report ordered rarest first,
// ties broken alphabetically.
func (r *Report) Ranked() []WordScore {
	seen := make(map[string]struct{}, len(r.Scores))
	out := make([]WordScore, 0, len(r.Scores))
	for _, ws := range r.Scores {
		if _, ok := seen[ws.Word]; ok {
			continue
		}
		seen[ws.Word] = struct{}{}
		out = append(out, ws)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Rarest returns the highest-scoring word, keeping the first occurrence on
// ties. The zero value signals an empty report.
func (r *Report) Rarest() WordScore {
	var best WordScore
	for i, ws := range r.Scores {
		if i == 0 || ws.Score > best.Score {
			best = ws
		}
	}
	return best
}

// Commonest returns the lowest-scoring word, keeping the first occurrence
// on ties. The zero value signals an empty report.
func (r *Report) Commonest() WordScore {
	var best WordScore
	for i, ws := range r.Scores {
		if i == 0 || ws.Score < best.Score {
			best = ws
		}
	}
	return best
}

// Distinct reports the number of unique words scored.
func (r *Report) Distinct() int {
	seen := make(map[string]struct{}, len(r.Scores))
	for _, ws := range r.Scores {
		seen[ws.Word] = struct{}{}
	}
	return len(seen)
}
