package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Digz0/WordFreq/internal/rarity"
)

var wordCmd = &cli.Command{
	Name:      "word",
	Aliases:   []string{"w"},
	Usage:     "Score individual words",
	ArgsUsage: "<words...>",
	Action:    runWord,
}

func runWord(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one word is required")
	}
	state := getState(c)
	warnUnknownLanguage(state)

	scores := make([]rarity.WordScore, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		word := strings.ToLower(strings.TrimSpace(arg))
		scores = append(scores, rarity.WordScore{
			Word:  word,
			Score: state.Scorer.Score(word, state.Language),
		})
	}

	if state.Format == formatText {
		for _, ws := range scores {
			fmt.Fprintf(os.Stdout, "Word: %s | Rarity Score: %.2f\n", ws.Word, ws.Score)
		}
		return nil
	}
	return encode(state.Format, scores)
}
