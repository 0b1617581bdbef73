package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Digz0/WordFreq/internal/history"
	"github.com/Digz0/WordFreq/internal/workspace"
)

var (
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Number of entries to show",
		Value: 10,
	}

	historyCmd = &cli.Command{
		Name:   "history",
		Usage:  "Show recently saved analyses",
		Flags:  []cli.Flag{limitFlag},
		Action: runHistory,
	}
)

func runHistory(c *cli.Context) error {
	state := getState(c)

	entries, err := history.Recent(workspace.HistoryPath(state.Base), c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if state.Format == formatText {
		for _, e := range entries {
			fmt.Fprintf(os.Stdout, "#%d %s [%s] words=%d distinct=%d avg=%.2f rarest=%s (%.2f) at %s\n",
				e.ID, e.Source, e.Language, e.Words, e.DistinctWords, e.Average, e.RarestWord, e.RarestScore, e.CreatedAt)
		}
		return nil
	}
	return encode(state.Format, entries)
}
