package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Digz0/WordFreq/internal/batch"
	"github.com/Digz0/WordFreq/internal/history"
	"github.com/Digz0/WordFreq/internal/ingest"
	"github.com/Digz0/WordFreq/internal/rarity"
	"github.com/Digz0/WordFreq/internal/workspace"
)

var (
	saveFlag = &cli.BoolFlag{
		Name:  "save",
		Usage: "Persist the analysis to the workspace history",
	}

	profileFlag = &cli.BoolFlag{
		Name:  "profile",
		Usage: "Include a windowed rarity profile of the text",
	}

	windowFlag = &cli.IntFlag{
		Name:  "window",
		Usage: "Profile window size in tokens",
		Value: 200,
	}

	overlapFlag = &cli.IntFlag{
		Name:  "overlap",
		Usage: "Profile window overlap in tokens",
		Value: 50,
	}

	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Concurrent files when analyzing multiple inputs (0 = all CPUs)",
	}

	analyzeCmd = &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze files, or pasted text when no files are given",
		ArgsUsage: "[files...]",
		Flags: []cli.Flag{
			saveFlag,
			profileFlag,
			windowFlag,
			overlapFlag,
			workersFlag,
		},
		Action: runAnalyze,
	}
)

func runAnalyze(c *cli.Context) error {
	state := getState(c)
	warnUnknownLanguage(state)

	if c.NArg() == 0 {
		return analyzeInteractive(c, state)
	}
	return analyzeFiles(c, state, c.Args().Slice())
}

func analyzeInteractive(c *cli.Context, state *appState) error {
	text, err := readInteractive(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("empty input")
	}
	return analyzeText(c, state, "stdin", text)
}

func analyzeText(c *cli.Context, state *appState, source, text string) error {
	report, err := state.Analyzer.Analyze(text, state.Language)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", source, err)
	}

	var profile []rarity.Window
	if c.Bool(profileFlag.Name) {
		profile = state.Analyzer.Profile(text, state.Language, c.Int(windowFlag.Name), c.Int(overlapFlag.Name))
	}

	if c.Bool(saveFlag.Name) {
		id, err := history.Save(workspace.HistoryPath(state.Base), source, state.Language, report, state.Config.TopWords)
		if err != nil {
			return fmt.Errorf("saving analysis: %w", err)
		}
		slog.Debug("analysis saved", "id", id, "source", source)
	}

	view := newAnalysisView(source, state.Language, report, profile)
	if state.Format == formatText {
		renderAnalysisText(os.Stdout, view)
		return nil
	}
	return encode(state.Format, view)
}

func analyzeFiles(c *cli.Context, state *appState, paths []string) error {
	if len(paths) == 1 {
		doc, err := ingest.ParseFile(paths[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", paths[0], err)
		}
		return analyzeText(c, state, doc.Path, doc.Text)
	}

	workers := c.Int(workersFlag.Name)
	if workers <= 0 {
		workers = state.Config.Workers
	}

	results := batch.Run(c.Context, paths, workers, func(path string) (*rarity.Report, error) {
		doc, err := ingest.ParseFile(path)
		if err != nil {
			return nil, err
		}
		return state.Analyzer.Analyze(doc.Text, state.Language)
	})

	views := make([]analysisView, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			slog.Error("analysis failed", "path", r.Path, "error", r.Err)
			failed++
			continue
		}
		if c.Bool(saveFlag.Name) {
			if _, err := history.Save(workspace.HistoryPath(state.Base), r.Path, state.Language, r.Report, state.Config.TopWords); err != nil {
				return fmt.Errorf("saving analysis for %s: %w", r.Path, err)
			}
		}
		views = append(views, newAnalysisView(r.Path, state.Language, r.Report, nil))
	}

	if state.Format == formatText {
		for _, v := range views {
			renderAnalysisText(os.Stdout, v)
		}
	} else if err := encode(state.Format, views); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
