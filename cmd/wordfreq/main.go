package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Digz0/WordFreq/internal/config"
	"github.com/Digz0/WordFreq/internal/freqdata"
	"github.com/Digz0/WordFreq/internal/rarity"
	"github.com/Digz0/WordFreq/internal/workspace"
)

const appStateKey = "app-state"

var (
	version = "v0.1.0-default"
	commit  = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	langFlag = &cli.StringFlag{
		Name:    "lang",
		Aliases: []string{"l"},
		Usage:   "Language code passed to the frequency dataset (e.g. en, fr)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
		Value: formatText,
	}

	workspaceFlag = &cli.StringFlag{
		Name:  "workspace",
		Usage: "Workspace directory (optional, default: $HOME/.wordfreq)",
	}
)

type appState struct {
	Base     string
	Config   *config.Config
	Provider *freqdata.Provider
	Scorer   *rarity.Scorer
	Analyzer *rarity.Analyzer
	Language string
	Format   string
}

func getState(c *cli.Context) *appState {
	return c.App.Metadata[appStateKey].(*appState)
}

func main() {
	initLogging(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "wordfreq",
		Version:              fmt.Sprintf("%s (%s)", version, commit),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Scores how rare the words of a text are",
		Flags: []cli.Flag{
			debugFlag,
			langFlag,
			formatFlag,
			workspaceFlag,
		},
		Commands: []*cli.Command{
			analyzeCmd,
			wordCmd,
			languagesCmd,
			historyCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				initLogging(true)
			}

			base := c.String(workspaceFlag.Name)
			var err error
			if base == "" {
				base, err = workspace.EnsureDefault()
			} else {
				base, err = workspace.EnsureAt(base)
			}
			if err != nil {
				return fmt.Errorf("initializing workspace: %w", err)
			}

			cfg, err := config.Load(workspace.ConfigPath(base))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			language := cfg.Language
			if l := c.String(langFlag.Name); l != "" {
				language = l
			}

			provider := freqdata.New(workspace.DataDir(base))
			scorer := rarity.NewScorer(provider)

			c.App.Metadata[appStateKey] = &appState{
				Base:     base,
				Config:   cfg,
				Provider: provider,
				Scorer:   scorer,
				Analyzer: rarity.NewAnalyzer(scorer, cfg.MaxTextLength),
				Language: language,
				Format:   c.String(formatFlag.Name),
			}
			return nil
		},
	}
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// warnUnknownLanguage flags language codes with no dataset table. The core
// still runs; every word just scores as unknown.
func warnUnknownLanguage(state *appState) {
	for _, l := range state.Provider.Languages() {
		if l == state.Language {
			return
		}
	}
	slog.Warn("no frequency table for language; every word will score as unknown", "language", state.Language)
}
