package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Digz0/WordFreq/internal/rarity"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type analysisView struct {
	Source   string             `json:"source,omitempty" yaml:"source,omitempty"`
	Language string             `json:"language" yaml:"language"`
	Words    int                `json:"words" yaml:"words"`
	Distinct int                `json:"distinct_words" yaml:"distinct_words"`
	Average  float64            `json:"average" yaml:"average"`
	Ranked   []rarity.WordScore `json:"ranked" yaml:"ranked"`
	Profile  []rarity.Window    `json:"profile,omitempty" yaml:"profile,omitempty"`
}

func newAnalysisView(source, language string, report *rarity.Report, profile []rarity.Window) analysisView {
	return analysisView{
		Source:   source,
		Language: language,
		Words:    len(report.Scores),
		Distinct: report.Distinct(),
		Average:  report.Average,
		Ranked:   report.Ranked(),
		Profile:  profile,
	}
}

func encode(format string, v any) error {
	switch format {
	case formatYAML, "yml":
		return yaml.NewEncoder(os.Stdout).Encode(v)
	case formatJSON:
		fallthrough
	default:
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "  ")
		return e.Encode(v)
	}
}

func renderAnalysisText(w io.Writer, v analysisView) {
	fmt.Fprintln(w, "\nRarity Analysis Results:")
	if v.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", v.Source)
	}
	fmt.Fprintf(w, "Language: %s\n", v.Language)
	fmt.Fprintf(w, "Words: %d (distinct: %d)\n", v.Words, v.Distinct)
	fmt.Fprintf(w, "Average Rarity Score: %.2f\n", v.Average)

	fmt.Fprintln(w, "\nIndividual Word Scores:")
	for _, ws := range v.Ranked {
		fmt.Fprintf(w, "Word: %s | Rarity Score: %.2f\n", ws.Word, ws.Score)
	}

	if len(v.Profile) > 0 {
		fmt.Fprintln(w, "\nRarity Profile:")
		for _, win := range v.Profile {
			fmt.Fprintf(w, "Tokens %d-%d | Average: %.2f\n", win.StartToken, win.EndToken, win.Average)
		}
	}
}
