package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var languagesCmd = &cli.Command{
	Name:    "languages",
	Aliases: []string{"ls"},
	Usage:   "List language codes with a frequency table available",
	Action:  runLanguages,
}

func runLanguages(c *cli.Context) error {
	state := getState(c)
	langs := state.Provider.Languages()

	if state.Format == formatText {
		for _, l := range langs {
			fmt.Fprintln(os.Stdout, l)
		}
		return nil
	}
	return encode(state.Format, langs)
}
