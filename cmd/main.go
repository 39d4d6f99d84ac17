package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

const programName = "spandbg"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The Span Authors",
				Email: "",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "words",
				Usage:     "Split a file into word spans and print their absolute carrier offsets",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "verbose",
						Usage:   "Dump the full structure of every span",
						Aliases: []string{"v"},
					},
				},
				Before: fileValidator,
				Action: func(c *cli.Context) error {
					filename := c.Args().Get(0)

					file, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					return words(string(file), c.Bool("verbose"))
				},
			},
			{
				Name:    "repl",
				Aliases: []string{"r"},
				Usage:   "Interactively explore spans over a loaded carrier",
				Action: func(c *cli.Context) error {
					return runRepl()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
