package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "exercise and inspect a fixed-capacity max-heap",
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Action: runREPL,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "capacity",
						DefaultText: "64",
						Value:       64,
						Usage:       "maximum number of elements",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
