package main

import (
	"fmt"

	"fueltrack/internal/codex"

	"github.com/urfave/cli/v2"
)

var codexCommand = &cli.Command{
	Name:  "codex",
	Usage: "Print the receipt path token for user ids",
	Flags: []cli.Flag{
		&cli.Int64SliceFlag{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "User id to encode (repeatable)",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		enc := codex.New(cfg.CodexSecret)
		for _, id := range c.Int64Slice("user") {
			fmt.Printf("%d\t%s\n", id, enc.Encode(id))
		}
		return nil
	},
}
