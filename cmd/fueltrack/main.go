package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "fueltrack",
		Usage: "Fuel purchase logging web app",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			codexCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
