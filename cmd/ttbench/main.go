package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type metadata struct {
	log *logrus.Logger
	w   io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func newApp(w, e io.Writer) *cli.App {
	// -v is verbose here, so the version flag loses its short name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "ttbench"
	app.Usage = "exercise and time threaded trees"
	app.Version = version
	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  " log at debug level",
			EnvVar: "TTBENCH_VERBOSE",
		},
		cli.BoolFlag{
			Name:   "json",
			Usage:  " log as JSON",
			EnvVar: "TTBENCH_JSON",
		},
	}
	seedFlag := cli.Int64Flag{
		Name:   "seed, s",
		Value:  1,
		Usage:  " random `SEED`",
		EnvVar: "TTBENCH_SEED",
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "time building a tree from random distinct values against sorting them",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10000,
					Usage: " number of `VALUES`",
				},
				seedFlag,
			},
			Action: runBuild,
		},
		{
			Name:   "demo",
			Usage:  "print union, difference and string trees",
			Action: runDemo,
		},
		{
			Name:  "stress",
			Usage: "insert random samples and delete them in random order, checking the tree after every step",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "trials, t",
					Value: 1,
					Usage: " number of `TRIALS`",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: 1000,
					Usage: " values per trial",
				},
				cli.IntFlag{
					Name:  "bound",
					Value: 2000,
					Usage: " values are drawn from [0, `BOUND`)",
				},
				cli.BoolFlag{
					Name:  "duplicates, d",
					Usage: " keep equal values in separate nodes",
				},
				seedFlag,
			},
			Action: runStress,
		},
	}

	app.Before = func(c *cli.Context) error {
		log := logrus.New()
		log.Out = c.App.ErrWriter
		if c.GlobalBool("json") {
			log.Formatter = &logrus.JSONFormatter{}
		}
		if c.GlobalBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		c.App.Metadata["config"] = &metadata{
			log: log,
			w:   c.App.Writer,
		}
		return nil
	}
	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
