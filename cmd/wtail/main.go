package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/JackKCWong/tailio"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "wtail",
		Usage:     "print the last part of files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "number of lines, +N to start at line N",
				Value:   tailio.DefaultLines,
			},
			&cli.StringFlag{
				Name:    "bytes",
				Aliases: []string{"c"},
				Usage:   "number of bytes, +N to start at byte N",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "never print headers",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging on stderr",
			},
			&cli.StringFlag{
				Name:  "prof",
				Usage: "cpu|mem, profile into the current directory",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("missing FILE operand")
	}

	if c.IsSet("lines") && c.IsSet("bytes") {
		return errors.New("--bytes cannot be used with --lines")
	}

	var lines, bytes *string
	if c.IsSet("lines") {
		v := c.String("lines")
		lines = &v
	}
	if c.IsSet("bytes") {
		v := c.String("bytes")
		bytes = &v
	}

	cfg, err := tailio.NewConfig(c.Args().Slice(), lines, bytes, c.Bool("quiet"))
	if err != nil {
		return err
	}

	switch c.String("prof") {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop()
	default:
		return errors.Errorf("unknown profile: %s", c.String("prof"))
	}

	log := zap.NewNop()
	if c.Bool("verbose") {
		log, err = zap.NewDevelopmentConfig().Build()
		if err != nil {
			return errors.Wrap(err, "logger")
		}
		defer log.Sync()
	}

	runner := &tailio.Runner{
		Stdout: c.App.Writer,
		Stderr: c.App.ErrWriter,
		Logger: log,
	}

	// per-file failures are already on stderr and do not change the exit code
	if err := runner.Run(c.Context, cfg); err != nil {
		if c.Context.Err() != nil {
			return c.Context.Err()
		}
		log.Debug("finished with errors", zap.Error(err))
	}

	return nil
}

func main1() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigKill := make(chan os.Signal, 1)
	signal.Notify(sigKill, os.Interrupt)
	go func() {
		<-sigKill
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wtail: %s\n", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(main1())
}
