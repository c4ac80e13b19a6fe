package main

import (
	"fmt"
	"io"
	"os"

	"github.com/JackKCWong/tailio"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "lscan",
		Usage:     "count lines and bytes the way wtail does",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "segments",
				Usage: "print every scanned segment as no:offset",
			},
			&cli.IntFlag{
				Name:  "buf",
				Usage: "buffer size in bytes",
				Value: tailio.DefaultBufSize,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("missing FILE operand")
	}

	if c.Int("buf") <= 0 {
		return errors.Errorf("invalid buffer size: %d", c.Int("buf"))
	}

	buf := make([]byte, c.Int("buf"))
	for _, path := range c.Args().Slice() {
		if err := scanFile(c.App.Writer, path, buf, c.Bool("segments")); err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", path, err)
		}
	}

	return nil
}

func scanFile(w io.Writer, path string, buf []byte, segments bool) error {
	infile, err := os.Open(path)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return pe.Err
		}
		return err
	}
	defer infile.Close()

	if segments {
		scanner := tailio.NewScanner(infile, buf)
		for scanner.Scan() {
			seg := scanner.Segment()
			fmt.Fprintf(w, "%d:%d\t%q\n", seg.No, seg.Offset, seg.Raw)
		}

		if err := scanner.Err(); err != io.EOF {
			return err
		}

		if _, err := infile.Seek(0, io.SeekStart); err != nil {
			return err
		}
	}

	totals, err := tailio.CountTotals(infile, buf)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", totals.Lines, totals.Bytes, humanize.Bytes(uint64(totals.Bytes)), path)
	return nil
}

func main1() int {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lscan: %s\n", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(main1())
}
