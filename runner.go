package tailio

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Runner tails each file of a Config in order.
// Stdout and Stderr default to os.Stdout and os.Stderr.
type Runner struct {
	Stdout io.Writer
	// Stderr receives one "path: error" line per failed file
	Stderr  io.Writer
	BufSize int
	Logger  *zap.Logger
}

// Run processes every file even when some of them fail. Failures are reported
// on Stderr as they happen and returned combined; only ctx stops the loop early.
func (r *Runner) Run(ctx context.Context, cfg Config) error {
	if len(cfg.Files) == 0 {
		return ErrNoFiles
	}

	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	var errs error
	for i, path := range cfg.Files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		if err := runFile(ctx, log, stdout, r.BufSize, cfg, i, path); err != nil {
			fmt.Fprintln(stderr, err)
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func runFile(ctx context.Context, log *zap.Logger, stdout io.Writer, bufSize int, cfg Config, i int, path string) error {
	fd, err := os.Open(path)
	if err != nil {
		err = pathless(err)
		log.Debug("file skipped", zap.String("path", path), zap.Error(err))
		return &FileError{Path: path, Err: err}
	}
	defer fd.Close()

	if !cfg.Quiet && len(cfg.Files) > 1 {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(stdout, "%s==> %s <==\n", sep, path); err != nil {
			return &FileError{Path: path, Err: err}
		}
	}

	tailer := NewTailer(fd, bufSize, WithLogger(log.With(zap.String("path", path))))
	if cfg.Bytes != nil {
		err = tailer.TailBytes(ctx, stdout, *cfg.Bytes)
	} else {
		err = tailer.TailLines(ctx, stdout, cfg.Lines)
	}

	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	return nil
}
