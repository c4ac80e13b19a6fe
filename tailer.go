package tailio

import (
	"context"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const DefaultBufSize = 32 * 1024

// Tailer emits the tail window of a seekable stream.
// Every Tail call makes a counting pass first, then seeks (bytes) or rescans (lines).
type Tailer struct {
	fd  io.ReadSeeker
	buf []byte
	log *zap.Logger
}

type TailerOption func(*Tailer)

func WithLogger(log *zap.Logger) TailerOption {
	return func(t *Tailer) {
		if log != nil {
			t.log = log
		}
	}
}

func NewTailer(fd io.ReadSeeker, bufSize int, opts ...TailerOption) *Tailer {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	t := &Tailer{
		fd:  fd,
		buf: make([]byte, bufSize),
		log: zap.NewNop(),
	}

	for i := range opts {
		opts[i](t)
	}

	return t
}

// Totals rewinds the stream and counts its lines and bytes without keeping any content.
func (t *Tailer) Totals(ctx context.Context) (Totals, error) {
	if _, err := t.fd.Seek(0, io.SeekStart); err != nil {
		return Totals{}, errors.Wrap(pathless(err), "rewind")
	}

	totals, err := CountTotals(ctxReader{ctx: ctx, rd: t.fd}, t.buf)
	if err != nil {
		return totals, errors.Wrap(pathless(err), "count")
	}

	t.log.Debug("totals counted",
		zap.Int64("lines", totals.Lines),
		zap.Int64("bytes", totals.Bytes),
		zap.String("size", humanize.Bytes(uint64(totals.Bytes))))

	return totals, nil
}

// TailBytes copies the selected byte window to w verbatim.
func (t *Tailer) TailBytes(ctx context.Context, w io.Writer, spec TakeSpec) error {
	totals, err := t.Totals(ctx)
	if err != nil {
		return err
	}

	start, ok := StartIndex(spec, totals.Bytes)
	t.log.Debug("window selected", zap.String("unit", "byte"), zap.Stringer("spec", spec),
		zap.Int64("start", start), zap.Bool("ok", ok))
	if !ok {
		return nil
	}

	if _, err := t.fd.Seek(start, io.SeekStart); err != nil {
		return errors.Wrapf(pathless(err), "seek to %d", start)
	}

	if _, err := io.CopyBuffer(w, ctxReader{ctx: ctx, rd: t.fd}, t.buf); err != nil {
		return errors.Wrap(pathless(err), "copy")
	}

	return nil
}

// TailLines writes the selected lines to w, terminators included.
// Invalid UTF-8 is replaced with U+FFFD.
func (t *Tailer) TailLines(ctx context.Context, w io.Writer, spec TakeSpec) error {
	totals, err := t.Totals(ctx)
	if err != nil {
		return err
	}

	start, ok := StartIndex(spec, totals.Lines)
	t.log.Debug("window selected", zap.String("unit", "line"), zap.Stringer("spec", spec),
		zap.Int64("start", start), zap.Bool("ok", ok))
	if !ok {
		return nil
	}

	if _, err := t.fd.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(pathless(err), "rewind")
	}

	out := transform.NewWriter(w, unicode.UTF8.NewDecoder())
	scanner := NewScanner(ctxReader{ctx: ctx, rd: t.fd}, t.buf)
	for scanner.Scan() {
		seg := scanner.Segment()
		if seg.No-1 < start {
			continue
		}

		if _, err := out.Write(seg.Raw); err != nil {
			return errors.Wrap(err, "write")
		}
	}

	if err := scanner.Err(); err != io.EOF {
		return errors.Wrap(pathless(err), "rescan")
	}

	return errors.Wrap(out.Close(), "write")
}

// pathless unwraps *os.PathError, leaving the path to the caller.
func pathless(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// ctxReader stops a pass once ctx is done.
type ctxReader struct {
	ctx context.Context
	rd  io.Reader
}

func (r ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.rd.Read(p)
}
