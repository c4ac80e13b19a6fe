package tailio

import "github.com/pkg/errors"

const DefaultLines = "10"

// Config is what a run needs: the inputs, one spec for lines and optionally one for bytes.
type Config struct {
	Files []string
	Lines TakeSpec
	// Bytes selects byte mode when set
	Bytes *TakeSpec
	Quiet bool
}

// NewConfig validates raw command line values. A nil lines means DefaultLines,
// a nil bytes means line mode. A value that is given is always parsed, even when empty.
func NewConfig(files []string, lines, bytes *string, quiet bool) (Config, error) {
	if len(files) == 0 {
		return Config{}, ErrNoFiles
	}

	lineVal := DefaultLines
	if lines != nil {
		lineVal = *lines
	}

	cfg := Config{
		Files: files,
		Quiet: quiet,
	}

	var err error
	cfg.Lines, err = parseCount("line", lineVal)
	if err != nil {
		return Config{}, err
	}

	if bytes != nil {
		spec, err := parseCount("byte", *bytes)
		if err != nil {
			return Config{}, err
		}
		cfg.Bytes = &spec
	}

	return cfg, nil
}

func parseCount(unit, val string) (TakeSpec, error) {
	spec, err := ParseTakeSpec(val)
	var ce *CountError
	if errors.As(err, &ce) {
		ce.Unit = unit
	}
	return spec, err
}
