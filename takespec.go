package tailio

import (
	"fmt"
	"regexp"
	"strconv"
)

var countRe = regexp.MustCompile(`^([+-])?([0-9]+)$`)

// TakeSpec describes how much of a stream to emit and from which end.
// The zero value is Count(0), which emits nothing.
type TakeSpec struct {
	fromStart bool
	n         int64
}

// FromStart is the "+0" spec: everything, as long as the stream is not empty.
func FromStart() TakeSpec {
	return TakeSpec{fromStart: true}
}

// Count returns a spec that starts at 1-indexed position n when n > 0,
// takes the last -n elements when n < 0, and emits nothing when n == 0.
func Count(n int64) TakeSpec {
	return TakeSpec{n: n}
}

func (s TakeSpec) IsFromStart() bool {
	return s.fromStart
}

// N is the signed count. It is 0 for FromStart.
func (s TakeSpec) N() int64 {
	return s.n
}

func (s TakeSpec) String() string {
	switch {
	case s.fromStart:
		return "+0"
	case s.n > 0:
		return fmt.Sprintf("+%d", s.n)
	default:
		return strconv.FormatInt(s.n, 10)
	}
}

// ParseTakeSpec parses a count argument. A missing sign means "from the end",
// so "10" and "-10" are the same spec, while "+10" starts at the tenth element.
// Only an explicit "+" on a zero value yields FromStart.
func ParseTakeSpec(val string) (TakeSpec, error) {
	m := countRe.FindStringSubmatch(val)
	if m == nil {
		return TakeSpec{}, &CountError{Value: val}
	}

	sign := m[1]
	if sign == "" {
		sign = "-"
	}

	// the sign goes in before parsing so that 9223372036854775808 lands on MinInt64
	n, err := strconv.ParseInt(sign+m[2], 10, 64)
	if err != nil {
		return TakeSpec{}, &CountError{Value: val}
	}

	if sign == "+" && n == 0 {
		return FromStart(), nil
	}

	return Count(n), nil
}
