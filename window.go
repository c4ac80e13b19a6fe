package tailio

// StartIndex maps a spec onto a stream holding total elements (lines or bytes).
// It returns the zero-based index to emit from, or false when nothing should be emitted.
func StartIndex(spec TakeSpec, total int64) (int64, bool) {
	if spec.fromStart {
		return 0, total > 0
	}

	n := spec.n
	if n == 0 || total <= 0 {
		return 0, false
	}

	if n > 0 {
		if n > total {
			return 0, false
		}
		return n - 1, true
	}

	// n is never negated: total >= 1 keeps total+n inside int64 even for MinInt64
	start := total + n
	if start < 0 {
		start = 0
	}

	return start, true
}
