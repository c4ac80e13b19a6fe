package tailio

import (
	"bytes"
	"io"
)

const maxConsecutiveEmptyReads = 100

// Segment is one step of a Scanner. A line that does not fit in the buffer
// is delivered as several segments sharing the same No.
type Segment struct {
	// No is the number of the line this segment belongs to, starting from 1
	No int64
	// Offset is the position of Raw[0] in the stream, in number of bytes, starting from 0
	Offset int64
	// Raw holds the bytes, including the \n when Terminated. Only valid until the next Scan.
	Raw []byte
	// Terminated is true when Raw ends the line with \n
	Terminated bool
}

// Scanner walks a stream newline by newline using a fixed buffer.
// Memory use does not depend on line length.
type Scanner struct {
	rd        io.Reader
	buf       []byte
	start     int
	end       int
	completed int64
	offset    int64
	err       error
	eof       error
	seg       Segment
}

func NewScanner(rd io.Reader, buf []byte) *Scanner {
	return &Scanner{
		rd:  rd,
		buf: buf,
	}
}

func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.start == s.end {
		if s.eof != nil {
			s.err = s.eof
			return false
		}

		s.start, s.end = 0, 0
		if !s.fill() {
			return false
		}
	}

	data := s.buf[s.start:s.end]
	terminated := false
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i+1]
		terminated = true
	}

	s.seg = Segment{
		No:         s.completed + 1,
		Offset:     s.offset,
		Raw:        data,
		Terminated: terminated,
	}

	if terminated {
		s.completed++
	}
	s.start += len(data)
	s.offset += int64(len(data))

	return true
}

// fill reads until the buffer holds some data or the reader is done.
func (s *Scanner) fill() bool {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := s.rd.Read(s.buf)
		if n > 0 {
			s.end = n
		}

		if err != nil {
			if n > 0 {
				// hand out what we got, report err once the buffer is drained
				s.eof = err
				return true
			}
			s.err = err
			return false
		}

		if n > 0 {
			return true
		}
	}

	s.err = io.ErrNoProgress
	return false
}

func (s *Scanner) Segment() Segment {
	return s.seg
}

// Err returns io.EOF after a clean end of stream.
func (s *Scanner) Err() error {
	return s.err
}

// CountTotals runs a full pass over rd and returns its line and byte totals.
// A trailing fragment without \n counts as a line.
func CountTotals(rd io.Reader, buf []byte) (Totals, error) {
	var t Totals
	scanner := NewScanner(rd, buf)
	for scanner.Scan() {
		seg := scanner.Segment()
		t.Lines = seg.No
		t.Bytes += int64(len(seg.Raw))
	}

	if err := scanner.Err(); err != io.EOF {
		return t, err
	}

	return t, nil
}
