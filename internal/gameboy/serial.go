package gameboy

import (
	"io"
	"strings"
)

// serialMonitor captures the bytes sent over the serial port, which
// test ROMs use to report their results.
type serialMonitor struct {
	buf strings.Builder
	out io.Writer // optional copy of the output

	watch bool // look for a result in the output
	done  bool
}

func (s *serialMonitor) Write(p []byte) (int, error) {
	s.buf.Write(p)
	if s.watch && !s.done {
		s.done = resultFromSerial(s.buf.String()) != ResultUnknown
	}
	if s.out != nil {
		return s.out.Write(p)
	}
	return len(p), nil
}

func (s *serialMonitor) String() string {
	return s.buf.String()
}

// Done returns true once a watched output has reported a result.
func (s *serialMonitor) Done() bool {
	return s.done
}
