package stream

import (
	"bufio"
	"io"
)

// readerLines adapts an io.Reader to the LineReader interface.
type readerLines struct {
	r *bufio.Reader
}

// Reader wraps r so the decoder can pull lines from any byte stream.
func Reader(r io.Reader) LineReader {
	return &readerLines{r: bufio.NewReader(r)}
}

func (rl *readerLines) ReadLine() (string, error) {
	ln, err := rl.r.ReadString('\n')
	if err == io.EOF && ln != "" {
		// final line without a newline still counts
		return ln, nil
	}
	if err != nil {
		return "", err
	}
	return ln, nil
}

// sliceLines yields pre-split lines, for sources that already arrive
// line-framed (tests, message payloads).
type sliceLines struct {
	lines []string
	i     int
}

// Lines wraps a line slice as a LineReader.
func Lines(lines []string) LineReader {
	return &sliceLines{lines: lines}
}

func (sl *sliceLines) ReadLine() (string, error) {
	if sl.i >= len(sl.lines) {
		return "", io.EOF
	}
	ln := sl.lines[sl.i]
	sl.i++
	return ln, nil
}
