package cli

import (
	"bufio"
	"io"
	"strings"
)

// input reads user answers line by line from stdin.
type input struct {
	sc *bufio.Scanner
}

func newInput(r io.Reader) *input {
	return &input{sc: bufio.NewScanner(r)}
}

// line returns the next full line; ok is false once input is exhausted.
func (in *input) line() (string, bool) {
	if !in.sc.Scan() {
		return "", false
	}
	return in.sc.Text(), true
}

// token returns the first whitespace-delimited word of the next non-blank
// line. The rest of that line is discarded.
func (in *input) token() (string, bool) {
	for {
		l, ok := in.line()
		if !ok {
			return "", false
		}
		if fields := strings.Fields(l); len(fields) > 0 {
			return fields[0], true
		}
	}
}
