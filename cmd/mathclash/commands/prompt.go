package commands

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"
)

// lineReader delivers input lines on a channel so reads can be abandoned
// when a round's deadline passes.
type lineReader struct {
	lines chan string
	done  chan struct{}
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				return
			}
		}
	}()
	return lr
}

// Close stops delivering lines. The scanner goroutine exits on its next line
// or at end of input.
func (lr *lineReader) Close() {
	select {
	case <-lr.done:
	default:
		close(lr.done)
	}
}

// ReadLine waits for the next line until ctx is done. It returns io.EOF once
// input is exhausted.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// Discard drops lines that are already waiting without blocking and returns
// how many were dropped.
func (lr *lineReader) Discard() int {
	n := 0
	for {
		select {
		case _, ok := <-lr.lines:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

// formatAnswer renders a reference value with at most four decimals.
func formatAnswer(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
