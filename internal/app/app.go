package app

import (
	"io"
	"log"
)

// NewLogger returns a logger writing to w when verbose, and discarding
// otherwise.
func NewLogger(verbose bool, w io.Writer) *log.Logger {
	if !verbose || w == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "mathclash: ", log.LstdFlags)
}
