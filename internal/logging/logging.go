package logging

import (
	"io"
	"os"

	"github.com/ledgerwatch/log/v3"
)

// New returns a logfmt logger on stderr. verbose lowers the threshold from
// info to debug.
func New(verbose bool) log.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

func NewWithWriter(w io.Writer, verbose bool) log.Logger {
	lvl := log.LvlInfo
	if verbose {
		lvl = log.LvlDebug
	}
	l := log.New()
	l.SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(w, log.LogfmtFormat())))
	return l
}

// Discard drops everything. Used by tests.
func Discard() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}
