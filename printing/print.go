// Package printing renders leak reports on a text stream
package printing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/util"
)

// Printer is a leak.Sink writing reports to a stream, either one flat line
// per report or one line per AS and leak index
type Printer struct {
	out   *bufio.Writer
	flat  bool
	dates bool
}

// NewPrinter creates a Printer writing to w. With dates set, leaks of dated
// reports are printed as days instead of indexes.
func NewPrinter(w io.Writer, flat bool, dates bool) *Printer {
	return &Printer{
		out:   bufio.NewWriter(w),
		flat:  flat,
		dates: dates,
	}
}

// Write prints a leak report
func (p *Printer) Write(result *leak.Result) error {
	if p.flat {
		return WriteFlat(p.out, result, p.dates)
	}
	return WritePairs(p.out, result, p.dates)
}

// Flush pushes the buffered lines to the underlying stream
func (p *Printer) Flush() error {
	return p.out.Flush()
}

// WriteFlat prints the thresholds, the ASes and the leaks of a report
// on a single line
func WriteFlat(w io.Writer, result *leak.Result, dates bool) error {
	_, err := fmt.Fprintf(w, "%s %s %s\n",
		result.Thresholds.String(),
		util.JoinUint32(result.ASes, ","),
		strings.Join(Leaks(result, dates), ","),
	)
	return err
}

// WritePairs prints an "<asn> <leak>" line for every AS and leak of a report
func WritePairs(w io.Writer, result *leak.Result, dates bool) error {
	leaks := Leaks(result, dates)
	for _, asn := range result.ASes {
		for _, l := range leaks {
			if _, err := fmt.Fprintf(w, "%d %s\n", asn, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaks formats the leaks of a report. The days are used when asked for and
// known, the indexes otherwise.
func Leaks(result *leak.Result, dates bool) []string {
	if dates && len(result.Dates) == len(result.Leaks) && len(result.Dates) > 0 {
		return result.Dates
	}
	leaks := make([]string, len(result.Leaks))
	for i, idx := range result.Leaks {
		leaks[i] = strconv.Itoa(idx)
	}
	return leaks
}
