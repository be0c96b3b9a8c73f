package commands

import (
	"strconv"
	"time"

	"github.com/activecm/leakhunt/util"
)

// helper functions for formatting floats and integers
func f(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
func i(i int64) string {
	return strconv.FormatInt(i, 10)
}

func ts(t time.Time) string {
	return t.Format(util.TimeFormat)
}
