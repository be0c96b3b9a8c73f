package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/activecm/leakhunt/pkg/leak"
)

const parameterFields = 5

// ParseParameters reads a threshold set from a single line holding, in order,
// the prefixes peak min value, the conflicts peak min value, the maximum
// number of peaks, the similarity and the percent std. Trailing fields are ignored.
func ParseParameters(line string) (leak.Thresholds, error) {
	var th leak.Thresholds

	fields := strings.Fields(line)
	if len(fields) < parameterFields {
		return th, ErrParameterFormat
	}

	pfx, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return th, err
	}
	cfl, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return th, err
	}
	maxNb, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return th, err
	}
	similarity, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return th, err
	}
	percentStd, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return th, err
	}

	th.PrefixesPeakMinValue = uint32(pfx)
	th.ConflictsPeakMinValue = uint32(cfl)
	th.MaxNbPeaks = uint32(maxNb)
	th.Similarity = similarity
	th.PercentStd = percentStd
	return th, nil
}

// ReadParameters loads every threshold set of a parameters file.
// Blank lines and lines starting with # are skipped.
func ReadParameters(path string) ([]leak.Thresholds, error) {
	scanner, closer, err := OpenScanner(path)
	if err != nil {
		return nil, err
	}

	var params []leak.Thresholds
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		th, err := ParseParameters(line)
		if err != nil {
			closer()
			return nil, &LineError{Kind: "parameter", Line: lineNumber, Err: err}
		}
		params = append(params, th)
	}

	if err := scanner.Err(); err != nil {
		closer()
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := closer(); err != nil {
		return nil, fmt.Errorf("could not close %s: %w", path, err)
	}
	return params, nil
}
