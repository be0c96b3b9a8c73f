package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/activecm/leakhunt/util"
)

//seriesHeaderMarker flags the header line of a per-AS series file
const seriesHeaderMarker = "start_date"

//Series holds the per-AS counts of a series file
type Series struct {
	StartDate string              // day of the first sample, empty when the file has no header
	Counts    map[uint32][]uint32 // counts by AS number
}

//seriesHeader is the {"start_date": "YYYY-MM-DD"} line of a series file
type seriesHeader struct {
	StartDate string `json:"start_date"`
}

// ReadSeries loads a per-AS series file made of lines like {"<asn>": [counts...]},
// possibly preceded by a {"start_date": "YYYY-MM-DD"} header
func ReadSeries(path string) (Series, error) {
	series := Series{Counts: make(map[uint32][]uint32)}

	scanner, closer, err := OpenScanner(path)
	if err != nil {
		return series, err
	}

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.Contains(line, seriesHeaderMarker) {
			var header seriesHeader
			if err := json.UnmarshalFromString(line, &header); err != nil {
				closer()
				return series, &LineError{Kind: "data", Line: lineNumber, Err: err}
			}
			if _, err := time.Parse(leak.DateFormat, header.StartDate); err != nil {
				closer()
				return series, &LineError{Kind: "data", Line: lineNumber, Err: err}
			}
			series.StartDate = header.StartDate
			continue
		}

		var entry map[string][]uint32
		if err := json.UnmarshalFromString(line, &entry); err != nil {
			closer()
			return series, &LineError{Kind: "data", Line: lineNumber, Err: err}
		}

		for key, values := range entry {
			asn, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				closer()
				return series, &LineError{Kind: "data", Line: lineNumber, Err: err}
			}
			series.Counts[uint32(asn)] = values
		}
	}

	if err := scanner.Err(); err != nil {
		closer()
		return series, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := closer(); err != nil {
		return series, fmt.Errorf("could not close %s: %w", path, err)
	}
	return series, nil
}

// Aggregate merges a prefixes and a conflicts series file into documents.
// ASes sharing the same pair of series end up in the same document. Dated
// files must start on the same day, which every document then carries.
func Aggregate(prefixesPath, conflictsPath string) ([]leak.Document, error) {
	prefixes, err := ReadSeries(prefixesPath)
	if err != nil {
		return nil, err
	}
	conflicts, err := ReadSeries(conflictsPath)
	if err != nil {
		return nil, err
	}

	startDate := prefixes.StartDate
	if startDate == "" {
		startDate = conflicts.StartDate
	} else if conflicts.StartDate != "" && conflicts.StartDate != startDate {
		return nil, fmt.Errorf("%s starts on %s but %s starts on %s",
			prefixesPath, prefixes.StartDate, conflictsPath, conflicts.StartDate)
	}

	docs := GroupSeries(prefixes.Counts, conflicts.Counts)
	for i := range docs {
		docs[i].StartDate = startDate
	}
	return docs, nil
}

// GroupSeries builds documents from per-AS series. A series missing for an AS
// is filled with zeros. Documents are ordered by their smallest AS number.
func GroupSeries(prefixes, conflicts map[uint32][]uint32) []leak.Document {
	ases := make([]uint32, 0, len(prefixes)+len(conflicts))
	for asn := range prefixes {
		ases = append(ases, asn)
	}
	for asn := range conflicts {
		if _, ok := prefixes[asn]; !ok {
			ases = append(ases, asn)
		}
	}
	sort.Slice(ases, func(i, j int) bool { return ases[i] < ases[j] })

	var docs []leak.Document
	groups := make(map[string]int)
	for _, asn := range ases {
		pfx, okPfx := prefixes[asn]
		cfl, okCfl := conflicts[asn]
		if !okPfx {
			pfx = make([]uint32, len(cfl))
		}
		if !okCfl {
			cfl = make([]uint32, len(pfx))
		}

		key := util.JoinUint32(pfx, ",") + "|" + util.JoinUint32(cfl, ",")
		if idx, ok := groups[key]; ok {
			docs[idx].ASes = append(docs[idx].ASes, asn)
			continue
		}

		groups[key] = len(docs)
		docs = append(docs, leak.Document{
			ASes:      []uint32{asn},
			Prefixes:  pfx,
			Conflicts: cfl,
		})
	}
	return docs
}
