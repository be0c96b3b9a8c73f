// Package leak flags route leaks: indexes where both the prefixes and the
// conflicts series of a document show a significant peak.
package leak

import (
	"sort"

	"github.com/activecm/leakhunt/pkg/peaks"
)

//Process runs peak detection on both series of doc and returns the indexes
//they have in common. The boolean is false when no leak is found.
func Process(doc Document, th Thresholds) ([]int, bool) {
	prefixesMaxes, ok := peaks.Find(doc.Prefixes, th.PrefixesPeakMinValue,
		th.Similarity, th.MaxNbPeaks, th.PercentStd)
	if !ok {
		return nil, false
	}

	conflictsMaxes, ok := peaks.Find(doc.Conflicts, th.ConflictsPeakMinValue,
		th.Similarity, th.MaxNbPeaks, th.PercentStd)
	if !ok {
		return nil, false
	}

	return Match(prefixesMaxes, conflictsMaxes)
}

//Detect is Process for callers that want a plain slice, empty when there is
//no leak
func Detect(doc Document, th Thresholds) []int {
	leaks, ok := Process(doc, th)
	if !ok {
		return []int{}
	}
	return leaks
}

//Match returns the sorted indexes present in both peak sets. The inputs are
//left untouched.
func Match(prefixes []int, conflicts []int) ([]int, bool) {
	if len(prefixes) == 0 || len(conflicts) == 0 {
		return nil, false
	}

	p := sortedCopy(prefixes)
	c := sortedCopy(conflicts)

	var leaks []int
	i, j := 0, 0
	for i < len(p) && j < len(c) {
		switch {
		case p[i] < c[j]:
			i++
		case p[i] > c[j]:
			j++
		default:
			leaks = append(leaks, p[i])
			i++
			j++
		}
	}

	if len(leaks) == 0 {
		return nil, false
	}
	return leaks, true
}

func sortedCopy(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	return out
}
