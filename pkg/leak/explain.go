package leak

import (
	"github.com/activecm/leakhunt/pkg/peaks"
)

//Explanation tells why a day of a document is or is not reported as a leak
type Explanation struct {
	Index     int
	Date      string // empty unless the document is dated
	Prefixes  peaks.Explanation
	Conflicts peaks.Explanation
}

//Leak is true when both series show a peak at the explained index, which is
//exactly when Process reports it
func (e Explanation) Leak() bool {
	return e.Prefixes.Cause == peaks.CauseDetected && e.Conflicts.Cause == peaks.CauseDetected
}

//Explain runs the peak checks of both series of doc against a single index
func Explain(doc Document, th Thresholds, index int) (Explanation, error) {
	prefixes, err := peaks.Explain(doc.Prefixes, index, th.PrefixesPeakMinValue,
		th.Similarity, th.MaxNbPeaks, th.PercentStd)
	if err != nil {
		return Explanation{}, err
	}

	conflicts, err := peaks.Explain(doc.Conflicts, index, th.ConflictsPeakMinValue,
		th.Similarity, th.MaxNbPeaks, th.PercentStd)
	if err != nil {
		return Explanation{}, err
	}

	e := Explanation{
		Index:     index,
		Prefixes:  prefixes,
		Conflicts: conflicts,
	}

	if doc.StartDate != "" {
		dates, err := IndexDates(doc.StartDate, []int{index})
		if err != nil {
			return Explanation{}, err
		}
		e.Date = dates[0]
	}
	return e, nil
}

//FindDocument returns the document holding the series of asn
func FindDocument(docs []Document, asn uint32) (Document, bool) {
	for _, doc := range docs {
		for _, other := range doc.ASes {
			if other == asn {
				return doc, true
			}
		}
	}
	return Document{}, false
}
