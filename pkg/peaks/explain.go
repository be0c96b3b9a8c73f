package peaks

import (
	"errors"
	"sort"
)

//Cause names the first check a sample fails on its way to being a peak
type Cause string

const (
	//CauseNotLocalMax the sample is not strictly above both of its neighbors
	CauseNotLocalMax Cause = "not a local max"
	//CausePeakMinValue a step into or out of the sample is too small
	CausePeakMinValue Cause = "peak_min_value"
	//CauseSimilarity the sample is too far below the sequence maximum
	CauseSimilarity Cause = "similarity"
	//CauseMaxNbPeaks too many candidates are at least as high as the sample
	CauseMaxNbPeaks Cause = "max_nb_peaks"
	//CausePercentStd removing the peaks does not lower the standard deviation enough
	CausePercentStd Cause = "percent_std"
	//CauseDetected the sample is a peak
	CauseDetected Cause = "peak detected"
)

//ErrIndexOutOfRange is returned when explaining a sample a sequence does not have
var ErrIndexOutOfRange = errors.New("index out of range")

//Explanation details how a single sample went through peak detection.
//Fields past the failing check are left empty.
type Explanation struct {
	Index        int
	Cause        Cause
	Previous     uint32  // sample before Index, 0 for the first sample
	Value        uint32  // sample at Index
	Next         uint32  // sample after Index, 0 for the last sample
	Up           uint32  // step from Previous to Value
	Down         uint32  // step from Value to Next
	Max          uint32  // sequence maximum, as computed by Scan
	Threshold    float64 // similarity * Max
	SimilarPeaks []int   // candidates at least as high as the sample, itself included
	BigMaxes     []int   // peaks removed for the standard deviation check
	Std          float64 // population std-dev of the sequence
	SmoothStd    float64 // population std-dev without BigMaxes
}

//Explain runs the checks of Find against the sample at index and reports the
//first one it fails. A sample is explained as CauseDetected exactly when Find
//succeeds and returns index.
func Explain(values []uint32, index int, peakMinValue uint32, similarity float64,
	maxNbPeaks uint32, percentStd float64) (Explanation, error) {

	if index < 0 || index >= len(values) {
		return Explanation{}, ErrIndexOutOfRange
	}

	profile := Scan(values)
	e := Explanation{
		Index:     index,
		Value:     values[index],
		Max:       profile.Max,
		Threshold: similarity * float64(profile.Max),
	}
	if index > 0 {
		e.Previous = values[index-1]
		e.Up = absDiff(e.Previous, e.Value)
	}
	if index < len(values)-1 {
		e.Next = values[index+1]
		e.Down = absDiff(e.Value, e.Next)
	}

	if !isLocalMax(profile, index) {
		e.Cause = CauseNotLocalMax
		return e, nil
	}

	if !isBigEnough(peakMinValue, e.Up, e.Down) {
		e.Cause = CausePeakMinValue
		return e, nil
	}

	if !isCloseToAbsMax(float64(e.Value), similarity, profile.Max) {
		e.Cause = CauseSimilarity
		return e, nil
	}

	candidates := bigCandidates(profile, values, peakMinValue, similarity)
	for _, other := range candidates {
		if values[other] >= e.Value {
			e.SimilarPeaks = append(e.SimilarPeaks, other)
		}
	}
	if !hasFewEnoughPeaks(candidates, values, index, maxNbPeaks) {
		e.Cause = CauseMaxNbPeaks
		return e, nil
	}

	e.BigMaxes = BigMaxes(profile, values, peakMinValue, similarity, maxNbPeaks)
	std, smoothStd, err := standardDeviations(values, e.BigMaxes)
	e.Std, e.SmoothStd = std, smoothStd
	if err != nil || !(smoothStd < std*percentStd) {
		e.Cause = CausePercentStd
		return e, nil
	}

	e.Cause = CauseDetected
	return e, nil
}

func isLocalMax(profile Profile, index int) bool {
	pos := sort.SearchInts(profile.LocalMaxima, index)
	return pos < len(profile.LocalMaxima) && profile.LocalMaxima[pos] == index
}
