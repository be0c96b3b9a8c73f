// Package peaks finds the sharp, isolated spikes of an integer count sequence.
//
// A peak is a local maximum whose surrounding steps are large, whose value is
// close to the maximum of the sequence, which is not one of too many equally
// high spikes, and whose removal significantly lowers the standard deviation
// of the sequence. Every function in this package is pure and safe for
// concurrent use.
package peaks

//Find returns the positions of the significant peaks of values. The boolean
//is false when the sequence has no local maximum or when the filtered peaks
//fail the standard deviation check.
func Find(values []uint32, peakMinValue uint32, similarity float64,
	maxNbPeaks uint32, percentStd float64) ([]int, bool) {

	profile := Scan(values)
	if len(profile.LocalMaxima) == 0 {
		return nil, false
	}

	bigMaxes := BigMaxes(profile, values, peakMinValue, similarity, maxNbPeaks)

	if !IsOutlierSet(values, bigMaxes, percentStd) {
		return nil, false
	}
	return bigMaxes, true
}
