package peaks

//closenessTolerance absorbs float rounding when comparing a peak with a
//fraction of the sequence maximum
const closenessTolerance = 0.0001

//BigMaxes reduces the local maxima of a profile to the significant peaks.
//A peak is kept when both of its surrounding steps exceed peakMinValue, its
//value is close to similarity * profile.Max, and no more than maxNbPeaks such
//peaks (itself included) are at least as high as it is.
func BigMaxes(profile Profile, values []uint32, peakMinValue uint32,
	similarity float64, maxNbPeaks uint32) []int {

	candidates := bigCandidates(profile, values, peakMinValue, similarity)

	bigMaxes := make([]int, 0, len(candidates))
	for _, index := range candidates {
		if hasFewEnoughPeaks(candidates, values, index, maxNbPeaks) {
			bigMaxes = append(bigMaxes, index)
		}
	}
	return bigMaxes
}

//bigCandidates keeps the local maxima passing the magnitude and closeness checks
func bigCandidates(profile Profile, values []uint32, peakMinValue uint32, similarity float64) []int {
	var candidates []int
	for _, index := range profile.LocalMaxima {
		up := profile.Variations[index-1]
		down := profile.Variations[index]

		if isBigEnough(peakMinValue, up, down) &&
			isCloseToAbsMax(float64(values[index]), similarity, profile.Max) {
			candidates = append(candidates, index)
		}
	}
	return candidates
}

//isBigEnough checks that the steps into and out of a peak both exceed minValue
func isBigEnough(minValue, up, down uint32) bool {
	return up > minValue && down > minValue
}

//isCloseToAbsMax checks that value reaches similarity * absMax
func isCloseToAbsMax(value float64, similarity float64, absMax uint32) bool {
	return similarity*float64(absMax)-value <= closenessTolerance
}

//hasFewEnoughPeaks counts the candidates at least as high as the one at index.
//The candidate counts against itself, so maxNbPeaks = 1 allows a single peak.
func hasFewEnoughPeaks(candidates []int, values []uint32, index int, maxNbPeaks uint32) bool {
	var similar uint32
	for _, other := range candidates {
		if values[other] >= values[index] {
			similar++
		}
		if similar > maxNbPeaks {
			return false
		}
	}
	return true
}
