package peaks

import (
	"github.com/montanaflynn/stats"
)

//IsOutlierSet reports whether removing the samples at positions brings the
//population standard deviation of values under percentStd times its original
//value. An empty sequence, or one made only of peaks, is never accepted.
func IsOutlierSet(values []uint32, positions []int, percentStd float64) bool {
	std, smoothStd, err := standardDeviations(values, positions)
	if err != nil {
		return false
	}
	return smoothStd < std*percentStd
}

//standardDeviations returns the population standard deviation of values,
//then the one of values without the samples at positions
func standardDeviations(values []uint32, positions []int) (float64, float64, error) {
	excluded := make(map[int]struct{}, len(positions))
	for _, pos := range positions {
		excluded[pos] = struct{}{}
	}

	full := make(stats.Float64Data, 0, len(values))
	smooth := make(stats.Float64Data, 0, len(values))
	for i, value := range values {
		full = append(full, float64(value))
		if _, ok := excluded[i]; !ok {
			smooth = append(smooth, float64(value))
		}
	}

	std, err := stats.StandardDeviationPopulation(full)
	if err != nil {
		return 0, 0, err
	}

	smoothStd, err := stats.StandardDeviationPopulation(smooth)
	if err != nil {
		return std, 0, err
	}

	return std, smoothStd, nil
}
