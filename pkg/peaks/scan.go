package peaks

type (
	//Profile holds the values derived from a single pass over a count sequence
	Profile struct {
		LocalMaxima []int    // indexes strictly greater than both neighbors
		Variations  []uint32 // absolute step between values[j] and values[j+1]
		Max         uint32   // maximum of values[1:]
	}
)

//Scan walks a count sequence once and returns its local maxima, the absolute
//variations between consecutive samples, and the sequence maximum.
//
//The last sample is never a local maximum since nothing confirms its descent.
//The maximum ignores values[0].
func Scan(values []uint32) Profile {
	var profile Profile
	if len(values) < 2 {
		return profile
	}

	last := len(values) - 1
	profile.Variations = make([]uint32, 0, last)

	previous := values[0]
	for i := 1; i <= last; i++ {
		current := values[i]

		if i < last && previous < current && current > values[i+1] {
			profile.LocalMaxima = append(profile.LocalMaxima, i)
		}

		profile.Variations = append(profile.Variations, absDiff(previous, current))

		if current > profile.Max {
			profile.Max = current
		}

		previous = current
	}

	return profile
}

func absDiff(a, b uint32) uint32 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}
