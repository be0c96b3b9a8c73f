package leak

import (
	"strconv"
	"strings"
)

// Repository for leak collection
type Repository interface {
	CreateIndexes() error
	Insert(results []*Result) error
}

//Document holds the prefixes and conflicts series shared by a group of ASes.
//StartDate, when set, is the day of the first sample, one sample per day.
type Document struct {
	ASes      []uint32 `json:"ases" bson:"ases"`
	Prefixes  []uint32 `json:"prefixes" bson:"prefixes"`
	Conflicts []uint32 `json:"conflicts" bson:"conflicts"`
	StartDate string   `json:"start_date,omitempty" bson:"start_date,omitempty"`
}

//Thresholds tunes the peak detection for one analysis run
type Thresholds struct {
	PrefixesPeakMinValue  uint32  `bson:"prefixes_peak_min_value"`
	ConflictsPeakMinValue uint32  `bson:"conflicts_peak_min_value"`
	Similarity            float64 `bson:"similarity"`
	MaxNbPeaks            uint32  `bson:"max_nb_peaks"`
	PercentStd            float64 `bson:"percent_std"`
}

//Result is a leak report for a document under a given set of thresholds
type Result struct {
	RunID      string     `bson:"run_id"`
	Thresholds Thresholds `bson:"thresholds"`
	ASes       []uint32   `bson:"ases"`
	Leaks      []int      `bson:"leaks"`
	Dates      []string   `bson:"dates,omitempty"` // days of Leaks when the document is dated
}

//DefaultThresholds are used when no parameter sets are supplied
var DefaultThresholds = Thresholds{
	PrefixesPeakMinValue:  10,
	ConflictsPeakMinValue: 5,
	Similarity:            0.9,
	MaxNbPeaks:            2,
	PercentStd:            0.9,
}

//String renders the thresholds in the order they are printed in flat output
func (t Thresholds) String() string {
	return strings.Join([]string{
		strconv.FormatUint(uint64(t.PrefixesPeakMinValue), 10),
		strconv.FormatUint(uint64(t.ConflictsPeakMinValue), 10),
		strconv.FormatFloat(t.Similarity, 'g', -1, 64),
		strconv.FormatUint(uint64(t.MaxNbPeaks), 10),
		strconv.FormatFloat(t.PercentStd, 'g', -1, 64),
	}, " ")
}
