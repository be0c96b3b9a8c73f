package leak

import (
	"testing"

	"github.com/activecm/leakhunt/pkg/peaks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	e, err := Explain(singleSpike, DefaultThresholds, 4)
	require.Nil(t, err)
	assert.True(t, e.Leak())
	assert.Equal(t, peaks.CauseDetected, e.Prefixes.Cause)
	assert.Equal(t, peaks.CauseDetected, e.Conflicts.Cause)
	assert.Empty(t, e.Date)

	e, err = Explain(singleSpike, DefaultThresholds, 3)
	require.Nil(t, err)
	assert.False(t, e.Leak())
	assert.Equal(t, peaks.CauseNotLocalMax, e.Prefixes.Cause)
}

func TestExplainAgreesWithProcess(t *testing.T) {
	strict := DefaultThresholds
	strict.ConflictsPeakMinValue = 38

	for _, doc := range []Document{singleSpike, shiftedSpike, twoSpikes} {
		for _, th := range []Thresholds{DefaultThresholds, strict} {
			leaks, _ := Process(doc, th)
			reported := make(map[int]bool)
			for _, index := range leaks {
				reported[index] = true
			}

			length := len(doc.Prefixes)
			if len(doc.Conflicts) < length {
				length = len(doc.Conflicts)
			}
			for index := 0; index < length; index++ {
				e, err := Explain(doc, th, index)
				require.Nil(t, err)
				assert.Equal(t, reported[index], e.Leak(), "ases %v index %d", doc.ASes, index)
			}
		}
	}
}

func TestExplainDated(t *testing.T) {
	doc := singleSpike
	doc.StartDate = "2015-01-01"

	e, err := Explain(doc, DefaultThresholds, 4)
	require.Nil(t, err)
	assert.Equal(t, "2015-01-05", e.Date)

	_, err = Explain(doc, DefaultThresholds, len(doc.Prefixes))
	assert.Equal(t, peaks.ErrIndexOutOfRange, err)
}

func TestFindDocument(t *testing.T) {
	docs := []Document{singleSpike, shiftedSpike, twoSpikes}

	doc, ok := FindDocument(docs, 64511)
	require.True(t, ok)
	assert.Equal(t, singleSpike.ASes, doc.ASes)

	_, ok = FindDocument(docs, 1)
	assert.False(t, ok)
}

func TestIndexDates(t *testing.T) {
	dates, err := IndexDates("2015-01-01", []int{2, 4, 59})
	require.Nil(t, err)
	assert.Equal(t, []string{"2015-01-03", "2015-01-05", "2015-03-01"}, dates)

	dates, err = IndexDates("2016-02-28", []int{1, 2})
	require.Nil(t, err)
	assert.Equal(t, []string{"2016-02-29", "2016-03-01"}, dates)

	_, err = IndexDates("01/01/2015", []int{1})
	assert.NotNil(t, err)
}

func TestDateIndex(t *testing.T) {
	index, err := DateIndex("2015-01-01", "2015-01-05")
	require.Nil(t, err)
	assert.Equal(t, 4, index)

	index, err = DateIndex("2015-01-01", "2015-12-31")
	require.Nil(t, err)
	assert.Equal(t, 364, index)

	_, err = DateIndex("2015-01-01", "2014-12-31")
	assert.NotNil(t, err)
	_, err = DateIndex("2015-01-01", "5")
	assert.NotNil(t, err)
}

func TestRunReportsDates(t *testing.T) {
	dated := singleSpike
	dated.StartDate = "2015-01-01"

	sink := &collectingSink{}
	err := Run([]Document{dated, twoSpikes}, []Thresholds{DefaultThresholds}, Options{Threads: 1}, sink)
	require.Nil(t, err)
	require.Len(t, sink.results, 2)
	sortResults(sink.results)

	assert.Equal(t, []string{"2015-01-05"}, sink.results[0].Dates)
	assert.Nil(t, sink.results[1].Dates)
}
