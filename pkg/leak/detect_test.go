package leak

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var singleSpike = Document{
	ASes:      []uint32{64496, 64511},
	Prefixes:  []uint32{10, 10, 10, 10, 100, 10, 10, 10, 10, 10},
	Conflicts: []uint32{2, 2, 2, 2, 40, 2, 2, 2, 2, 2},
}

var shiftedSpike = Document{
	ASes:      []uint32{65551},
	Prefixes:  []uint32{10, 10, 10, 10, 100, 10, 10, 10, 10, 10},
	Conflicts: []uint32{2, 2, 2, 2, 2, 2, 40, 2, 2, 2},
}

var twoSpikes = Document{
	ASes:      []uint32{64500},
	Prefixes:  []uint32{0, 50, 0, 0, 50, 0, 0},
	Conflicts: []uint32{0, 20, 0, 0, 0, 0, 20, 0},
}

func TestMatch(t *testing.T) {
	leaks, ok := Match([]int{4}, []int{4})
	assert.True(t, ok)
	assert.Equal(t, []int{4}, leaks)

	leaks, ok = Match([]int{1, 4, 8}, []int{2, 4, 8, 9})
	assert.True(t, ok)
	assert.Equal(t, []int{4, 8}, leaks)

	leaks, ok = Match([]int{1, 3}, []int{2, 4})
	assert.False(t, ok)
	assert.Nil(t, leaks)
}

func TestMatchEmptyInput(t *testing.T) {
	leaks, ok := Match([]int{5}, []int{})
	assert.False(t, ok)
	assert.Nil(t, leaks)

	leaks, ok = Match(nil, []int{5})
	assert.False(t, ok)
	assert.Nil(t, leaks)

	leaks, ok = Match(nil, nil)
	assert.False(t, ok)
	assert.Nil(t, leaks)
}

func TestMatchOrderIndependent(t *testing.T) {
	expected, ok := Match([]int{1, 3, 5, 9}, []int{1, 5, 9, 11})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 5, 9}, expected)

	prefixes := [][]int{{9, 5, 3, 1}, {3, 9, 1, 5}, {5, 1, 9, 3}}
	conflicts := [][]int{{11, 9, 5, 1}, {5, 11, 1, 9}, {1, 9, 11, 5}}
	for _, p := range prefixes {
		for _, c := range conflicts {
			leaks, ok := Match(p, c)
			assert.True(t, ok)
			assert.Equal(t, expected, leaks)
		}
	}
}

func TestMatchLeavesInputUntouched(t *testing.T) {
	prefixes := []int{9, 3, 5}
	conflicts := []int{5, 1, 9}

	leaks, ok := Match(prefixes, conflicts)
	assert.True(t, ok)
	assert.Equal(t, []int{5, 9}, leaks)
	assert.Equal(t, []int{9, 3, 5}, prefixes)
	assert.Equal(t, []int{5, 1, 9}, conflicts)
}

func TestProcess(t *testing.T) {
	leaks, ok := Process(singleSpike, DefaultThresholds)
	assert.True(t, ok)
	assert.Equal(t, []int{4}, leaks)

	leaks, ok = Process(shiftedSpike, DefaultThresholds)
	assert.False(t, ok)
	assert.Nil(t, leaks)

	leaks, ok = Process(twoSpikes, DefaultThresholds)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, leaks)
}

func TestProcessUsesSeriesSpecificMinValue(t *testing.T) {
	// the conflicts spike moves by 38, the prefixes spike by 90
	th := DefaultThresholds
	th.ConflictsPeakMinValue = 38
	_, ok := Process(singleSpike, th)
	assert.False(t, ok)

	th.ConflictsPeakMinValue = 37
	th.PrefixesPeakMinValue = 89
	leaks, ok := Process(singleSpike, th)
	assert.True(t, ok)
	assert.Equal(t, []int{4}, leaks)

	th.PrefixesPeakMinValue = 90
	_, ok = Process(singleSpike, th)
	assert.False(t, ok)
}

func TestProcessDegenerateDocuments(t *testing.T) {
	docs := []Document{
		{},
		{ASes: []uint32{1}, Prefixes: []uint32{5}, Conflicts: []uint32{5}},
		{ASes: []uint32{1}, Prefixes: []uint32{1, 9}, Conflicts: []uint32{1, 9}},
		{ASes: []uint32{1}, Prefixes: []uint32{1, 2, 3, 4}, Conflicts: []uint32{0, 9, 0, 0}},
		{ASes: []uint32{1}, Prefixes: []uint32{3, 3, 3, 3}, Conflicts: []uint32{3, 3, 3, 3}},
	}
	for _, doc := range docs {
		assert.NotPanics(t, func() {
			leaks, ok := Process(doc, DefaultThresholds)
			assert.False(t, ok)
			assert.Nil(t, leaks)
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, []int{4}, Detect(singleSpike, DefaultThresholds))

	leaks := Detect(shiftedSpike, DefaultThresholds)
	assert.NotNil(t, leaks)
	assert.Empty(t, leaks)
}

func TestProcessDeterministic(t *testing.T) {
	expected, _ := Process(twoSpikes, DefaultThresholds)

	var wg sync.WaitGroup
	results := make([][]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Process(twoSpikes, DefaultThresholds)
		}(i)
	}
	wg.Wait()

	for _, leaks := range results {
		assert.Equal(t, expected, leaks)
	}
	assert.Equal(t, []uint32{0, 50, 0, 0, 50, 0, 0}, twoSpikes.Prefixes)
}

func TestThresholdsString(t *testing.T) {
	assert.Equal(t, "10 5 0.9 2 0.9", DefaultThresholds.String())

	th := Thresholds{
		PrefixesPeakMinValue:  3,
		ConflictsPeakMinValue: 1,
		Similarity:            1,
		MaxNbPeaks:            4,
		PercentStd:            0.25,
	}
	assert.Equal(t, "3 1 1 4 0.25", th.String())
}
