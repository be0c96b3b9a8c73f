package printing

import (
	"bytes"
	"testing"

	"github.com/activecm/leakhunt/pkg/leak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResult = &leak.Result{
	RunID:      "test",
	Thresholds: leak.DefaultThresholds,
	ASes:       []uint32{64496, 64511},
	Leaks:      []int{4, 12},
}

var datedResult = &leak.Result{
	RunID:      "test",
	Thresholds: leak.DefaultThresholds,
	ASes:       []uint32{64496},
	Leaks:      []int{2, 4},
	Dates:      []string{"2015-01-03", "2015-01-05"},
}

func TestWriteFlat(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteFlat(&buf, testResult, false))
	assert.Equal(t, "10 5 0.9 2 0.9 64496,64511 4,12\n", buf.String())
}

func TestWriteFlatDates(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteFlat(&buf, datedResult, true))
	assert.Equal(t, "10 5 0.9 2 0.9 64496 2015-01-03,2015-01-05\n", buf.String())

	buf.Reset()
	require.Nil(t, WriteFlat(&buf, datedResult, false))
	assert.Equal(t, "10 5 0.9 2 0.9 64496 2,4\n", buf.String())
}

func TestWritePairs(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WritePairs(&buf, testResult, false))
	assert.Equal(t, "64496 4\n64496 12\n64511 4\n64511 12\n", buf.String())
}

func TestWritePairsDates(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WritePairs(&buf, datedResult, true))
	assert.Equal(t, "64496 2015-01-03\n64496 2015-01-05\n", buf.String())
}

func TestLeaksUndatedFallsBackToIndexes(t *testing.T) {
	assert.Equal(t, []string{"4", "12"}, Leaks(testResult, true))
	assert.Equal(t, []string{"2015-01-03", "2015-01-05"}, Leaks(datedResult, true))
}

func TestPrinterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	require.Nil(t, printer.Write(testResult))
	assert.Empty(t, buf.String())

	require.Nil(t, printer.Flush())
	assert.Equal(t, "10 5 0.9 2 0.9 64496,64511 4,12\n", buf.String())
}

func TestPrinterWithRun(t *testing.T) {
	docs := []leak.Document{
		{
			ASes:      []uint32{64496},
			Prefixes:  []uint32{10, 10, 10, 10, 100, 10, 10, 10, 10, 10},
			Conflicts: []uint32{2, 2, 2, 2, 40, 2, 2, 2, 2, 2},
		},
		{
			ASes:      []uint32{64497},
			Prefixes:  []uint32{1, 2, 3, 4, 5},
			Conflicts: []uint32{0, 0, 0, 0, 0},
		},
	}

	var buf bytes.Buffer
	err := leak.Run(docs, []leak.Thresholds{leak.DefaultThresholds},
		leak.Options{Threads: 2}, NewPrinter(&buf, false, false))
	require.Nil(t, err)
	assert.Equal(t, "64496 4\n", buf.String())
}

func TestPrinterWithDatedRun(t *testing.T) {
	docs := []leak.Document{
		{
			ASes:      []uint32{64496},
			Prefixes:  []uint32{10, 10, 10, 10, 100, 10, 10, 10, 10, 10},
			Conflicts: []uint32{2, 2, 2, 2, 40, 2, 2, 2, 2, 2},
			StartDate: "2015-01-01",
		},
	}

	var buf bytes.Buffer
	err := leak.Run(docs, []leak.Thresholds{leak.DefaultThresholds},
		leak.Options{Threads: 1}, NewPrinter(&buf, false, true))
	require.Nil(t, err)
	assert.Equal(t, "64496 2015-01-05\n", buf.String())
}
