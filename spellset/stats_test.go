package spellset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsEntries() []CorrectionEntry {
	return []CorrectionEntry{
		{IncorrectWord: "teh", CorrectWord: "the", ErrorType: "transposition", FrequencyCategory: "high"},
		{IncorrectWord: "recieve", CorrectWord: "receive", ErrorType: "transposition", FrequencyCategory: "high"},
		{IncorrectWord: "teh", CorrectWord: "the", ErrorType: "transposition", FrequencyCategory: "high"},
		{IncorrectWord: "untill", CorrectWord: "until", ErrorType: "extra_letter", FrequencyCategory: "medium"},
	}
}

func TestSummarizeCounts(t *testing.T) {
	summary := Summarize(statsEntries(), 10)

	assert.Equal(t, 4, summary.TotalRecords)
	assert.Equal(t, 3, summary.DistinctIncorrect)
	assert.Equal(t, []LabelCount{
		{Label: "transposition", Count: 3},
		{Label: "extra_letter", Count: 1},
	}, summary.ErrorTypes)
	assert.Equal(t, []LabelCount{
		{Label: "high", Count: 3},
		{Label: "medium", Count: 1},
	}, summary.FrequencyCategories)
}

func TestSummarizeTopMisspelled(t *testing.T) {
	summary := Summarize(statsEntries(), 1)

	require.Len(t, summary.TopMisspelled, 1)
	assert.Equal(t, LabelCount{Label: "teh", Count: 2}, summary.TopMisspelled[0])
}

func TestSummarizeLengthDistributions(t *testing.T) {
	summary := Summarize(statsEntries(), 10)

	// "until" is one shorter than "untill"; the rest keep their length.
	assert.Equal(t, []ValueCount{
		{Value: -1, Count: 1},
		{Value: 0, Count: 3},
	}, summary.LengthDiffs)
	assert.Equal(t, []ValueCount{
		{Value: 3, Count: 2},
		{Value: 5, Count: 1},
		{Value: 7, Count: 1},
	}, summary.ByWordLength)
}

func TestSummarizeEditDistances(t *testing.T) {
	summary := Summarize(statsEntries(), 10)

	// Every pair in the fixture is a single edit apart.
	assert.Equal(t, []ValueCount{{Value: 1, Count: 4}}, summary.EditDistances)
}

func TestSummarizeWordLengthMoments(t *testing.T) {
	summary := Summarize(statsEntries(), 10)

	assert.InDelta(t, 4.5, summary.MeanWordLength, 1e-9)
	assert.Greater(t, summary.StdDevWordLength, 0.0)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	summary := Summarize(nil, 10)

	assert.Equal(t, 0, summary.TotalRecords)
	assert.Empty(t, summary.ErrorTypes)
	assert.Zero(t, summary.MeanWordLength)
	assert.Zero(t, summary.StdDevWordLength)
}
