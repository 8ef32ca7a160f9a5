package spellset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitEntries() []CorrectionEntry {
	entries := make([]CorrectionEntry, 0, 20)
	for i := 0; i < 10; i++ {
		entries = append(entries, CorrectionEntry{
			IncorrectWord: fmt.Sprintf("worda%d", i),
			CorrectWord:   fmt.Sprintf("word a %d", i),
			ErrorType:     "missing_space",
		})
	}
	for i := 0; i < 10; i++ {
		entries = append(entries, CorrectionEntry{
			IncorrectWord: fmt.Sprintf("wrodb%d", i),
			CorrectWord:   fmt.Sprintf("wordb%d", i),
			ErrorType:     "transposition",
		})
	}
	return entries
}

func TestSplitIsDeterministic(t *testing.T) {
	entries := splitEntries()
	opts := SplitOptions{TestSize: 0.2, Seed: 42}

	first, err := Split(entries, opts)
	require.NoError(t, err)
	second, err := Split(entries, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplitSeedChangesOutcome(t *testing.T) {
	entries := splitEntries()

	first, err := Split(entries, SplitOptions{TestSize: 0.5, Seed: 1})
	require.NoError(t, err)
	second, err := Split(entries, SplitOptions{TestSize: 0.5, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, first.Test, second.Test)
}

func TestSplitPartitionsEveryEntry(t *testing.T) {
	entries := splitEntries()

	result, err := Split(entries, SplitOptions{TestSize: 0.2, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, len(entries), len(result.Train)+len(result.Test))
	seen := make(map[string]int)
	for _, entry := range entries {
		seen[entry.IncorrectWord]++
	}
	for _, entry := range append(append([]CorrectionEntry(nil), result.Train...), result.Test...) {
		seen[entry.IncorrectWord]--
	}
	for word, count := range seen {
		assert.Zero(t, count, "entry %q not partitioned exactly once", word)
	}
}

func TestSplitStratifiesByErrorType(t *testing.T) {
	entries := splitEntries()

	result, err := Split(entries, SplitOptions{TestSize: 0.2, Seed: 42})
	require.NoError(t, err)

	require.Len(t, result.Test, 4)
	counts := make(map[string]int)
	for _, entry := range result.Test {
		counts[entry.ErrorType]++
	}
	assert.Equal(t, map[string]int{"missing_space": 2, "transposition": 2}, counts)
}

func TestSplitSmallStratumKeepsOneTestEntry(t *testing.T) {
	entries := []CorrectionEntry{
		{IncorrectWord: "teh", CorrectWord: "the", ErrorType: "transposition"},
		{IncorrectWord: "wich", CorrectWord: "which", ErrorType: "transposition"},
	}

	result, err := Split(entries, SplitOptions{TestSize: 0.2, Seed: 42})
	require.NoError(t, err)
	assert.Len(t, result.Test, 1)
	assert.Len(t, result.Train, 1)
}

func TestSplitRejectsEmptyDataset(t *testing.T) {
	_, err := Split(nil, SplitOptions{TestSize: 0.2, Seed: 42})
	assert.Error(t, err)
}

func TestSplitRejectsBadTestSize(t *testing.T) {
	entries := splitEntries()

	_, err := Split(entries, SplitOptions{TestSize: 0, Seed: 42})
	assert.Error(t, err)
	_, err = Split(entries, SplitOptions{TestSize: 1, Seed: 42})
	assert.Error(t, err)
}
