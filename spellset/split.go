package spellset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Split partitions entries into train and test sets, stratified by error type
// so each type keeps roughly the same train/test proportion. The shuffle is
// seeded, so the same options over the same entries always produce the same
// split.
func Split(entries []CorrectionEntry, opts SplitOptions) (SplitResult, error) {
	if len(entries) == 0 {
		return SplitResult{}, errors.New("cannot split an empty dataset")
	}
	if opts.TestSize <= 0 || opts.TestSize >= 1 {
		return SplitResult{}, fmt.Errorf("test size must be between 0 and 1, got %g", opts.TestSize)
	}

	strata := make(map[string][]int)
	for i, entry := range entries {
		strata[entry.ErrorType] = append(strata[entry.ErrorType], i)
	}
	// Map iteration order is random; walk strata in sorted key order so the
	// seed fully determines the outcome.
	keys := make([]string, 0, len(strata))
	for key := range strata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rng := rand.New(rand.NewSource(opts.Seed))
	result := SplitResult{
		Train: make([]CorrectionEntry, 0, len(entries)),
		Test:  make([]CorrectionEntry, 0, len(entries)),
	}
	for _, key := range keys {
		indices := strata[key]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		testCount := int(math.Round(float64(len(indices)) * opts.TestSize))
		if testCount == 0 && len(indices) > 1 {
			testCount = 1
		}
		for i, idx := range indices {
			if i < testCount {
				result.Test = append(result.Test, entries[idx])
			} else {
				result.Train = append(result.Train, entries[idx])
			}
		}
	}
	return result, nil
}
