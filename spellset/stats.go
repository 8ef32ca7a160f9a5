package spellset

import (
	"sort"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the descriptive statistics for a dataset. topK bounds the
// most-frequently-misspelled list; values <= 0 fall back to the default of 10.
func Summarize(entries []CorrectionEntry, topK int) DatasetSummary {
	if topK <= 0 {
		topK = 10
	}
	summary := DatasetSummary{TotalRecords: len(entries)}

	errorTypes := make(map[string]int)
	freqCategories := make(map[string]int)
	misspellings := make(map[string]int)
	lengthDiffs := make(map[int]int)
	byLength := make(map[int]int)
	editDistances := make(map[int]int)
	lengths := make([]float64, 0, len(entries))

	for _, entry := range entries {
		if entry.ErrorType != "" {
			errorTypes[entry.ErrorType]++
		}
		if entry.FrequencyCategory != "" {
			freqCategories[entry.FrequencyCategory]++
		}
		misspellings[entry.IncorrectWord]++
		correctLen := utf8.RuneCountInString(entry.CorrectWord)
		incorrectLen := utf8.RuneCountInString(entry.IncorrectWord)
		lengthDiffs[correctLen-incorrectLen]++
		byLength[correctLen]++
		editDistances[edlib.OSADamerauLevenshteinDistance(entry.IncorrectWord, entry.CorrectWord)]++
		lengths = append(lengths, float64(correctLen))
	}

	summary.DistinctIncorrect = len(misspellings)
	summary.ErrorTypes = sortedLabelCounts(errorTypes, 0)
	summary.FrequencyCategories = sortedLabelCounts(freqCategories, 0)
	summary.TopMisspelled = sortedLabelCounts(misspellings, topK)
	summary.LengthDiffs = sortedValueCounts(lengthDiffs)
	summary.ByWordLength = sortedValueCounts(byLength)
	summary.EditDistances = sortedValueCounts(editDistances)
	if len(lengths) > 0 {
		summary.MeanWordLength = stat.Mean(lengths, nil)
	}
	if len(lengths) > 1 {
		summary.StdDevWordLength = stat.StdDev(lengths, nil)
	}
	return summary
}

// sortedLabelCounts orders counts descending, breaking ties by label so the
// output is stable. limit <= 0 keeps every label.
func sortedLabelCounts(counts map[string]int, limit int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Label < out[j].Label
		}
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// sortedValueCounts orders integer-valued distributions by value ascending.
func sortedValueCounts(counts map[int]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
