package spellset

import "sync"

// ColumnCandidates defines possible header names for auto-detecting dataset columns.
type ColumnCandidates struct {
	Incorrect         []string `json:"incorrect"`
	Correct           []string `json:"correct"`
	ErrorType         []string `json:"errorType"`
	FrequencyCategory []string `json:"frequencyCategory"`
}

var (
	columnCandidatesMu  sync.RWMutex
	activeColumnOptions = defaultColumnCandidates()
)

func defaultColumnCandidates() ColumnCandidates {
	return ColumnCandidates{
		Incorrect:         []string{"incorrect_word", "incorrect", "misspelling", "misspelled", "wrong_word", "source"},
		Correct:           []string{"correct_word", "correct", "correction", "target_word", "target"},
		ErrorType:         []string{"error_type", "error", "type"},
		FrequencyCategory: []string{"frequency_category", "frequency", "freq_category"},
	}
}

// DefaultColumnCandidates returns the built-in column detection candidates.
func DefaultColumnCandidates() ColumnCandidates {
	return defaultColumnCandidates().clone()
}

// SetColumnCandidates updates the column detection candidates used during
// auto-detection. Fields left nil fall back to the built-in defaults, allowing
// callers to override only the parts they need.
func SetColumnCandidates(candidates ColumnCandidates) {
	columnCandidatesMu.Lock()
	defer columnCandidatesMu.Unlock()
	activeColumnOptions = candidates.withDefaults()
}

func getColumnCandidates() ColumnCandidates {
	columnCandidatesMu.RLock()
	defer columnCandidatesMu.RUnlock()
	return activeColumnOptions.clone()
}

func (c ColumnCandidates) withDefaults() ColumnCandidates {
	defaults := defaultColumnCandidates()
	return ColumnCandidates{
		Incorrect:         pickStrings(c.Incorrect, defaults.Incorrect),
		Correct:           pickStrings(c.Correct, defaults.Correct),
		ErrorType:         pickStrings(c.ErrorType, defaults.ErrorType),
		FrequencyCategory: pickStrings(c.FrequencyCategory, defaults.FrequencyCategory),
	}
}

func (c ColumnCandidates) clone() ColumnCandidates {
	return ColumnCandidates{
		Incorrect:         append([]string(nil), c.Incorrect...),
		Correct:           append([]string(nil), c.Correct...),
		ErrorType:         append([]string(nil), c.ErrorType...),
		FrequencyCategory: append([]string(nil), c.FrequencyCategory...),
	}
}

func pickStrings(values, fallback []string) []string {
	if len(values) == 0 {
		return append([]string(nil), fallback...)
	}
	return append([]string(nil), values...)
}
