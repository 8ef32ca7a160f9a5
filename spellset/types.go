package spellset

import "encoding/json"

// CorrectionEntry represents one row of the spelling-corrections dataset: a
// misspelling paired with its correction plus descriptive metadata.
type CorrectionEntry struct {
	IncorrectWord     string `json:"incorrect_word" validate:"required"`
	CorrectWord       string `json:"correct_word" validate:"required"`
	ErrorType         string `json:"error_type,omitempty"`
	FrequencyCategory string `json:"frequency_category,omitempty"`
}

// CorrectionTable maps a lowercase misspelling to its replacement. It is built
// once by BuildTable and never mutated afterwards, so independent callers may
// share a table and correct text concurrently without coordination.
type CorrectionTable map[string]string

// LabelCount pairs a label with how often it occurs in the dataset.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueCount pairs an integer-valued observation (a word length, an edit
// distance) with how often it occurs.
type ValueCount struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// DatasetSummary aggregates the descriptive statistics reported for a dataset.
type DatasetSummary struct {
	TotalRecords        int          `json:"totalRecords"`
	DistinctIncorrect   int          `json:"distinctIncorrect"`
	ErrorTypes          []LabelCount `json:"errorTypes"`
	FrequencyCategories []LabelCount `json:"frequencyCategories"`
	TopMisspelled       []LabelCount `json:"topMisspelled"`
	LengthDiffs         []ValueCount `json:"lengthDiffs"`
	ByWordLength        []ValueCount `json:"byWordLength"`
	EditDistances       []ValueCount `json:"editDistances"`
	MeanWordLength      float64      `json:"meanWordLength"`
	StdDevWordLength    float64      `json:"stdDevWordLength"`
}

// ColumnOverrides lets callers pin dataset columns by header name or #index
// instead of relying on auto-detection.
type ColumnOverrides struct {
	Incorrect         string `json:"incorrect,omitempty"`
	Correct           string `json:"correct,omitempty"`
	ErrorType         string `json:"errorType,omitempty"`
	FrequencyCategory string `json:"frequencyCategory,omitempty"`
}

// SplitOptions controls the stratified train/test split.
type SplitOptions struct {
	TestSize float64 `json:"testSize"`
	Seed     int64   `json:"seed"`
}

// SplitResult holds the two halves of a train/test split.
type SplitResult struct {
	Train []CorrectionEntry `json:"train"`
	Test  []CorrectionEntry `json:"test"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	TopK       int               `json:"topK" validate:"gte=0"`
	Split      SplitOptions      `json:"split"`
	ExportDir  string            `json:"exportDir"`
	ChartDir   string            `json:"chartDir"`
	Columns    ColumnOverrides   `json:"columns"`
	Candidates *ColumnCandidates `json:"columnCandidates,omitempty"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 10
	}
	if c.Split.TestSize <= 0 || c.Split.TestSize >= 1 {
		c.Split.TestSize = 0.2
	}
	if c.Split.Seed == 0 {
		c.Split.Seed = 42
	}
	if c.ExportDir == "" {
		c.ExportDir = "exports"
	}
	if c.ChartDir == "" {
		c.ChartDir = "charts"
	}
}
