package spellset

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart file names written by RenderCharts.
const (
	ErrorTypesChartFileName  = "error_types.png"
	FrequencyChartFileName   = "frequency_categories.png"
	WordLengthsChartFileName = "word_lengths.png"
	LengthDiffsChartFileName = "length_diffs.png"
)

// RenderCharts draws the dataset overview charts as PNG files in dir and
// returns the written paths: error-type and frequency-category bar charts plus
// correct-word-length and length-difference histograms.
func RenderCharts(dir string, entries []CorrectionEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to chart")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	errorTypes := make(map[string]int)
	freqCategories := make(map[string]int)
	wordLengths := make(plotter.Values, 0, len(entries))
	lengthDiffs := make(plotter.Values, 0, len(entries))
	for _, entry := range entries {
		if entry.ErrorType != "" {
			errorTypes[entry.ErrorType]++
		}
		if entry.FrequencyCategory != "" {
			freqCategories[entry.FrequencyCategory]++
		}
		correctLen := utf8.RuneCountInString(entry.CorrectWord)
		incorrectLen := utf8.RuneCountInString(entry.IncorrectWord)
		wordLengths = append(wordLengths, float64(correctLen))
		lengthDiffs = append(lengthDiffs, float64(correctLen-incorrectLen))
	}

	var paths []string
	charts := []struct {
		name string
		draw func(path string) error
	}{
		{ErrorTypesChartFileName, func(path string) error {
			return saveBarChart(path, "Distribution of Error Types", "Count", sortedLabelCounts(errorTypes, 0))
		}},
		{FrequencyChartFileName, func(path string) error {
			return saveBarChart(path, "Frequency Category Distribution", "Count", sortedLabelCounts(freqCategories, 0))
		}},
		{WordLengthsChartFileName, func(path string) error {
			return saveHistogram(path, "Distribution of Word Lengths", "Word Length (characters)", wordLengths, 15)
		}},
		{LengthDiffsChartFileName, func(path string) error {
			return saveHistogram(path, "Length Difference (Correct - Incorrect)", "Character Difference", lengthDiffs, 10)
		}},
	}
	for _, chart := range charts {
		path := filepath.Join(dir, chart.name)
		if err := chart.draw(path); err != nil {
			return nil, fmt.Errorf("render %s: %w", chart.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func saveBarChart(path, title, yLabel string, counts []LabelCount) error {
	if len(counts) == 0 {
		return fmt.Errorf("no data for %q", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, count := range counts {
		values[i] = float64(count.Count)
		labels[i] = count.Label
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.8
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func saveHistogram(path, title, xLabel string, values plotter.Values, bins int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"
	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	hist.FillColor = plotutil.Color(1)
	p.Add(hist)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
