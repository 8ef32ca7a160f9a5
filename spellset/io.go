package spellset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadResult carries the parsed dataset along with load diagnostics.
type LoadResult struct {
	Entries []CorrectionEntry
	// Skipped counts rows dropped because they lacked an incorrect or a
	// correct word.
	Skipped int
}

// DatasetMetadata provides header information and automatic column suggestions.
type DatasetMetadata struct {
	Columns   []string
	Suggested ColumnOverrides
}

// ParseDataset reads a corrections dataset, auto-detecting columns from the header.
func ParseDataset(path string) ([]CorrectionEntry, error) {
	result, err := ParseDatasetWithOptions(path, ColumnOverrides{})
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// ParseDatasetWithOptions reads a corrections dataset honoring caller provided
// column selections. CSV and TSV files are parsed by header; any other
// extension is treated as plain text with one whitespace-separated
// incorrect/correct pair per line.
func ParseDatasetWithOptions(path string, opts ColumnOverrides) (*LoadResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return parseDelimitedDataset(path, ',', opts)
	case ".tsv":
		return parseDelimitedDataset(path, '\t', opts)
	default:
		return parsePlainTextDataset(path)
	}
}

func parseDelimitedDataset(path string, comma rune, opts ColumnOverrides) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty dataset file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	resolved, skipHeader, err := resolveDatasetColumns(header, opts)
	if err != nil {
		return nil, err
	}
	if resolved.Incorrect.Index < 0 || resolved.Correct.Index < 0 {
		return nil, fmt.Errorf("no usable word columns found in %s", filepath.Base(path))
	}
	start := 0
	if skipHeader {
		start = 1
	}
	result := &LoadResult{Entries: make([]CorrectionEntry, 0, len(rows)-start)}
	for _, row := range rows[start:] {
		entry := CorrectionEntry{
			IncorrectWord:     NormalizeText(cellAt(row, resolved.Incorrect.Index)),
			CorrectWord:       NormalizeText(cellAt(row, resolved.Correct.Index)),
			ErrorType:         cellAt(row, resolved.ErrorType.Index),
			FrequencyCategory: cellAt(row, resolved.FrequencyCategory.Index),
		}
		if err := validate.Struct(entry); err != nil {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func parsePlainTextDataset(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text file: %w", err)
	}
	defer f.Close()
	result := &LoadResult{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := cleanCell(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			result.Skipped++
			continue
		}
		entry := CorrectionEntry{
			IncorrectWord: NormalizeText(fields[0]),
			CorrectWord:   NormalizeText(fields[1]),
		}
		if len(fields) > 2 {
			entry.ErrorType = fields[2]
		}
		if len(fields) > 3 {
			entry.FrequencyCategory = fields[3]
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan text file: %w", err)
	}
	return result, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}

type columnResult struct {
	Index      int
	FromHeader bool
	HeaderName string
}

type resolvedColumns struct {
	Incorrect         columnResult
	Correct           columnResult
	ErrorType         columnResult
	FrequencyCategory columnResult
}

func resolveDatasetColumns(header []string, opts ColumnOverrides) (resolvedColumns, bool, error) {
	res := resolvedColumns{
		Incorrect:         columnResult{Index: -1},
		Correct:           columnResult{Index: -1},
		ErrorType:         columnResult{Index: -1},
		FrequencyCategory: columnResult{Index: -1},
	}
	var err error
	candidates := getColumnCandidates()
	if res.Incorrect, err = pickColumn(header, opts.Incorrect, candidates.Incorrect); err != nil {
		return res, false, err
	}
	if res.Correct, err = pickColumn(header, opts.Correct, candidates.Correct); err != nil {
		return res, false, err
	}
	if res.ErrorType, err = pickColumn(header, opts.ErrorType, candidates.ErrorType); err != nil {
		return res, false, err
	}
	if res.FrequencyCategory, err = pickColumn(header, opts.FrequencyCategory, candidates.FrequencyCategory); err != nil {
		return res, false, err
	}
	skipHeader := res.Incorrect.FromHeader || res.Correct.FromHeader ||
		res.ErrorType.FromHeader || res.FrequencyCategory.FromHeader
	// Headerless two-column files: treat the first two columns as the word pair.
	if !skipHeader && res.Incorrect.Index < 0 && res.Correct.Index < 0 && len(header) >= 2 {
		res.Incorrect.Index = 0
		res.Correct.Index = 1
	}
	res.Incorrect.HeaderName = headerNameForIndex(header, res.Incorrect.Index, res.Incorrect.FromHeader)
	res.Correct.HeaderName = headerNameForIndex(header, res.Correct.Index, res.Correct.FromHeader)
	res.ErrorType.HeaderName = headerNameForIndex(header, res.ErrorType.Index, res.ErrorType.FromHeader)
	res.FrequencyCategory.HeaderName = headerNameForIndex(header, res.FrequencyCategory.Index, res.FrequencyCategory.FromHeader)
	return res, skipHeader, nil
}

func pickColumn(header []string, explicit string, candidates []string) (columnResult, error) {
	res := columnResult{Index: -1}
	if strings.TrimSpace(explicit) != "" {
		idx, fromHeader, err := matchExplicitColumn(header, explicit)
		if err != nil {
			return res, err
		}
		res.Index = idx
		res.FromHeader = fromHeader
		return res, nil
	}
	idx := findColumn(header, candidates)
	if idx >= 0 {
		res.Index = idx
		res.FromHeader = true
	}
	return res, nil
}

func matchExplicitColumn(header []string, explicit string) (int, bool, error) {
	trimmed := strings.TrimSpace(explicit)
	if trimmed == "" {
		return -1, false, nil
	}
	for i, col := range header {
		if strings.EqualFold(col, trimmed) {
			return i, true, nil
		}
	}
	if strings.HasPrefix(trimmed, "#") {
		idx, err := parseColumnIndex(trimmed)
		if err != nil {
			return -1, false, err
		}
		if idx >= len(header) {
			return -1, false, fmt.Errorf("column index %s is out of range", trimmed)
		}
		return idx, false, nil
	}
	return -1, false, fmt.Errorf("column %q not found", explicit)
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	if trimmed == "" {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}
	return idx - 1, nil
}

func headerNameForIndex(header []string, idx int, fromHeader bool) string {
	if idx < 0 {
		return ""
	}
	if fromHeader && idx < len(header) {
		if name := header[idx]; name != "" {
			return name
		}
	}
	return fmt.Sprintf("#%d", idx+1)
}

// ReadDatasetMetadata returns header information and automatic column
// suggestions for structured files.
func ReadDatasetMetadata(path string) (DatasetMetadata, error) {
	meta := DatasetMetadata{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".tsv" {
		return meta, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return meta, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	if ext == ".tsv" {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return meta, nil
		}
		return meta, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	header := make([]string, len(row))
	for i, cell := range row {
		header[i] = cleanCell(cell)
	}
	meta.Columns = header
	resolved, _, err := resolveDatasetColumns(header, ColumnOverrides{})
	if err == nil {
		meta.Suggested = ColumnOverrides{
			Incorrect:         resolved.Incorrect.HeaderName,
			Correct:           resolved.Correct.HeaderName,
			ErrorType:         resolved.ErrorType.HeaderName,
			FrequencyCategory: resolved.FrequencyCategory.HeaderName,
		}
	}
	return meta, nil
}

// WriteDatasetCSV writes entries to a CSV file with the canonical dataset header.
func WriteDatasetCSV(path string, entries []CorrectionEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"incorrect_word", "correct_word", "error_type", "frequency_category"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, entry := range entries {
		row := []string{entry.IncorrectWord, entry.CorrectWord, entry.ErrorType, entry.FrequencyCategory}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return nil
}
