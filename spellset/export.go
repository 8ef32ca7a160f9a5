package spellset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default file names for the per-framework exports.
const (
	TensorFlowFileName  = "spelling_data_tensorflow.json"
	PyTorchFileName     = "spelling_data_pytorch.tsv"
	HuggingFaceFileName = "spelling_data_huggingface.csv"
)

// TensorFlowExport is the column-oriented JSON layout consumed by
// tf.data-style pipelines.
type TensorFlowExport struct {
	Source    []string `json:"source"`
	Target    []string `json:"target"`
	ErrorType []string `json:"error_type"`
}

// ExportTensorFlow writes the dataset as a single JSON object with parallel
// source/target/error_type arrays.
func ExportTensorFlow(path string, entries []CorrectionEntry) error {
	export := TensorFlowExport{
		Source:    make([]string, len(entries)),
		Target:    make([]string, len(entries)),
		ErrorType: make([]string, len(entries)),
	}
	for i, entry := range entries {
		export.Source[i] = entry.IncorrectWord
		export.Target[i] = entry.CorrectWord
		export.ErrorType[i] = entry.ErrorType
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tensorflow export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tensorflow export: %w", err)
	}
	return nil
}

// ExportPyTorch writes a headerless tab-separated file of incorrect/correct pairs.
func ExportPyTorch(path string, entries []CorrectionEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pytorch export: %w", err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	writer.Comma = '\t'
	for i, entry := range entries {
		if err := writer.Write([]string{entry.IncorrectWord, entry.CorrectWord}); err != nil {
			return fmt.Errorf("write pytorch row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush pytorch export: %w", err)
	}
	return nil
}

// ExportHuggingFace writes an input_text/target_text CSV where the input is
// prefixed with the "correct: " task marker used by text-to-text models.
func ExportHuggingFace(path string, entries []CorrectionEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create huggingface export: %w", err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"input_text", "target_text"}); err != nil {
		return fmt.Errorf("write huggingface header: %w", err)
	}
	for i, entry := range entries {
		row := []string{"correct: " + entry.IncorrectWord, entry.CorrectWord}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write huggingface row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush huggingface export: %w", err)
	}
	return nil
}

// ExportAll writes every framework export into dir and returns the written paths.
func ExportAll(dir string, entries []CorrectionEntry) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	exports := []struct {
		name  string
		write func(string, []CorrectionEntry) error
	}{
		{TensorFlowFileName, ExportTensorFlow},
		{PyTorchFileName, ExportPyTorch},
		{HuggingFaceFileName, ExportHuggingFace},
	}
	paths := make([]string, 0, len(exports))
	for _, export := range exports {
		path := filepath.Join(dir, export.name)
		if err := export.write(path, entries); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
