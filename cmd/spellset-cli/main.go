package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheynewallace/tabby"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"yashubustudio/spellset/spellset"
)

var (
	flagConfig  string
	flagInput   string
	flagVerbose bool
	flagColumns spellset.ColumnOverrides

	flagText      string
	flagTextFile  string
	flagFormat    string
	flagOutputDir string
	flagTestSize  float64
	flagSplitSeed int64
	flagStatsTopK int
)

var logger = logrus.New()

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		logger.Fatalf("spellset-cli: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "spellset-cli",
		Short:         "Explore and export a spelling-corrections dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if flagVerbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.json (default: ./config.json)")
	root.PersistentFlags().StringVar(&flagInput, "input", "", "CSV/TSV/text file containing the corrections dataset")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagColumns.Incorrect, "incorrect-column", "", "Column name or #index for the incorrect word")
	root.PersistentFlags().StringVar(&flagColumns.Correct, "correct-column", "", "Column name or #index for the correct word")
	root.PersistentFlags().StringVar(&flagColumns.ErrorType, "error-type-column", "", "Column name or #index for the error type")
	root.PersistentFlags().StringVar(&flagColumns.FrequencyCategory, "frequency-column", "", "Column name or #index for the frequency category")

	root.AddCommand(newStatsCommand())
	root.AddCommand(newCorrectCommand())
	root.AddCommand(newSplitCommand())
	root.AddCommand(newExportCommand())
	root.AddCommand(newPlotCommand())
	root.AddCommand(newColumnsCommand())
	return root
}

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print descriptive statistics for the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}
			if flagStatsTopK > 0 {
				cfg := service.Config()
				cfg.TopK = flagStatsTopK
				service.UpdateConfig(cfg)
			}
			printSummary(service.Summary())
			return nil
		},
	}
	cmd.Flags().IntVar(&flagStatsTopK, "top", 0, "How many most-misspelled words to list (default from config)")
	return cmd
}

func newCorrectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Rewrite text using the dataset as a correction dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}
			text, err := readCorrectionInput()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.CorrectText(text))
			return nil
		},
	}
	cmd.Flags().StringVar(&flagText, "text", "", "Text to correct")
	cmd.Flags().StringVar(&flagTextFile, "file", "", "File containing text to correct (\"-\" for stdin)")
	return cmd
}

func newSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Write a stratified train/test split as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}
			cfg := service.Config()
			if flagTestSize > 0 {
				cfg.Split.TestSize = flagTestSize
			}
			if flagSplitSeed != 0 {
				cfg.Split.Seed = flagSplitSeed
			}
			if flagOutputDir != "" {
				cfg.ExportDir = flagOutputDir
			}
			service.UpdateConfig(cfg)

			result, err := service.SplitDataset()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			trainPath := filepath.Join(cfg.ExportDir, "spelling_train.csv")
			testPath := filepath.Join(cfg.ExportDir, "spelling_test.csv")
			if err := spellset.WriteDatasetCSV(trainPath, result.Train); err != nil {
				return err
			}
			if err := spellset.WriteDatasetCSV(testPath, result.Test); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "train: %d entries -> %s\n", len(result.Train), trainPath)
			fmt.Fprintf(cmd.OutOrStdout(), "test:  %d entries -> %s\n", len(result.Test), testPath)
			return nil
		},
	}
	cmd.Flags().Float64Var(&flagTestSize, "test-size", 0, "Fraction of entries held out for the test set (default from config)")
	cmd.Flags().Int64Var(&flagSplitSeed, "seed", 0, "Shuffle seed (default from config)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for the split CSVs (default from config)")
	return cmd
}

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset in ML-framework-friendly formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}
			cfg := service.Config()
			if flagOutputDir != "" {
				cfg.ExportDir = flagOutputDir
				service.UpdateConfig(cfg)
			}
			paths, err := runExport(service, cfg.ExportDir, strings.ToLower(flagFormat))
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "all", "tensorflow, pytorch, huggingface or all")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for export files (default from config)")
	return cmd
}

func newPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render dataset overview charts as PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}
			cfg := service.Config()
			if flagOutputDir != "" {
				cfg.ChartDir = flagOutputDir
				service.UpdateConfig(cfg)
			}
			paths, err := service.RenderCharts()
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for chart files (default from config)")
	return cmd
}

func newColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Show the dataset header and detected column mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagInput == "" {
				return fmt.Errorf("missing required --input file")
			}
			meta, err := spellset.ReadDatasetMetadata(flagInput)
			if err != nil {
				return err
			}
			if len(meta.Columns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no header detected (plain-text input)")
				return nil
			}
			table := tabby.New()
			table.AddHeader("Field", "Column")
			table.AddLine("incorrect word", orDash(meta.Suggested.Incorrect))
			table.AddLine("correct word", orDash(meta.Suggested.Correct))
			table.AddLine("error type", orDash(meta.Suggested.ErrorType))
			table.AddLine("frequency category", orDash(meta.Suggested.FrequencyCategory))
			table.Print()
			fmt.Fprintf(cmd.OutOrStdout(), "\nheader: %s\n", strings.Join(meta.Columns, ", "))
			return nil
		},
	}
}

func loadService() (*spellset.Service, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("missing required --input file")
	}
	cfg, err := spellset.LoadConfig(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	columns := cfg.Columns
	mergeColumnOverrides(&columns, flagColumns)
	result, err := spellset.ParseDatasetWithOptions(flagInput, columns)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if result.Skipped > 0 {
		logger.WithField("rows", result.Skipped).Warn("skipped rows without a usable word pair")
	}
	service, err := spellset.NewService(result.Entries, cfg, logger)
	if err != nil {
		return nil, err
	}
	return service, nil
}

func mergeColumnOverrides(dst *spellset.ColumnOverrides, src spellset.ColumnOverrides) {
	if src.Incorrect != "" {
		dst.Incorrect = src.Incorrect
	}
	if src.Correct != "" {
		dst.Correct = src.Correct
	}
	if src.ErrorType != "" {
		dst.ErrorType = src.ErrorType
	}
	if src.FrequencyCategory != "" {
		dst.FrequencyCategory = src.FrequencyCategory
	}
}

func readCorrectionInput() (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	if flagTextFile == "" {
		return "", fmt.Errorf("provide --text or --file")
	}
	if flagTextFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(flagTextFile)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

func runExport(service *spellset.Service, dir, format string) ([]string, error) {
	switch format {
	case "", "all":
		return service.ExportDataset()
	case "tensorflow", "pytorch", "huggingface":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create export dir: %w", err)
		}
		var path string
		var err error
		switch format {
		case "tensorflow":
			path = filepath.Join(dir, spellset.TensorFlowFileName)
			err = spellset.ExportTensorFlow(path, service.Entries())
		case "pytorch":
			path = filepath.Join(dir, spellset.PyTorchFileName)
			err = spellset.ExportPyTorch(path, service.Entries())
		case "huggingface":
			path = filepath.Join(dir, spellset.HuggingFaceFileName)
			err = spellset.ExportHuggingFace(path, service.Entries())
		}
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

func printSummary(summary spellset.DatasetSummary) {
	fmt.Printf("records: %d (distinct misspellings: %d)\n", summary.TotalRecords, summary.DistinctIncorrect)
	fmt.Printf("correct word length: mean %.2f, stddev %.2f\n\n", summary.MeanWordLength, summary.StdDevWordLength)

	printLabelTable("Error Type", summary.ErrorTypes)
	printLabelTable("Frequency Category", summary.FrequencyCategories)
	printLabelTable("Most Misspelled", summary.TopMisspelled)
	printValueTable("Length Diff", summary.LengthDiffs)
	printValueTable("Word Length", summary.ByWordLength)
	printValueTable("Edit Distance", summary.EditDistances)
}

func printLabelTable(name string, counts []spellset.LabelCount) {
	if len(counts) == 0 {
		return
	}
	table := tabby.New()
	table.AddHeader(name, "Count")
	for _, count := range counts {
		table.AddLine(count.Label, strconv.Itoa(count.Count))
	}
	table.Print()
	fmt.Println()
}

func printValueTable(name string, counts []spellset.ValueCount) {
	if len(counts) == 0 {
		return
	}
	table := tabby.New()
	table.AddHeader(name, "Count")
	for _, count := range counts {
		table.AddLine(strconv.Itoa(count.Value), strconv.Itoa(count.Count))
	}
	table.Print()
	fmt.Println()
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
