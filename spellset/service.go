package spellset

import (
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service ties a loaded dataset, its correction table and the runtime
// configuration together for the CLI and embedding callers.
type Service struct {
	entries []CorrectionEntry
	table   CorrectionTable

	cfgMu sync.RWMutex
	cfg   Config

	logger logrus.FieldLogger
}

// NewService builds the correction table for the given dataset. The logger may
// be nil, in which case diagnostics are discarded.
func NewService(entries []CorrectionEntry, cfg Config, logger logrus.FieldLogger) (*Service, error) {
	if len(entries) == 0 {
		return nil, errors.New("dataset is empty")
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	cfg.ApplyDefaults()
	s := &Service{
		entries: entries,
		cfg:     cfg,
		table:   BuildTable(entries),
		logger:  logger,
	}
	keyed := 0
	for _, entry := range entries {
		if entry.IncorrectWord != "" {
			keyed++
		}
	}
	if dupes := keyed - len(s.table); dupes > 0 {
		s.logger.WithField("overwritten", dupes).Warn("duplicate incorrect words in dataset, last occurrence wins")
	}
	s.logger.WithFields(logrus.Fields{
		"entries": len(entries),
		"keys":    len(s.table),
	}).Info("correction table built")
	return s, nil
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// Entries returns the loaded dataset.
func (s *Service) Entries() []CorrectionEntry {
	return s.entries
}

// Table returns the correction table. Callers must treat it as read-only.
func (s *Service) Table() CorrectionTable {
	return s.table
}

// Summary computes the dataset statistics using the configured top-K.
func (s *Service) Summary() DatasetSummary {
	return Summarize(s.entries, s.Config().TopK)
}

// CorrectText rewrites free-form text with the correction table.
func (s *Service) CorrectText(text string) string {
	return Correct(s.table, text)
}

// SplitDataset performs the configured stratified train/test split.
func (s *Service) SplitDataset() (SplitResult, error) {
	result, err := Split(s.entries, s.Config().Split)
	if err != nil {
		return result, err
	}
	s.logger.WithFields(logrus.Fields{
		"train": len(result.Train),
		"test":  len(result.Test),
	}).Info("dataset split")
	return result, nil
}

// ExportDataset writes every framework export into the configured directory.
func (s *Service) ExportDataset() ([]string, error) {
	paths, err := ExportAll(s.Config().ExportDir, s.entries)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		s.logger.WithField("path", path).Info("export written")
	}
	return paths, nil
}

// RenderCharts draws the overview charts into the configured directory.
func (s *Service) RenderCharts() ([]string, error) {
	paths, err := RenderCharts(s.Config().ChartDir, s.entries)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		s.logger.WithField("path", path).Info("chart written")
	}
	return paths, nil
}
