package spellset

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, entries []CorrectionEntry) *Service {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	service, err := NewService(entries, Config{}, logger)
	require.NoError(t, err)
	return service
}

func TestNewServiceRejectsEmptyDataset(t *testing.T) {
	_, err := NewService(nil, Config{}, nil)
	assert.Error(t, err)
}

func TestServiceCorrectText(t *testing.T) {
	service := newTestService(t, []CorrectionEntry{
		{IncorrectWord: "recieve", CorrectWord: "receive", ErrorType: "transposition"},
	})

	assert.Equal(t, "I receive mail.", service.CorrectText("I recieve mail."))
}

func TestServiceSummaryUsesConfiguredTopK(t *testing.T) {
	service := newTestService(t, statsEntries())
	cfg := service.Config()
	cfg.TopK = 1
	service.UpdateConfig(cfg)

	summary := service.Summary()
	assert.Len(t, summary.TopMisspelled, 1)
}

func TestServiceConfigReturnsCopy(t *testing.T) {
	service := newTestService(t, statsEntries())

	cfg := service.Config()
	cfg.TopK = 99
	assert.NotEqual(t, 99, service.Config().TopK)
}

func TestServiceSplitDataset(t *testing.T) {
	service := newTestService(t, splitEntries())

	result, err := service.SplitDataset()
	require.NoError(t, err)
	assert.Equal(t, len(splitEntries()), len(result.Train)+len(result.Test))
}

func TestServiceTableIsBuiltOnce(t *testing.T) {
	service := newTestService(t, []CorrectionEntry{
		{IncorrectWord: "Teh", CorrectWord: "the"},
		{IncorrectWord: "teh", CorrectWord: "THE"},
	})

	table := service.Table()
	require.Len(t, table, 1)
	assert.Equal(t, "THE", table["teh"])
}
