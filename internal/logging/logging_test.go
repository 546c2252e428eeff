package logging_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/logging"
)

func TestLevels(t *testing.T) {
	log := logrus.New()
	require.NoError(t, logging.Setup(log, logging.Options{}))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	require.NoError(t, logging.Setup(log, logging.Options{Development: true}))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestFileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log := logrus.New()
	require.NoError(t, logging.Setup(log, logging.Options{
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}))
	log.SetOutput(io.Discard)

	log.WithField("difficulty", "easy").Info("new best result")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"new best result"`)
	assert.Contains(t, string(b), `"difficulty":"easy"`)
}
