package resources

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/activecm/leakhunt/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerLevels(t *testing.T) {
	levels := map[int]log.Level{
		3:  log.DebugLevel,
		2:  log.InfoLevel,
		1:  log.WarnLevel,
		0:  log.ErrorLevel,
		-1: log.ErrorLevel,
	}
	for configured, expected := range levels {
		logger := initLogger(&config.LogStaticCfg{LogLevel: configured})
		assert.Equal(t, expected, logger.Level)
		assert.Equal(t, ioutil.Discard, logger.Out)
	}
}

func TestAddFileLogger(t *testing.T) {
	logDir, err := ioutil.TempDir("", "leakhunt-logs")
	require.Nil(t, err)
	defer os.RemoveAll(logDir)

	logger := initLogger(&config.LogStaticCfg{LogLevel: 2})
	require.Nil(t, addFileLogger(logger, logDir))

	logger.WithFields(log.Fields{"run_id": "abc"}).Info("Leak detection finished")

	matches, err := filepath.Glob(filepath.Join(logDir, "*", "info.log"))
	require.Nil(t, err)
	require.Len(t, matches, 1)

	contents, err := ioutil.ReadFile(matches[0])
	require.Nil(t, err)
	assert.Contains(t, string(contents), "Leak detection finished")
	assert.Contains(t, string(contents), "run_id=abc")
}

func TestInitTestResources(t *testing.T) {
	res := InitTestResources(t)
	assert.Nil(t, res.DB)
	assert.Nil(t, res.MetaDB)
	assert.Equal(t, log.DebugLevel, res.Log.Level)
}
