package database

import (
	"testing"

	"github.com/activecm/leakhunt/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMongoDBVersion(t *testing.T) {
	assert.Nil(t, checkMongoDBVersion("4.2.0"))
	assert.Nil(t, checkMongoDBVersion("4.2.17"))
	assert.NotNil(t, checkMongoDBVersion("4.3.0"))
	assert.NotNil(t, checkMongoDBVersion("4.0.9"))
	assert.NotNil(t, checkMongoDBVersion("not a version"))
}

func TestNewRunInfo(t *testing.T) {
	conf, err := config.LoadTestingConfig("mongodb://localhost:27017")
	require.Nil(t, err)

	first := NewRunInfo(conf, "leaks-2015", "docs.json", 12, 3)
	second := NewRunInfo(conf, "leaks-2015", "docs.json", 12, 3)

	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, "leaks-2015", first.Database)
	assert.Equal(t, "docs.json", first.Dataset)
	assert.Equal(t, 12, first.Documents)
	assert.Equal(t, 3, first.ParameterSets)
	assert.False(t, first.Finished)
	assert.Equal(t, "v0.0.0+testing", first.Version)
	assert.False(t, first.Started.IsZero())
}
