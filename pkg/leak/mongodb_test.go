// +build integration

package leak

import (
	"testing"

	"github.com/activecm/leakhunt/resources"
	"github.com/globalsign/mgo/bson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set the test database
var testTargetDB = "tmp_test_leaks_db"

func TestInsert(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	res.DB.SelectDB(testTargetDB)
	defer res.DB.Session.DB(testTargetDB).DropDatabase()

	testRepo := NewMongoRepository(res)
	require.Nil(t, testRepo.CreateIndexes())

	sink := NewRepositorySink(testRepo, 2)
	err := Run([]Document{singleSpike, shiftedSpike, twoSpikes}, []Thresholds{DefaultThresholds},
		Options{RunID: "integration", Threads: 2, Log: res.Log}, sink)
	require.Nil(t, err)
	assert.Equal(t, 2, sink.Written())

	var stored []Result
	err = res.DB.Session.DB(testTargetDB).C(res.Config.T.Leak.LeakTable).
		Find(bson.M{"run_id": "integration"}).Sort("ases").All(&stored)
	require.Nil(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, []int{4}, stored[0].Leaks)
	assert.Equal(t, DefaultThresholds, stored[0].Thresholds)
}

func TestResults(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	res.DB.SelectDB(testTargetDB)
	defer res.DB.Session.DB(testTargetDB).DropDatabase()

	testRepo := NewMongoRepository(res)
	require.Nil(t, testRepo.CreateIndexes())

	err := Run([]Document{singleSpike, twoSpikes}, []Thresholds{DefaultThresholds},
		Options{RunID: "first", Threads: 1, Log: res.Log}, NewRepositorySink(testRepo, 10))
	require.Nil(t, err)
	err = Run([]Document{singleSpike}, []Thresholds{DefaultThresholds},
		Options{RunID: "second", Threads: 1, Log: res.Log}, NewRepositorySink(testRepo, 10))
	require.Nil(t, err)

	all, err := Results(res, "", 0, 0, true)
	require.Nil(t, err)
	assert.Len(t, all, 3)

	first, err := Results(res, "first", 0, 0, true)
	require.Nil(t, err)
	assert.Len(t, first, 2)

	byAS, err := Results(res, "", 64511, 0, true)
	require.Nil(t, err)
	require.Len(t, byAS, 2)
	assert.Equal(t, "first", byAS[0].RunID)
	assert.Equal(t, "second", byAS[1].RunID)

	limited, err := Results(res, "", 0, 1, false)
	require.Nil(t, err)
	assert.Len(t, limited, 1)
}

func TestRemoveRun(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	res.DB.SelectDB(testTargetDB)
	defer res.DB.Session.DB(testTargetDB).DropDatabase()

	testRepo := NewMongoRepository(res)
	require.Nil(t, testRepo.CreateIndexes())

	for _, runID := range []string{"kept", "removed"} {
		err := Run([]Document{singleSpike, twoSpikes}, []Thresholds{DefaultThresholds},
			Options{RunID: runID, Threads: 1, Log: res.Log}, NewRepositorySink(testRepo, 10))
		require.Nil(t, err)
	}

	removed, err := RemoveRun(res, "removed")
	require.Nil(t, err)
	assert.Equal(t, 2, removed)

	left, err := Results(res, "", 0, 0, true)
	require.Nil(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "kept", left[0].RunID)
}
