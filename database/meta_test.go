// +build integration

package database_test

import (
	"testing"

	"github.com/activecm/leakhunt/database"
	"github.com/activecm/leakhunt/resources"
	"github.com/globalsign/mgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLifecycle(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	defer res.DB.Session.DB(res.Config.S.MongoDB.MetaDB).C(res.Config.T.Meta.RunsTable).DropCollection()

	first := database.NewRunInfo(res.Config, "leaks-2015", "docs-2015.json", 10, 2)
	second := database.NewRunInfo(res.Config, "leaks-2016", "docs-2016.json", 20, 1)
	require.Nil(t, res.MetaDB.AddRun(first))
	require.Nil(t, res.MetaDB.AddRun(second))

	require.Nil(t, res.MetaDB.MarkRunFinished(first.RunID, 7))

	run, err := res.MetaDB.GetRun(first.RunID)
	require.Nil(t, err)
	assert.True(t, run.Finished)
	assert.Equal(t, 7, run.Leaks)

	runs, err := res.MetaDB.GetRuns("leaks-2016")
	require.Nil(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, second.RunID, runs[0].RunID)

	runs, err = res.MetaDB.GetRuns("")
	require.Nil(t, err)
	assert.Len(t, runs, 2)

	require.Nil(t, res.MetaDB.DeleteRun(first.RunID))
	_, err = res.MetaDB.GetRun(first.RunID)
	assert.Equal(t, mgo.ErrNotFound, err)
}
