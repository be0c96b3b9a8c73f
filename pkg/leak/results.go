package leak

import (
	"github.com/activecm/leakhunt/resources"
	"github.com/globalsign/mgo/bson"
)

// Results returns the leak reports stored in the selected database.
// An empty runID matches every run and an asn of 0 matches every AS.
// limit and noLimit control how many results are returned.
func Results(res *resources.Resources, runID string, asn uint32, limit int, noLimit bool) ([]Result, error) {
	ssn := res.DB.Session.Copy()
	defer ssn.Close()

	query := bson.M{}
	if runID != "" {
		query["run_id"] = runID
	}
	if asn != 0 {
		query["ases"] = asn
	}

	var results []Result

	leakQuery := ssn.DB(res.DB.GetSelectedDB()).C(res.Config.T.Leak.LeakTable).
		Find(query).Sort("run_id", "ases")

	if !noLimit {
		leakQuery = leakQuery.Limit(limit)
	}

	err := leakQuery.All(&results)
	return results, err
}

// RemoveRun deletes every leak report of a run from the selected database
// and returns how many were removed
func RemoveRun(res *resources.Resources, runID string) (int, error) {
	ssn := res.DB.Session.Copy()
	defer ssn.Close()

	info, err := ssn.DB(res.DB.GetSelectedDB()).C(res.Config.T.Leak.LeakTable).
		RemoveAll(bson.M{"run_id": runID})
	if err != nil {
		return 0, err
	}
	return info.Removed, nil
}
