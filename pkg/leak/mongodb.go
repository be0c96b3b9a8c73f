package leak

import (
	"github.com/activecm/leakhunt/resources"
	"github.com/globalsign/mgo"
)

type repo struct {
	res *resources.Resources
}

//NewMongoRepository create new repository
func NewMongoRepository(res *resources.Resources) Repository {
	return &repo{
		res: res,
	}
}

func (r *repo) CreateIndexes() error {
	collectionName := r.res.Config.T.Leak.LeakTable

	// Desired indexes
	indexes := []mgo.Index{
		{Key: []string{"run_id"}},
		{Key: []string{"ases"}},
		{Key: []string{"leaks"}},
	}
	return r.res.DB.CreateCollection(collectionName, indexes)
}

//Insert writes a batch of leak reports in a single bulk operation
func (r *repo) Insert(results []*Result) error {
	if len(results) == 0 {
		return nil
	}

	ssn := r.res.DB.Session.Copy()
	defer ssn.Close()

	bulk := ssn.DB(r.res.DB.GetSelectedDB()).C(r.res.Config.T.Leak.LeakTable).Bulk()
	bulk.Unordered()
	for _, result := range results {
		bulk.Insert(result)
	}

	_, err := bulk.Run()
	return err
}
