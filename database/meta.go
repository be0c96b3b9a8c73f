package database

import (
	"os"
	"sync"
	"time"

	"github.com/activecm/leakhunt/config"
	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type (

	// MetaDB exports control for the meta database
	MetaDB struct {
		lock     *sync.Mutex    // Read and write lock
		config   *config.Config // configuration info
		dbHandle *mgo.Session   // Database handle
		log      *log.Logger    // Logging object
	}

	// RunInfo describes a detection run whose results were stored
	RunInfo struct {
		ID            bson.ObjectId `bson:"_id,omitempty"`  // Ident
		RunID         string        `bson:"run_id"`         // Tags the leak reports of the run
		Database      string        `bson:"database"`       // Database holding the leak reports
		Dataset       string        `bson:"dataset"`        // File the documents were read from
		Documents     int           `bson:"documents"`      // Number of documents analyzed
		ParameterSets int           `bson:"parameter_sets"` // Number of threshold sets evaluated
		Started       time.Time     `bson:"started"`        // Time the run began
		Finished      bool          `bson:"finished"`       // Has every parameter set been evaluated
		Leaks         int           `bson:"leaks"`          // Number of leak reports written
		Version       string        `bson:"version"`        // leakhunt version used for the run
	}
)

// NewMetaDB instantiates a new handle for the leakhunt MetaDatabase
func NewMetaDB(config *config.Config, dbHandle *mgo.Session,
	log *log.Logger) *MetaDB {
	metaDB := &MetaDB{
		lock:     new(sync.Mutex),
		config:   config,
		dbHandle: dbHandle,
		log:      log,
	}
	//Build Meta collection
	if !metaDB.isBuilt() {
		metaDB.createMetaDB()
	}
	return metaDB
}

// NewRunInfo describes a run that is about to start, under a fresh run id
func NewRunInfo(conf *config.Config, database, dataset string, documents, parameterSets int) RunInfo {
	return RunInfo{
		RunID:         uuid.New().String(),
		Database:      database,
		Dataset:       dataset,
		Documents:     documents,
		ParameterSets: parameterSets,
		Started:       time.Now(),
		Version:       conf.S.Version,
	}
}

// AddRun records a new run in the runs table
func (m *MetaDB) AddRun(info RunInfo) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).Insert(info)
	if err != nil {
		m.log.WithFields(log.Fields{
			"error":  err.Error(),
			"run_id": info.RunID,
		}).Error("failed to create new run document")
		return err
	}

	return nil
}

// MarkRunFinished marks a run as complete and stores its leak count
func (m *MetaDB) MarkRunFinished(runID string, leaks int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).
		Update(bson.M{"run_id": runID}, bson.M{
			"$set": bson.D{
				{Name: "finished", Value: true},
				{Name: "leaks", Value: leaks},
			},
		})

	if err != nil {
		m.log.WithFields(log.Fields{
			"metadb_attempted": m.config.S.MongoDB.MetaDB,
			"run_id":           runID,
			"error":            err.Error(),
		}).Error("could not update run entry in meta")
		return err
	}
	return nil
}

// GetRuns returns the runs stored in database, or every run when
// database is empty. Runs are sorted from the most recent.
func (m *MetaDB) GetRuns(database string) ([]RunInfo, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	var query bson.M
	if database != "" {
		query = bson.M{"database": database}
	}

	var results []RunInfo
	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).
		Find(query).Sort("-started").All(&results)
	if err != nil {
		m.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("could not list runs in meta")
		return nil, err
	}
	return results, nil
}

// GetRun returns the run recorded under runID
func (m *MetaDB) GetRun(runID string) (RunInfo, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	var run RunInfo
	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).
		Find(bson.M{"run_id": runID}).One(&run)
	return run, err
}

// DeleteRun removes a run from the runs table
func (m *MetaDB) DeleteRun(runID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).
		Remove(bson.M{"run_id": runID})
	if err != nil {
		m.log.WithFields(log.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("could not remove run entry from meta")
		return err
	}
	return nil
}

// isBuilt checks to see if the runs table exists
func (m *MetaDB) isBuilt() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	coll, err := ssn.DB(m.config.S.MongoDB.MetaDB).CollectionNames()
	if err != nil {
		m.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("error when looking up metadata collections")
		return false
	}

	for _, name := range coll {
		if name == m.config.T.Meta.RunsTable {
			return true
		}
	}

	return false
}

// createMetaDB creates a new metadata database failure is not an option,
// if this function fails it will bring down the system.
func (m *MetaDB) createMetaDB() {
	m.lock.Lock()
	defer m.lock.Unlock()

	errchk := func(err error) {
		if err == nil {
			return
		}
		m.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("newMetaDBHandle failed to build database (aborting)")
		os.Exit(-1)
	}

	ssn := m.dbHandle.Copy()
	defer ssn.Close()

	myCol := mgo.CollectionInfo{
		DisableIdIndex: false,
		Capped:         false,
	}

	err := ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).Create(&myCol)
	errchk(err)

	idx := mgo.Index{
		Key:        []string{"run_id"},
		Unique:     true,
		Background: true,
		Name:       "runidindex",
	}

	err = ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).EnsureIndex(idx)
	errchk(err)

	err = ssn.DB(m.config.S.MongoDB.MetaDB).C(m.config.T.Meta.RunsTable).EnsureIndexKey("database")
	errchk(err)
}
