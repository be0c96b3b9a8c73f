package resources

import (
	"fmt"
	"os"

	"github.com/activecm/leakhunt/config"
	"github.com/activecm/leakhunt/database"
	log "github.com/sirupsen/logrus"
)

type (
	// Resources provides a data structure for passing system Resources
	Resources struct {
		Config *config.Config
		Log    *log.Logger
		DB     *database.DB     // nil until ConnectDB is called
		MetaDB *database.MetaDB // nil until ConnectDB is called
	}
)

// InitResources grabs the configuration file and intitializes the configuration data
// returning a *Resources object which has all of the necessary configuration information.
// MongoDB is only contacted by ConnectDB since most commands work on flat files.
func InitResources(userConfig string) *Resources {
	conf, err := config.LoadConfig(userConfig)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Failed to config: %s\n", err.Error())
		os.Exit(-1)
	}

	// Fire up the logging system
	log := initLogger(&conf.S.Log)
	if conf.S.Log.LogToFile {
		if err := addFileLogger(log, conf.S.Log.LogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set up file logging: %s\n", err.Error())
		}
	}

	//bundle up the system resources
	return &Resources{
		Config: conf,
		Log:    log,
	}
}

// ConnectDB opens the MongoDB session used to store and read leak reports
func (r *Resources) ConnectDB() error {
	if r.DB != nil {
		return nil
	}

	// Allows code to interact with the database
	db, err := database.NewDB(r.Config, r.Log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	//Begin logging to the metadatabase
	if r.Config.S.Log.LogToDB {
		err = addMongoLogger(r.Log, db.Session,
			r.Config.S.MongoDB.MetaDB, r.Config.T.Log.LogTable,
		)
		if err != nil {
			db.Session.Close()
			return fmt.Errorf("failed to set up database logging: %w", err)
		}
	}

	r.DB = db
	// Allows code to record and list detection runs
	r.MetaDB = database.NewMetaDB(r.Config, db.Session, r.Log)
	return nil
}
