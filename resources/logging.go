package resources

import (
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/activecm/leakhunt/config"
	"github.com/activecm/leakhunt/util"
	"github.com/activecm/mgorus"
	"github.com/globalsign/mgo"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// initLogger creates the logger, output only goes through the hooks
func initLogger(logConfig *config.LogStaticCfg) *log.Logger {
	var logs = &log.Logger{}

	logs.Formatter = new(log.TextFormatter)

	logs.Out = ioutil.Discard
	logs.Hooks = make(log.LevelHooks)

	switch logConfig.LogLevel {
	case 3:
		logs.Level = log.DebugLevel
	case 2:
		logs.Level = log.InfoLevel
	case 1:
		logs.Level = log.WarnLevel
	default:
		logs.Level = log.ErrorLevel
	}
	return logs
}

// addFileLogger writes one file per level in a timestamped folder under logPath
func addFileLogger(logger *log.Logger, logPath string) error {
	time := time.Now().Format(util.TimeFormat)
	logPath = path.Join(logPath, time)
	exists, err := util.Exists(logPath)
	if err != nil {
		return err
	}
	if !exists {
		err = os.MkdirAll(logPath, 0755)
		if err != nil {
			return err
		}
	}

	logger.Hooks.Add(lfshook.NewHook(lfshook.PathMap{
		log.DebugLevel: path.Join(logPath, "debug.log"),
		log.InfoLevel:  path.Join(logPath, "info.log"),
		log.WarnLevel:  path.Join(logPath, "warn.log"),
		log.ErrorLevel: path.Join(logPath, "error.log"),
		log.FatalLevel: path.Join(logPath, "fatal.log"),
		log.PanicLevel: path.Join(logPath, "panic.log"),
	}, nil))
	return nil
}

// addMongoLogger sends log entries to a collection of the meta database
func addMongoLogger(logger *log.Logger, ssn *mgo.Session, database string, collection string) error {
	err := ssn.DB(database).C(collection).Create(&mgo.CollectionInfo{})

	if err != nil {
		switch err.(type) {
		case *mgo.QueryError:
			//check if create failed because collection already exists
			//https://github.com/mongodb/mongo/blob/master/src/mongo/base/error_codes.err
			queryErr := err.(*mgo.QueryError)
			if queryErr.Code != 48 {
				return err
			}
		default:
			return err
		}
	}
	logger.Hooks.Add(
		mgorus.NewHookerFromSession(
			ssn, database, collection,
		),
	)
	return nil
}
