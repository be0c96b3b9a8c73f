package resources

import (
	"os"
	"testing"

	"github.com/activecm/leakhunt/config"
)

// InitTestResources creates a resource bundle using the hard coded testing
// config. The database is not contacted.
func InitTestResources(t *testing.T) *Resources {
	conf, err := config.LoadTestingConfig("mongodb://localhost:27017")
	if err != nil {
		t.Fatal(err)
	}

	return &Resources{
		Config: conf,
		Log:    initLogger(&conf.S.Log),
	}
}

//InitIntegrationTestingResources creates a default testing
//resource bundle for use with integration testing.
//The MongoDB server is contacted via the URI provided
//as by go test -args [MongoDB URI].
func InitIntegrationTestingResources(t *testing.T) *Resources {
	if testing.Short() {
		t.Skip()
	}

	if len(os.Args) != 2 {
		t.Fatal("-args [MongoDB URI] is required to run leakhunt integration tests with go test")
	}

	mongoURI := os.Args[1]

	conf, err := config.LoadTestingConfig(mongoURI)
	if err != nil {
		t.Fatal(err)
	}

	res := &Resources{
		Config: conf,
		Log:    initLogger(&conf.S.Log),
	}

	if err := res.ConnectDB(); err != nil {
		t.Fatal(err)
	}
	return res
}
