package config

import (
	"path/filepath"
	"reflect"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		MongoDB      MongoDBStaticCfg   `yaml:"MongoDB"`
		Log          LogStaticCfg       `yaml:"LogConfig"`
		Detection    DetectionStaticCfg `yaml:"Detection"`
		Version      string             `yaml:"-"`
		ExactVersion string             `yaml:"-"`
	}

	//MongoDBStaticCfg contains the means for connecting to MongoDB
	MongoDBStaticCfg struct {
		ConnectionString string        `yaml:"ConnectionString" default:"mongodb://localhost:27017"`
		AuthMechanism    string        `yaml:"AuthenticationMechanism" default:""`
		SocketTimeout    time.Duration `yaml:"SocketTimeout"`
		TLS              TLSStaticCfg  `yaml:"TLS"`
		MetaDB           string        `yaml:"MetaDB" default:"LeakHuntMetaDatabase"`
	}

	//TLSStaticCfg contains the means for connecting to MongoDB over TLS
	TLSStaticCfg struct {
		Enabled           bool   `yaml:"Enable" default:"false"`
		VerifyCertificate bool   `yaml:"VerifyCertificate" default:"false"`
		CAFile            string `yaml:"CAFile" default:""`
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel  int    `yaml:"LogLevel" default:"2"`
		LogPath   string `yaml:"LogPath" default:"/var/lib/leakhunt/logs"`
		LogToFile bool   `yaml:"LogToFile" default:"false"`
		LogToDB   bool   `yaml:"LogToDB" default:"false"`
	}

	//DetectionStaticCfg controls the leak detection runs
	DetectionStaticCfg struct {
		Threads    int                 `yaml:"Threads" default:"6"`
		BulkSize   int                 `yaml:"BulkSize" default:"1000"`
		Thresholds ThresholdsStaticCfg `yaml:"DefaultThresholds"`
	}

	//ThresholdsStaticCfg is the parameter set used when none is supplied
	ThresholdsStaticCfg struct {
		PrefixesPeakMinValue  uint32  `yaml:"PrefixesPeakMinValue" default:"10"`
		ConflictsPeakMinValue uint32  `yaml:"ConflictsPeakMinValue" default:"5"`
		Similarity            float64 `yaml:"Similarity" default:"0.9"`
		MaxNbPeaks            uint32  `yaml:"MaxNbPeaks" default:"2"`
		PercentStd            float64 `yaml:"PercentStd" default:"0.9"`
	}
)

//parseStaticConfig deserializes a yaml document on top of config
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	err := yaml.Unmarshal(cfgFile, config)
	if err != nil {
		return err
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// clean all filepaths
	if config.Log.LogPath != "" {
		config.Log.LogPath = filepath.Clean(config.Log.LogPath)
	}
	if config.MongoDB.TLS.CAFile != "" {
		config.MongoDB.TLS.CAFile = filepath.Clean(config.MongoDB.TLS.CAFile)
	}

	// set the socket time out in hours
	if config.MongoDB.SocketTimeout <= 0 {
		config.MongoDB.SocketTimeout = 2
	}
	config.MongoDB.SocketTimeout *= time.Hour

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return nil
}
