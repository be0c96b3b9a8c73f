package config

const testConfig = `
MongoDB:
    ConnectionString: null
    AuthenticationMechanism: null
    SocketTimeout: 2
    TLS:
        Enable: false
        VerifyCertificate: false
        CAFile: null
    MetaDB: LEAKHUNT-TEST-MetaDatabase
LogConfig:
    LogLevel: 3
    LogPath: null
    LogToFile: false
    LogToDB: true
Detection:
    Threads: 2
`

// LoadTestingConfig loads the hard coded testing config
func LoadTestingConfig(mongoURI string) (*Config, error) {
	config, err := loadConfigBytes([]byte(testConfig))
	if err != nil {
		return nil, err
	}

	config.S.MongoDB.ConnectionString = mongoURI
	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to re-initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}
