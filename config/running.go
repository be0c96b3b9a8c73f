package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"

	"github.com/activecm/mgosec"
	"github.com/blang/semver"
)

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		MongoDB MongoDBRunningCfg
		Version semver.Version
	}

	//MongoDBRunningCfg holds parsed information for connecting to MongoDB
	MongoDBRunningCfg struct {
		AuthMechanismParsed mgosec.AuthMechanism
		TLS                 struct {
			TLSConfig *tls.Config
		}
	}
)

// initRunningConfig uses data in the static config initialize
// the passed in running config
func initRunningConfig(static *StaticCfg, running *RunningCfg) error {
	var err error

	//parse the tls configuration
	if static.MongoDB.TLS.Enabled {
		tlsConf := &tls.Config{}
		if !static.MongoDB.TLS.VerifyCertificate {
			tlsConf.InsecureSkipVerify = true
		}
		if len(static.MongoDB.TLS.CAFile) > 0 {
			pem, err := ioutil.ReadFile(static.MongoDB.TLS.CAFile)
			if err != nil {
				return fmt.Errorf("could not read MongoDB CA file: %w", err)
			}
			tlsConf.RootCAs = x509.NewCertPool()
			tlsConf.RootCAs.AppendCertsFromPEM(pem)
		}
		running.MongoDB.TLS.TLSConfig = tlsConf
	}

	//parse out the mongo authentication mechanism
	running.MongoDB.AuthMechanismParsed = mgosec.None
	if static.MongoDB.AuthMechanism != "" {
		authMechanism, err := mgosec.ParseAuthMechanism(
			static.MongoDB.AuthMechanism,
		)
		if err != nil {
			return fmt.Errorf("could not parse MongoDB authentication mechanism: %w", err)
		}
		running.MongoDB.AuthMechanismParsed = authMechanism
	}

	running.Version, err = semver.ParseTolerant(static.Version)
	return err
}
