// Package config assembles runtime settings for the community platform
// client. Sources are applied in order — defaults, environment, JSON file,
// command-line flags — with later sources taking precedence.
package config

import (
	"os"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/netx"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - BackendOrigin: base URL of the REST backend.
//   - DatabaseDSN: path of the local sqlite database holding the token and
//     in-progress registration.
type Config struct {
	BackendOrigin string
	DatabaseDSN   string
}

// LoadDefaults populates c with sensible defaults. The backend origin is
// chosen from the machine's hostname: loopback hosts target the local
// development backend, everything else the deployed one.
func (c *Config) LoadDefaults() {
	host, err := os.Hostname()
	if err != nil {
		host = ""
	}
	c.BackendOrigin = netx.ResolveOrigin(host)
	c.DatabaseDSN = "village.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
