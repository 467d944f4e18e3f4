package config

import "github.com/caarlos0/env/v11"

// envConfig is a DTO used exclusively for environment parsing. Only set
// variables overlay the config.
type envConfig struct {
	BackendOrigin string `env:"VILLAGE_BACKEND_ORIGIN"`
	DatabaseDSN   string `env:"VILLAGE_DB"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}
	if ec.BackendOrigin != "" {
		cfg.BackendOrigin = ec.BackendOrigin
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
}
