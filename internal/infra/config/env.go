package config

import "github.com/ameerdhi7/bashy/internal/domain"

const (
	EnvPort = "PORT"
	EnvHost = "HOST"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides host and port from the environment. Values are taken
// as-is; an empty variable counts as unset.
func ApplyEnv(cfg domain.Config, lookup LookupFunc) domain.Config {
	if lookup == nil {
		return cfg
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		cfg.Server.Port = v
	}
	if v, ok := lookup(EnvHost); ok && v != "" {
		cfg.Server.Host = v
	}
	return cfg
}
