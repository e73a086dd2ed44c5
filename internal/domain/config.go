package domain

import (
	"net"
	"time"
)

const (
	DefaultHost   = "0.0.0.0"
	DefaultPort   = "3000"
	DefaultBanner = "Server listening on http://{{host}}:{{port}}"
)

// Config is the effective bashy configuration: defaults, then bashy.yaml,
// then the environment.
type Config struct {
	Server ServerConfig
	Reply  Reply
	Banner string
	Log    LogConfig

	// Source is the config file the values were read from, if any.
	Source string
}

type ServerConfig struct {
	// Host and Port are kept as given; they are only joined for the bind call.
	Host string
	Port string

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type LogConfig struct {
	Dir   string
	Debug bool
}

// Address joins host and port the way the listener expects them.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DefaultConfig provides the values used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Reply:  DefaultReply(),
		Banner: DefaultBanner,
	}
}

// InitSpec describes where `bashy init` writes its files.
type InitSpec struct {
	Root string
}
