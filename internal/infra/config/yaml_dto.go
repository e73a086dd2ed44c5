package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLFile struct {
	Bashy YAMLConfig `yaml:"bashy"`
}

type YAMLConfig struct {
	Server YAMLServer `yaml:"server"`
	Reply  YAMLReply  `yaml:"reply"`
	Banner *string    `yaml:"banner"`
	Log    YAMLLog    `yaml:"log"`
}

type YAMLServer struct {
	Host              string   `yaml:"host"`
	Port              YAMLPort `yaml:"port"`
	ReadHeaderTimeout string   `yaml:"read_header_timeout"`
	ShutdownTimeout   string   `yaml:"shutdown_timeout"`
}

type YAMLReply struct {
	Status      *int    `yaml:"status"`
	ContentType *string `yaml:"content_type"`
	Body        *string `yaml:"body"`
}

type YAMLLog struct {
	Dir   string `yaml:"dir"`
	Debug *bool  `yaml:"debug"`
}

// YAMLPort accepts both `port: 3000` and `port: "3000"`.
type YAMLPort string

func (p *YAMLPort) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: port must be a scalar", n.Line)
	}
	*p = YAMLPort(n.Value)
	return nil
}

func (p YAMLPort) MarshalYAML() (any, error) {
	return string(p), nil
}
