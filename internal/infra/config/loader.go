package config

import (
	"os"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadFile reads a bashy.yaml file and applies it on top of defaults.
func (l *Loader) LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y.Bashy)
}

// Marshal renders cfg in bashy.yaml form.
func Marshal(cfg domain.Config) ([]byte, error) {
	b, err := yaml.Marshal(ToYAML(cfg))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return b, nil
}
