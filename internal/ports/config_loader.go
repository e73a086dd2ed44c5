package ports

import "github.com/ameerdhi7/bashy/internal/domain"

// ConfigLoader loads configuration from a source (e.g., a YAML file).
type ConfigLoader interface {
	LoadFile(path string) (domain.Config, error)
}
