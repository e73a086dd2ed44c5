package ports

import "github.com/ameerdhi7/bashy/internal/domain"

type ConfigInitializer interface {
	Init(spec domain.InitSpec, force bool) error
}
