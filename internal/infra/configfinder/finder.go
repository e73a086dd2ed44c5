package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
)

const DefaultConfigFile = "bashy.yaml"

// Finder locates the directory holding bashy.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "bashy.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultConfigFile}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.name())); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Path returns the config file path inside root.
func (f *Finder) Path(root string) string {
	return filepath.Join(root, f.name())
}

func (f *Finder) name() string {
	if f.ConfigFile == "" {
		return DefaultConfigFile
	}
	return f.ConfigFile
}
