package cli

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/infra/config"
	"github.com/ameerdhi7/bashy/internal/infra/configfinder"
	"github.com/ameerdhi7/bashy/internal/ports"
)

// loadConfig resolves the effective config for the current process:
// defaults, then bashy.yaml if one is found, then PORT/HOST.
func loadConfig(configFlag string) (domain.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return resolveConfig(configSources{
		locator: configfinder.NewFinder(),
		loader:  config.NewLoader(),
		lookup:  os.LookupEnv,
	}, configFlag, wd)
}

type configSources struct {
	locator ports.ConfigLocator
	loader  ports.ConfigLoader
	lookup  config.LookupFunc
}

func resolveConfig(src configSources, configFlag, startDir string) (domain.Config, error) {
	path, err := resolveConfigPath(src.locator, configFlag, startDir)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if path != "" {
		cfg, err = src.loader.LoadFile(path)
		if err != nil {
			return domain.Config{}, err
		}
	}

	return config.ApplyEnv(cfg, src.lookup), nil
}

// resolveConfigPath returns "" when no config file is in play.
func resolveConfigPath(locator ports.ConfigLocator, configFlag, startDir string) (string, error) {
	in := strings.TrimSpace(configFlag)
	if in != "" {
		abs, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		return abs, nil
	}

	root, err := locator.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return locator.Path(root), nil
}

// localURL is the URL a probe on this machine uses to reach the responder.
func localURL(s domain.ServerConfig) string {
	host := s.Host
	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::", "[::]":
		host = "::1"
	}
	return "http://" + net.JoinHostPort(host, s.Port) + "/"
}
