package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ameerdhi7/bashy/internal/app/template"
	"github.com/ameerdhi7/bashy/internal/domain"
)

// BannerVars are the placeholders a banner may reference.
var BannerVars = []string{"host", "port", "addr"}

// MapConfig applies the parsed file on top of defaults.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Source = path

	if h := strings.TrimSpace(y.Server.Host); h != "" {
		cfg.Server.Host = h
	}
	if p := strings.TrimSpace(string(y.Server.Port)); p != "" {
		cfg.Server.Port = p
	}

	d, err := parseDuration(path, "bashy.server.read_header_timeout", y.Server.ReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Server.ReadHeaderTimeout = d

	d, err = parseDuration(path, "bashy.server.shutdown_timeout", y.Server.ShutdownTimeout, cfg.Server.ShutdownTimeout)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Server.ShutdownTimeout = d

	if y.Reply.Status != nil {
		s := *y.Reply.Status
		if s < 100 || s > 599 {
			return domain.Config{}, invalidField(path, "bashy.reply.status", fmt.Sprintf("status %d out of range 100..599", s))
		}
		cfg.Reply.Status = s
	}
	if y.Reply.ContentType != nil {
		cfg.Reply.ContentType = strings.TrimSpace(*y.Reply.ContentType)
	}
	if y.Reply.Body != nil {
		cfg.Reply.Body = *y.Reply.Body
	}

	if y.Banner != nil {
		if err := checkBanner(*y.Banner); err != nil {
			return domain.Config{}, invalidField(path, "bashy.banner", err.Error())
		}
		cfg.Banner = *y.Banner
	}

	cfg.Log.Dir = strings.TrimSpace(y.Log.Dir)
	if y.Log.Debug != nil {
		cfg.Log.Debug = *y.Log.Debug
	}

	return cfg, nil
}

// ToYAML maps an effective config back to its file form.
func ToYAML(cfg domain.Config) YAMLFile {
	status := cfg.Reply.Status
	ct := cfg.Reply.ContentType
	body := cfg.Reply.Body
	banner := cfg.Banner
	debug := cfg.Log.Debug

	return YAMLFile{Bashy: YAMLConfig{
		Server: YAMLServer{
			Host:              cfg.Server.Host,
			Port:              YAMLPort(cfg.Server.Port),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.String(),
			ShutdownTimeout:   cfg.Server.ShutdownTimeout.String(),
		},
		Reply: YAMLReply{
			Status:      &status,
			ContentType: &ct,
			Body:        &body,
		},
		Banner: &banner,
		Log: YAMLLog{
			Dir:   cfg.Log.Dir,
			Debug: &debug,
		},
	}}
}

func parseDuration(path, field, raw string, fallback time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, invalidField(path, field, fmt.Sprintf("invalid duration %q", raw))
	}
	if d < 0 {
		return 0, invalidField(path, field, "duration must not be negative")
	}
	return d, nil
}

func checkBanner(banner string) error {
	keys, err := template.Placeholders(banner)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if !isBannerVar(k) {
			return fmt.Errorf("unknown placeholder %q (expected one of %s)", k, strings.Join(BannerVars, ", "))
		}
	}
	return nil
}

func isBannerVar(k string) bool {
	for _, v := range BannerVars {
		if v == k {
			return true
		}
	}
	return false
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
