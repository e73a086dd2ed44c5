package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ameerdhi7/bashy/internal/domain"
)

// RenderString replaces {{name}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	err := walk(input, func(literal, key string) error {
		out.WriteString(literal)
		if key == "" {
			return nil
		}
		value, ok := vars[key]
		if !ok {
			return renderError(fmt.Errorf("missing variable %q", key))
		}
		out.WriteString(value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Placeholders lists the placeholder names used by input, in order of appearance.
func Placeholders(input string) ([]string, error) {
	var keys []string
	err := walk(input, func(_, key string) error {
		if key != "" {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// walk calls fn with each literal run and the placeholder key that follows it.
// The final call has an empty key.
func walk(input string, fn func(literal, key string) error) error {
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return fn(rest, "")
		}

		literal := rest[:start]
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return renderError(errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return renderError(errors.New("empty template expression"))
		}

		if err := fn(literal, key); err != nil {
			return err
		}
		rest = rest[end+2:]
	}
}

func renderError(err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  err,
	}
}
