// Package settings provides the key-value configuration source for the
// peer. Values come from an optional YAML file with dotted-key access;
// a .env file, when present, is loaded into the process environment
// first and environment variables override file values.
package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is an immutable snapshot of the configuration. A missing
// configuration file yields an empty snapshot, not an error.
type Settings struct {
	values map[string]string
}

// Load reads the YAML configuration at path. Nested maps are flattened
// into dotted keys ("imv-attestation.platform_info"). A .env file in the
// working directory is applied to the environment beforehand.
func Load(path string) (*Settings, error) {
	// Ignore a missing .env, it is optional everywhere.
	_ = godotenv.Load()

	s := &Settings{values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithFields(logrus.Fields{
				"function": "Load",
				"path":     path,
			}).Debug("No configuration file, using defaults")
			return s, nil
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	flatten("", raw, s.values)

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
		"keys":     len(s.values),
	}).Info("Configuration loaded")

	return s, nil
}

// Empty returns a settings snapshot without any values. Useful for tests
// and for components constructed before configuration is available.
func Empty() *Settings {
	return &Settings{values: make(map[string]string)}
}

// GetStr returns the value for a dotted key, or def when the key is not
// set. An environment variable named after the key (dots and dashes
// replaced by underscores, upper-cased) takes precedence.
func (s *Settings) GetStr(key, def string) string {
	if env := os.Getenv(envKey(key)); env != "" {
		return env
	}
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// envKey maps "imv-attestation.platform_info" to
// "IMV_ATTESTATION_PLATFORM_INFO".
func envKey(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(r.Replace(key))
}

func flatten(prefix string, in map[string]interface{}, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
			// Key present without value, skip.
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
