package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLookup reads a YAML file of environment keys and returns a lookup that
// prefers the process environment and falls back to the file:
//
//	SERVER_PORT: 9000
//	CONVERT_MAX_CONCURRENT: 8
//	TRUSTED_PROXIES: [10.0.0.0/8, 192.168.0.0/16]
func FileLookup(path string) (LookupFunc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[strings.ToUpper(k)] = scalar(v)
	}

	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return values[key]
	}, nil
}

// LoadFile loads configuration from a YAML file overlaid by the environment.
func LoadFile(path string) (*Config, error) {
	lookup, err := FileLookup(path)
	if err != nil {
		return nil, err
	}
	return LoadFrom(lookup)
}

func scalar(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = scalar(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
