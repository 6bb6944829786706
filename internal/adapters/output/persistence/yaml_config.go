package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

var _ ports.ConfigRepository = (*YAMLConfigRepository)(nil)

// TokenEnv fills a blank token.
const TokenEnv = "SMARTTHINGS_TOKEN"

// YAMLConfigRepository loads the platform configuration from a YAML file.
// ${VAR} references are expanded from the environment before parsing.
type YAMLConfigRepository struct {
	path string
}

func NewYAMLConfigRepository(path string) *YAMLConfigRepository {
	return &YAMLConfigRepository{path: path}
}

// Get reads and parses the file. A missing file yields the defaults.
func (r *YAMLConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	var cfg model.Config

	data, err := os.ReadFile(r.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	setDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(c *model.Config) {
	if strings.TrimSpace(c.Token) == "" {
		c.Token = os.Getenv(TokenEnv)
	}
	if c.APIURL == "" {
		c.APIURL = model.DefaultAPIURL
	}
	if c.Listen == "" {
		c.Listen = model.DefaultListen
	}
	if c.AccessoryStore == "" {
		c.AccessoryStore = model.DefaultAccessoryStore
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func validate(c *model.Config) error {
	if c.MinTemp() > c.MaxTemp() {
		return fmt.Errorf("min_temperature %v is above max_temperature %v", c.MinTemp(), c.MaxTemp())
	}
	if c.UpdateInterval < 0 || c.DiscoveryInterval < 0 {
		return errors.New("intervals must not be negative")
	}
	return nil
}
