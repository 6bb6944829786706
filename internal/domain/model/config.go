package model

import "time"

const (
	DefaultAPIURL         = "https://api.smartthings.com/v1"
	DefaultUpdateInterval = 15 * time.Second
	DefaultMinTemperature = 16.0
	DefaultMaxTemperature = 30.0
	DefaultListen         = ":8581"
	DefaultAccessoryStore = "accessories.json"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the platform configuration delivered by the bridge runtime.
// Intervals are whole seconds in the file.
type Config struct {
	Token             string    `yaml:"token"`
	APIURL            string    `yaml:"api_url"`
	UpdateInterval    int       `yaml:"update_interval"`
	DiscoveryInterval int       `yaml:"discovery_interval"`
	MinTemperature    *float64  `yaml:"min_temperature"`
	MaxTemperature    *float64  `yaml:"max_temperature"`
	Listen            string    `yaml:"listen"`
	AccessoryStore    string    `yaml:"accessory_store"`
	Log               LogConfig `yaml:"log"`
}

// PollInterval returns the status refresh interval.
func (c *Config) PollInterval() time.Duration {
	if c.UpdateInterval <= 0 {
		return DefaultUpdateInterval
	}
	return time.Duration(c.UpdateInterval) * time.Second
}

// RediscoveryInterval returns the interval between discovery passes; zero
// means discover once.
func (c *Config) RediscoveryInterval() time.Duration {
	if c.DiscoveryInterval <= 0 {
		return 0
	}
	return time.Duration(c.DiscoveryInterval) * time.Second
}

func (c *Config) MinTemp() float64 {
	if c.MinTemperature == nil {
		return DefaultMinTemperature
	}
	return *c.MinTemperature
}

func (c *Config) MaxTemp() float64 {
	if c.MaxTemperature == nil {
		return DefaultMaxTemperature
	}
	return *c.MaxTemperature
}
