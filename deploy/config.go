package deploy

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a YAML configuration of the registry deployment.
type Config struct {
	// RPC endpoint of the Neo node.
	Endpoint string `yaml:"endpoint"`
	// Timeout of a single RPC request.
	DialTimeout time.Duration `yaml:"dial_timeout"`

	Wallet WalletConfig `yaml:"wallet"`

	// Directory with compiled contracts, see contracts.Read.
	Contracts string `yaml:"contracts"`

	// Timeout of the whole deployment procedure.
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// WalletConfig points to the local account.
type WalletConfig struct {
	Path     string `yaml:"path"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
}

// Default configuration values.
const (
	DefaultDialTimeout = 10 * time.Second
	DefaultTimeout     = 5 * time.Minute
)

// LoadConfig reads the configuration from the YAML file and fills missing
// optional values with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Endpoint == "":
		return errors.New("missing RPC endpoint")
	case c.Wallet.Path == "":
		return errors.New("missing wallet path")
	case c.Contracts == "":
		return errors.New("missing contracts directory")
	}

	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return nil
}
