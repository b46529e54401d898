package config

import (
	"path/filepath"

	"github.com/dmitrijs2005/academicnav/internal/cryptox"
	"github.com/dmitrijs2005/academicnav/internal/filex"
)

// MemoryDatabase as DatabaseFile keeps all state in process memory.
const MemoryDatabase = ":memory:"

// Config holds runtime settings. The env tags name the environment
// overrides; unset variables leave the field alone.
type Config struct {
	DataDir      string `env:"PORTAL_DATA_DIR"`
	DatabaseFile string `env:"PORTAL_DB_FILE"`
	LogLevel     string `env:"PORTAL_LOG_LEVEL"`

	HashTime      uint32 `env:"PORTAL_HASH_TIME"`
	HashMemoryKiB uint32 `env:"PORTAL_HASH_MEMORY_KIB"`
	HashThreads   uint8  `env:"PORTAL_HASH_THREADS"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DatabaseFile = "portal.db"
	c.LogLevel = "info"
	c.HashTime = cryptox.DefaultParams.Time
	c.HashMemoryKiB = cryptox.DefaultParams.MemoryKiB
	c.HashThreads = cryptox.DefaultParams.Threads
}

// InMemory reports whether the configured database lives in memory.
func (c *Config) InMemory() bool {
	return c.DatabaseFile == MemoryDatabase
}

// DatabasePath returns the DSN of the configured database, creating the
// data directory when needed.
func (c *Config) DatabasePath() (string, error) {
	if c.InMemory() {
		return MemoryDatabase, nil
	}
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.DatabaseFile), nil
}

// HashParams returns the secret-hashing parameters.
func (c *Config) HashParams() cryptox.Params {
	return cryptox.Params{
		Time:      c.HashTime,
		MemoryKiB: c.HashMemoryKiB,
		Threads:   c.HashThreads,
		KeyLen:    cryptox.DefaultParams.KeyLen,
	}
}

// LoadConfig builds a Config from defaults, JSON, environment and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
