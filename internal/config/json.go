package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/academicnav/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	DataDir       string `json:"data_dir"`
	DatabaseFile  string `json:"database_file"`
	LogLevel      string `json:"log_level"`
	HashTime      uint32 `json:"hash_time"`
	HashMemoryKiB uint32 `json:"hash_memory_kib"`
	HashThreads   uint8  `json:"hash_threads"`
}

// parseJson overlays cfg with the non-zero values of the file named by -c
// or -config. It panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.DataDir, jc.DataDir)
	setIfNotEmpty(&cfg.DatabaseFile, jc.DatabaseFile)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotZero(&cfg.HashTime, jc.HashTime)
	setIfNotZero(&cfg.HashMemoryKiB, jc.HashMemoryKiB)
	setIfNotZero(&cfg.HashThreads, jc.HashThreads)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setIfNotZero[T uint8 | uint32](dst *T, v T) {
	if v != 0 {
		*dst = v
	}
}
