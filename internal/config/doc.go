// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (PORTAL_*).
//  4. Command-line flags.
//
// Supported flags
//
//	-d string   data directory holding the database
//	-f string   database file name, or ":memory:"
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "database_file": "portal.db",
//	  "log_level": "info",
//	  "hash_time": 1,
//	  "hash_memory_kib": 65536,
//	  "hash_threads": 4
//	}
package config
