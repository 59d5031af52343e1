// Package config loads runtime configuration for the GreenPath CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database path (default "greenpath.db")
//	-a string   advisor base URL; empty selects the offline advisor
//	-t int      advisor timeout in seconds (default 30)
//	-s int      save delay in milliseconds (default 500)
//	-m string   metrics listen address; empty disables the listener
//	-l string   log level: debug, info, warn, error (default info)
//	-f string   log format: text or json (default text)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "500ms" or
// integer nanoseconds:
//
//	{
//	  "database_path": "/var/lib/greenpath/greenpath.db",
//	  "advisor_endpoint": "http://127.0.0.1:3400",
//	  "advisor_timeout": "30s",
//	  "save_delay": "500ms",
//	  "metrics_addr": "127.0.0.1:9091",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config
