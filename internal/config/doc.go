// Package config loads runtime configuration for the to-do CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   directory holding the data files
//	-u string   users document (relative names resolve against -d)
//	-t string   todos document (relative names resolve against -d)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_dir": "/var/lib/gophtodo",
//	  "users_file": "users.json",
//	  "todos_file": "todos.json",
//	  "log_level": "info"
//	}
//
// Empty or missing JSON fields leave the earlier value in place.
package config
