package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultUsersFile = "users.json"
	DefaultTodosFile = "todos.json"
	DefaultLogLevel  = "info"
)

// Config holds runtime settings for the CLI.
type Config struct {
	DataDir   string
	UsersFile string
	TodosFile string
	LogLevel  string
}

// LoadDefaults places both documents next to the executable.
func (c *Config) LoadDefaults() {
	c.DataDir = executableDir()
	c.UsersFile = DefaultUsersFile
	c.TodosFile = DefaultTodosFile
	c.LogLevel = DefaultLogLevel
}

// UsersPath is the resolved location of the users document.
func (c *Config) UsersPath() string { return c.resolve(c.UsersFile) }

// TodosPath is the resolved location of the todos document.
func (c *Config) TodosPath() string { return c.resolve(c.TodosFile) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// LoadConfig applies defaults, then the JSON file, then flags from args
// (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
