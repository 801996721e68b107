package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
)

// parseFlags reads -d, -u, -t and -l from args. Other flags are left to
// their own loaders.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-u", "-t", "-l"})

	fs := flag.NewFlagSet("gophtodo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the data files")
	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "users document")
	fs.StringVar(&cfg.TodosFile, "t", cfg.TodosFile, "todos document")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
