package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is used when no port argument is given or it does not parse
const DefaultPort = 8000

// ErrInvalidPort is wrapped by the warning FromArgs returns for a non-integer port
var ErrInvalidPort = errors.New("invalid port number")

// Config holds the server settings. It is built once at startup and not
// modified afterwards.
type Config struct {
	Port        int
	OpenBrowser bool
	// Root is the document root files are served from
	Root string
}

// FromArgs builds a Config from the positional command line arguments
// (without the program name). Only the first argument is looked at.
//
// A non-integer port is not fatal: the returned Config uses DefaultPort and
// the returned error explains the fallback so the caller can warn about it.
func FromArgs(args []string) (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		OpenBrowser: true,
	}

	if len(args) == 0 {
		return cfg, nil
	}

	port, err := strconv.Atoi(args[0])
	if err != nil {
		return cfg, fmt.Errorf("%w %q, using default port %d", ErrInvalidPort, args[0], DefaultPort)
	}
	cfg.Port = port

	return cfg, nil
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}

// Addr is the listen address for all interfaces
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
