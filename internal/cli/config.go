package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	PlayerID   int64
	PlayerFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("ROSH_SERVER", "http://localhost:8080"),
		PlayerID:   -1,
		PlayerFile: getEnvOrDefault("ROSH_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadPlayerID loads the player ID from file if not already set
func (c *Config) LoadPlayerID() error {
	if c.PlayerID >= 0 {
		return nil
	}

	if env := os.Getenv("ROSH_PLAYER_ID"); env != "" {
		id, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ROSH_PLAYER_ID: %w", err)
		}
		c.PlayerID = id
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No player file is fine
		}
		return err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player file %s: %w", c.PlayerFile, err)
	}

	c.PlayerID = id
	return nil
}

// SavePlayerID saves the player ID to the player file
func (c *Config) SavePlayerID(id int64) error {
	c.PlayerID = id

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, []byte(strconv.FormatInt(id, 10)), 0600)
}

// RequirePlayerID returns the configured player ID or an error if none is set
func (c *Config) RequirePlayerID() (int64, error) {
	if c.PlayerID < 0 {
		return 0, fmt.Errorf("no player set: run 'rosh player register' or pass --player-id")
	}
	return c.PlayerID, nil
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rosh/player"
	}
	return filepath.Join(home, ".rosh", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
