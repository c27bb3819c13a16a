package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blobkeeper/internal/flagx"
)

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// Unmarshalling straight into cfg leaves absent fields at their defaults.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
