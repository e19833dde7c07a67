package config

import (
	"encoding/json"
	"os"

	"pantrypal/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config values untouched.
type jsonConfig struct {
	BaseDir   *string `json:"base_dir"`
	LogLevel  *string `json:"log_level"`
	UseArgon2 *bool   `json:"use_argon2"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file was given the function returns immediately.
// Read or unmarshal errors panic; the file was requested explicitly, so a
// broken one is a fatal misconfiguration.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseDir != nil {
		cfg.BaseDir = *jc.BaseDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.UseArgon2 != nil {
		cfg.UseArgon2 = *jc.UseArgon2
	}
}
