package config

import (
	"os"
	"strconv"
)

// OverlayEnv applies CATALYST_* environment overrides on top of the
// loaded file. Unset or unparsable values leave the file value alone.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("CATALYST_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("CATALYST_DB_FILE"); v != "" {
		cfg.App.DBFile = v
	}
	if v := os.Getenv("CATALYST_LIVE_UPDATE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timers.LiveUpdateSeconds = n
		}
	}
	if v := os.Getenv("CATALYST_AUTOSAVE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timers.AutosaveSeconds = n
		}
	}
}
