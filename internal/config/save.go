package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.DataDir == "" {
		errs = append(errs, "app.data_dir must not be empty")
	}
	if cfg.App.DBFile == "" {
		errs = append(errs, "app.db_file must not be empty")
	}
	if cfg.Timers.LiveUpdateSeconds <= 0 {
		errs = append(errs, "timers.live_update_seconds must be > 0")
	}
	if cfg.Timers.AutosaveSeconds <= 0 {
		errs = append(errs, "timers.autosave_seconds must be > 0")
	}
	if cfg.LiveJobs.MaxIncrement <= 0 {
		errs = append(errs, "live_jobs.max_increment must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
