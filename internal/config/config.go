package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		DBFile  string `yaml:"db_file"`
	} `yaml:"app"`

	Timers struct {
		LiveUpdateSeconds int `yaml:"live_update_seconds"`
		AutosaveSeconds   int `yaml:"autosave_seconds"`
	} `yaml:"timers"`

	LiveJobs struct {
		MaxIncrement int `yaml:"max_increment"`
	} `yaml:"live_jobs"`
}

func Default() Config {
	var cfg Config
	cfg.App.DataDir = "."
	cfg.App.DBFile = "catalyst.db"
	cfg.Timers.LiveUpdateSeconds = 30
	cfg.Timers.AutosaveSeconds = 60
	cfg.LiveJobs.MaxIncrement = 10
	return cfg
}

// DBPath is the sqlite file location under the resolved data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.App.DataDir, c.App.DBFile)
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
