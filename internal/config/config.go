package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file layout for the server.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		// Type selects the backend: file, memory or redis.
		Type string `yaml:"type"`
		File struct {
			Path string `yaml:"path"`
		} `yaml:"file"`
		Redis struct {
			URL          string `yaml:"url"`
			PoolSize     int    `yaml:"pool_size"`
			MinIdleConns int    `yaml:"min_idle_conns"`
		} `yaml:"redis"`
	} `yaml:"storage"`
	Game struct {
		PlaysPerDay      int    `yaml:"plays_per_day"`
		PointsPerCorrect int    `yaml:"points_per_correct"`
		QuestionsPath    string `yaml:"questions_path"`
	} `yaml:"game"`
}

// Default returns the configuration used when no file is given: file-backed
// storage next to the binary and stock game tuning.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = 8080
	cfg.Storage.Type = "file"
	cfg.Storage.File.Path = "player_data.json"
	return cfg
}

// Load reads YAML config from path, layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
