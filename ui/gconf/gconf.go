package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "chessassets.json"

type Config struct {
	AssetsDir string `json:"assets_dir"` // empty: discover by search
	LogLevel  string `json:"log_level"`  // debug/info/warn/error/fatal
	Debug     bool   `json:"debug"`      // development encoder
	Console   bool   `json:"console"`    // log to stdout instead of file
}

func defaultConfig() Config {
	return Config{
		AssetsDir: "",
		LogLevel:  "info",
		Debug:     false,
		Console:   false,
	}
}

// NewConfig reads file, or returns defaults when it does not exist.
func NewConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		c.LogLevel = def.LogLevel
	}
}
